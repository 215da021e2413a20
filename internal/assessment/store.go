package assessment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"agilecheck/internal/catalog"
)

var (
	// ErrInvalidScore is returned when a score falls outside the rating scale.
	ErrInvalidScore = errors.New("score outside rating scale")

	// ErrUnknownQuestion is returned when a question id is not in the catalog.
	ErrUnknownQuestion = errors.New("unknown question id")
)

// HistoryRepo persists the completed-assessment history. Save is called
// synchronously after every history mutation.
type HistoryRepo interface {
	Load(ctx context.Context) ([]Assessment, error)
	Save(ctx context.Context, history []Assessment) error
}

// Store owns the current assessment, the question cursor, and the persisted
// history. All mutation goes through its methods; it is driven by a single
// actor (the UI event loop) and needs no locking.
type Store struct {
	repo    HistoryRepo
	log     *zap.Logger
	current Assessment
	history []Assessment
	cursor  int
}

// NewStore creates a Store with a fresh in-progress assessment, loading any
// previously persisted history. repo may be nil for an in-memory store.
func NewStore(repo HistoryRepo, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		repo:    repo,
		log:     log,
		current: New(""),
	}
	if repo != nil {
		history, err := repo.Load(context.Background())
		if err != nil {
			return nil, fmt.Errorf("load history: %w", err)
		}
		s.history = history
	}
	return s, nil
}

// StartNew discards the current assessment and starts a fresh one for the
// given team. The cursor resets to the first question. Unsaved progress on
// the prior assessment is gone; only completed assessments live in history.
func (s *Store) StartNew(teamName string) Assessment {
	s.current = New(teamName)
	s.cursor = 0
	return s.current.Clone()
}

// Current returns a copy of the current assessment.
func (s *Store) Current() Assessment {
	return s.current.Clone()
}

// History returns a copy of the completed-assessment history.
func (s *Store) History() []Assessment {
	out := make([]Assessment, len(s.history))
	for i, a := range s.history {
		out[i] = a.Clone()
	}
	return out
}

// SetAnswer records a score for a question, replacing any existing answer
// for the same question. Scores must be within the rating scale and the
// question must exist in the catalog; otherwise the state is left unchanged.
// Answering is independent of the cursor position.
func (s *Store) SetAnswer(questionID, score int) error {
	if score < catalog.MinScore || score > catalog.MaxScore {
		return fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	if _, ok := catalog.QuestionByID(questionID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownQuestion, questionID)
	}

	for i, ans := range s.current.Answers {
		if ans.QuestionID == questionID {
			s.current.Answers[i].Score = score
			return nil
		}
	}
	s.current.Answers = append(s.current.Answers, Answer{QuestionID: questionID, Score: score})
	return nil
}

// AnswerFor returns the current assessment's score for a question, or false
// if unanswered.
func (s *Store) AnswerFor(questionID int) (int, bool) {
	return s.current.AnswerFor(questionID)
}

// Cursor returns the current question index.
func (s *Store) Cursor() int {
	return s.cursor
}

// Next advances the cursor by one question, clamped to the last question.
func (s *Store) Next() {
	if s.cursor < catalog.Count()-1 {
		s.cursor++
	}
}

// Prev moves the cursor back one question, clamped to the first question.
func (s *Store) Prev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// JumpTo moves the cursor to an absolute question index. Out-of-range
// indices are ignored.
func (s *Store) JumpTo(index int) {
	if index >= 0 && index < catalog.Count() {
		s.cursor = index
	}
}

// CompletionPercentage returns the share of catalog questions answered, in
// [0, 100]. Answers are unique per question, so the answer count is the
// distinct answered count.
func (s *Store) CompletionPercentage() float64 {
	total := catalog.Count()
	if total == 0 {
		return 0
	}
	return float64(len(s.current.Answers)) / float64(total) * 100
}

// Complete marks the current assessment complete and upserts it into
// history. Whether every question is answered is the caller's concern: the
// UI gates completion on 100%, the store does not.
func (s *Store) Complete() Assessment {
	s.current.Complete = true

	replaced := false
	for i, a := range s.history {
		if a.ID == s.current.ID {
			s.history[i] = s.current.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		s.history = append(s.history, s.current.Clone())
	}

	s.persist()
	return s.current.Clone()
}

// Load makes the history entry with the given id the current assessment and
// resets the cursor. Returns false (leaving state unchanged) if no entry
// matches.
func (s *Store) Load(assessmentID string) bool {
	for _, a := range s.history {
		if a.ID == assessmentID {
			s.current = a.Clone()
			s.cursor = 0
			return true
		}
	}
	return false
}

// Delete removes the history entry with the given id. Unknown ids are a
// no-op. If the deleted entry is also the current assessment, the store
// starts a fresh anonymous one so no orphaned copy lingers.
func (s *Store) Delete(assessmentID string) {
	idx := -1
	for i, a := range s.history {
		if a.ID == assessmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	s.history = append(s.history[:idx], s.history[idx+1:]...)
	s.persist()

	if s.current.ID == assessmentID {
		s.StartNew("")
	}
}

// persist writes the history synchronously. Failures are logged and
// swallowed: the in-memory state stays authoritative for the session.
func (s *Store) persist() {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(context.Background(), s.history); err != nil {
		s.log.Warn("persist assessment history", zap.Error(err))
	}
}
