package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Answer records the rating given to a single question. At most one answer
// exists per question within an assessment.
type Answer struct {
	QuestionID int `json:"questionId"`
	Score      int `json:"score"`
}

// Assessment holds one team's answer set. Complete transitions false→true
// exactly once; a completed assessment is only ever replaced by starting a
// new one.
type Assessment struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	TeamName string    `json:"teamName"`
	Answers  []Answer  `json:"answers"`
	Complete bool      `json:"complete"`
}

// New creates a fresh in-progress assessment with a unique id and the
// current timestamp. The team name may be empty.
func New(teamName string) Assessment {
	return Assessment{
		ID:       uuid.NewString(),
		Date:     time.Now().UTC(),
		TeamName: teamName,
		Answers:  []Answer{},
	}
}

// Clone returns a deep copy of the assessment.
func (a Assessment) Clone() Assessment {
	out := a
	out.Answers = make([]Answer, len(a.Answers))
	copy(out.Answers, a.Answers)
	return out
}

// AnswerFor returns the score recorded for the given question, or false if
// the question is unanswered.
func (a Assessment) AnswerFor(questionID int) (int, bool) {
	for _, ans := range a.Answers {
		if ans.QuestionID == questionID {
			return ans.Score, true
		}
	}
	return 0, false
}
