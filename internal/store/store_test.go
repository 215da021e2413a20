package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agilecheck/internal/assessment"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "agilecheck.db")
	s, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestHistoryRepo_EmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	history, err := s.HistoryRepo().Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistoryRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.HistoryRepo()

	date := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	history := []assessment.Assessment{
		{
			ID:       "a1",
			Date:     date,
			TeamName: "Team A",
			Answers: []assessment.Answer{
				{QuestionID: 1, Score: 5},
				{QuestionID: 2, Score: 3},
			},
			Complete: true,
		},
		{
			ID:       "b2",
			Date:     date.Add(24 * time.Hour),
			TeamName: "",
			Answers:  []assessment.Answer{},
			Complete: true,
		},
	}

	require.NoError(t, repo.Save(ctx, history))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, history, loaded)

	// Load-then-save without mutation must reproduce the same content.
	require.NoError(t, repo.Save(ctx, loaded))
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestHistoryRepo_SaveReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.HistoryRepo()

	first := []assessment.Assessment{{ID: "a1", Date: time.Now().UTC(), Answers: []assessment.Answer{}, Complete: true}}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, []assessment.Assessment{}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestHistoryRepo_SurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "agilecheck.db")
	ctx := context.Background()

	s, err := Open(dbPath)
	require.NoError(t, err)
	history := []assessment.Assessment{{
		ID:       "a1",
		Date:     time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC),
		TeamName: "Team A",
		Answers:  []assessment.Answer{{QuestionID: 3, Score: 4}},
		Complete: true,
	}}
	require.NoError(t, s.HistoryRepo().Save(ctx, history))
	require.NoError(t, s.Close())

	s2, err := Open(dbPath)
	require.NoError(t, err)
	defer s2.Close()

	loaded, err := s2.HistoryRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, history, loaded)
}
