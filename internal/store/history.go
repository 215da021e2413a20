package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"agilecheck/internal/assessment"
)

// historyKey is the single key under which the serialized history lives.
const historyKey = "assessment_history"

// historyRepo implements assessment.HistoryRepo on the kv table.
type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Load(ctx context.Context) ([]assessment.Assessment, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE key = ?", historyKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var history []assessment.Assessment
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return history, nil
}

func (r *historyRepo) Save(ctx context.Context, history []assessment.Assessment) error {
	if history == nil {
		history = []assessment.Assessment{}
	}
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		historyKey, string(raw))
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
