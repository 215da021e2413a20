// Package logging configures the process logger. The TUI owns the terminal
// while running, so logs go to a file next to the database instead of
// stderr.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"agilecheck/internal/store"
)

// New creates a file-backed logger writing to logPath. The caller must call
// the returned sync function before exit.
func New(logPath string) (*zap.Logger, func(), error) {
	if err := store.EnsureDir(logPath); err != nil {
		return nil, nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

// DefaultLogPath returns the log file path next to the given database file.
func DefaultLogPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "agilecheck.log")
}
