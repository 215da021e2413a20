package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agilecheck/internal/app"
	"agilecheck/internal/assessment"
	"agilecheck/internal/logging"
	"agilecheck/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Logs go to a file next to the database; the TUI owns the terminal.
	logger, closeLog, err := logging.New(logging.DefaultLogPath(dbPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging unavailable:", err)
		logger = nil
	} else {
		defer closeLog()
	}

	assessStore, err := assessment.NewStore(st.HistoryRepo(), logger)
	if err != nil {
		return fmt.Errorf("load assessments: %w", err)
	}

	return app.Run(app.Options{
		Store:  assessStore,
		Logger: logger,
	})
}
