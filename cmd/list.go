package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"agilecheck/internal/assessment"
	"agilecheck/internal/scoring"
	"agilecheck/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		assessStore, err := assessment.NewStore(st.HistoryRepo(), nil)
		if err != nil {
			return fmt.Errorf("load assessments: %w", err)
		}

		history := assessStore.History()
		if len(history) == 0 {
			fmt.Println("No completed assessments.")
			return nil
		}

		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Date.After(history[j].Date)
		})

		fmt.Printf("%-36s  %-20s  %-24s  %s\n", "ID", "DATE", "TEAM", "SCORE")
		for _, a := range history {
			overall, maxOverall := scoring.Overall(a)
			team := a.TeamName
			if team == "" {
				team = "-"
			}
			fmt.Printf("%-36s  %-20s  %-24s  %d%%\n",
				a.ID,
				a.Date.Local().Format("2006-01-02 15:04"),
				team,
				scoring.Percent(overall, maxOverall),
			)
		}
		return nil
	},
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
