package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"agilecheck/internal/assessment"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <assessment-id>",
	Short: "Delete a completed assessment",
	Args:  cobra.ExactArgs(1),
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

		id, err := matchID(assessStore.History(), args[0])
		if err != nil {
			return err
		}

		assessStore.Delete(id)
		fmt.Println("Deleted", id)
		return nil
	},
}

// matchID resolves a full id or unique prefix against the history.
func matchID(history []assessment.Assessment, arg string) (string, error) {
	var matches []string
	for _, a := range history {
		if a.ID == arg {
			return a.ID, nil
		}
		if strings.HasPrefix(a.ID, arg) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no assessment matches %q", arg)
	default:
		return "", fmt.Errorf("%q is ambiguous: matches %d assessments", arg, len(matches))
	}
}
