package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"agilecheck/internal/ui/theme"
)

// Navigator renders the question navigator grid: one cell per question,
// marking answered questions and the cursor position.
type Navigator struct {
	Count    int
	Current  int
	Answered map[int]bool // keyed by question index
	Columns  int
}

// NewNavigator creates a navigator grid over count questions.
func NewNavigator(count, current int, answered map[int]bool) Navigator {
	return Navigator{
		Count:    count,
		Current:  current,
		Answered: answered,
		Columns:  6,
	}
}

// View renders the grid.
func (n Navigator) View(width int) string {
	var rows []string
	var cells []string

	for i := 0; i < n.Count; i++ {
		mark := "○"
		if n.Answered[i] {
			mark = "●"
		}

		label := fmt.Sprintf(" Q%d %s ", i+1, mark)

		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text)
		if n.Answered[i] {
			style = style.Foreground(theme.Success)
		}
		if i == n.Current {
			style = style.BorderForeground(theme.Primary).Bold(true)
		}

		cells = append(cells, style.Render(label))
		if len(cells) == n.Columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	if len(cells) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := strings.Join(rows, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, grid)
}
