package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"agilecheck/internal/ui/theme"
)

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label   string
	Percent int // 0..100
}

// BarChart renders labeled horizontal bars, colored by score band.
type BarChart struct {
	Bars  []Bar
	Width int
}

// NewBarChart creates a bar chart sized to width.
func NewBarChart(bars []Bar, width int) BarChart {
	return BarChart{Bars: bars, Width: width}
}

// View renders the chart.
func (b BarChart) View() string {
	labelWidth := 0
	for _, bar := range b.Bars {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
	}

	barWidth := b.Width - labelWidth - 10
	if barWidth < 10 {
		barWidth = 10
	}

	var out strings.Builder
	for _, bar := range b.Bars {
		filled := barWidth * bar.Percent / 100
		if filled > barWidth {
			filled = barWidth
		}

		label := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(labelWidth).
			Render(bar.Label)

		fill := lipgloss.NewStyle().
			Foreground(theme.ScoreColor(bar.Percent)).
			Render(strings.Repeat("█", filled))
		rest := lipgloss.NewStyle().
			Foreground(theme.Border).
			Render(strings.Repeat("░", barWidth-filled))

		pct := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %3d%%", bar.Percent))

		out.WriteString(label + "  " + fill + rest + pct + "\n")
	}
	return out.String()
}
