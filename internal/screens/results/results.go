package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"agilecheck/internal/assessment"
	"agilecheck/internal/recommend"
	"agilecheck/internal/router"
	"agilecheck/internal/scoring"
	"agilecheck/internal/screen"
	"agilecheck/internal/ui/components"
	"agilecheck/internal/ui/layout"
	"agilecheck/internal/ui/theme"
)

// StartOverMsg asks the application to drop the screen stack and return to a
// fresh welcome screen.
type StartOverMsg struct{}

// ResultsScreen shows the scored assessment: overall percentage, per-category
// breakdown, and recommendations for the weakest categories.
type ResultsScreen struct {
	store  *assessment.Store
	snap   assessment.Assessment
	scroll int
	status string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for the store's current assessment.
func New(store *assessment.Store) *ResultsScreen {
	return &ResultsScreen{
		store: store,
		snap:  store.Current(),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "N", Description: "New assessment"},
		{Key: "E", Description: "Export"},
		{Key: "S", Description: "Share"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.scroll > 0 {
			r.scroll--
		}
	case "down", "j":
		r.scroll++
	case "n":
		return r, func() tea.Msg { return StartOverMsg{} }
	case "e":
		r.status = "Export is not available yet."
	case "s":
		r.status = "Sharing is not available yet."
	case "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	content := r.render(width)

	lines := strings.Split(content, "\n")
	maxScroll := len(lines) - height + 2
	if maxScroll < 0 {
		maxScroll = 0
	}
	if r.scroll > maxScroll {
		r.scroll = maxScroll
	}
	if r.scroll > 0 {
		lines = lines[r.scroll:]
	}
	return strings.Join(lines, "\n")
}

func (r *ResultsScreen) render(width int) string {
	scores := scoring.CategoryScores(r.snap)
	sorted := scoring.SortedByPercent(scores)
	overall, maxOverall := scoring.Overall(r.snap)
	overallPct := scoring.Percent(overall, maxOverall)

	var b strings.Builder
	b.WriteString("\n")

	team := r.snap.TeamName
	if team == "" {
		team = "Your team"
	}
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("%s — Agile Maturity", team)))
	b.WriteString("\n\n")

	overallStyle := lipgloss.NewStyle().
		Foreground(theme.ScoreColor(overallPct)).
		Bold(true)
	overallLine := fmt.Sprintf("Overall score  %s  (%d / %d points)",
		overallStyle.Render(fmt.Sprintf("%d%%", overallPct)), overall, maxOverall)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, overallLine))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(maturityLabel(overallPct))))
	b.WriteString("\n\n")

	bars := make([]components.Bar, 0, len(sorted))
	for _, cs := range sorted {
		bars = append(bars, components.Bar{
			Label:   cs.Category.DisplayName(),
			Percent: cs.Percent(),
		})
	}
	chart := components.NewBarChart(bars, min(width-8, 68))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, chart.View()))
	b.WriteString("\n")

	weak := recommend.NeedsImprovement(scores)
	if len(weak) > 0 {
		b.WriteString(sectionHeading(width, "Where to improve"))
		for _, cs := range weak {
			heading := lipgloss.NewStyle().
				Foreground(theme.Warning).
				Bold(true).
				Render(fmt.Sprintf("%s (%d%%)", cs.Category.DisplayName(), cs.Percent()))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, heading))
			b.WriteString("\n")
			for _, rec := range recommend.ForCategory(cs.Category) {
				line := lipgloss.NewStyle().
					Foreground(theme.Text).
					Width(min(width-12, 64)).
					Render("• " + rec)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	strong := recommend.Strengths(scores)
	if len(strong) > 0 {
		b.WriteString(sectionHeading(width, "Strengths"))
		for _, cs := range strong {
			line := lipgloss.NewStyle().
				Foreground(theme.Success).
				Render(fmt.Sprintf("✓ %s (%d%%)", cs.Category.DisplayName(), cs.Percent()))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(weak) == 0 && len(strong) == 0 {
		note := theme.Hint.Render("Solid middle ground across the board — pick one category and push it past 80%.")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, note))
		b.WriteString("\n")
	}

	if r.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(r.status)))
		b.WriteString("\n")
	}

	return b.String()
}

func sectionHeading(width int, text string) string {
	h := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.ToUpper(text))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, h) + "\n\n"
}

// maturityLabel buckets the overall percentage into a headline.
func maturityLabel(percent int) string {
	switch {
	case percent >= 80:
		return "High agile maturity — keep refining"
	case percent >= 60:
		return "Good foundation with room to grow"
	case percent >= 40:
		return "Developing — focus on the weakest categories"
	default:
		return "Early days — start with one practice at a time"
	}
}
