package history

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"agilecheck/internal/assessment"
	"agilecheck/internal/router"
	"agilecheck/internal/scoring"
	"agilecheck/internal/screen"
	"agilecheck/internal/screens/results"
	"agilecheck/internal/ui/layout"
	"agilecheck/internal/ui/theme"
)

// HistoryScreen lists completed assessments, newest first. Entries can be
// reopened on the results screen or deleted.
type HistoryScreen struct {
	store      *assessment.Store
	entries    []assessment.Assessment
	selected   int
	confirming bool // pending delete confirmation for the selected entry
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates the history screen over the store's persisted history.
func New(store *assessment.Store) *HistoryScreen {
	h := &HistoryScreen{store: store}
	h.reload()
	return h
}

func (h *HistoryScreen) reload() {
	h.entries = h.store.History()
	sort.SliceStable(h.entries, func(i, j int) bool {
		return h.entries[i].Date.After(h.entries[j].Date)
	})
	if h.selected >= len(h.entries) {
		h.selected = len(h.entries) - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "Past Assessments"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	if h.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N/Esc", Description: "Keep"},
		}
	}
	if len(h.entries) == 0 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	if h.confirming {
		switch kmsg.String() {
		case "y":
			h.store.Delete(h.entries[h.selected].ID)
			h.confirming = false
			h.reload()
		case "n", "esc":
			h.confirming = false
		}
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.entries)-1 {
			h.selected++
		}
	case "enter":
		if len(h.entries) > 0 {
			if h.store.Load(h.entries[h.selected].ID) {
				return h, func() tea.Msg {
					return router.PushScreenMsg{Screen: results.New(h.store)}
				}
			}
		}
	case "d":
		if len(h.entries) > 0 {
			h.confirming = true
		}
	case "esc":
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Past Assessments"))
	b.WriteString("\n\n")

	if len(h.entries) == 0 {
		empty := theme.Hint.Render("No completed assessments yet. Finish one to see it here.")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, empty))
		return b.String()
	}

	for i, a := range h.entries {
		overall, maxOverall := scoring.Overall(a)
		pct := scoring.Percent(overall, maxOverall)

		team := a.TeamName
		if team == "" {
			team = "Team Assessment"
		}

		line := fmt.Sprintf("%-24s  %s  %s",
			truncate(team, 24),
			a.Date.Local().Format("Jan 2, 2006 15:04"),
			lipgloss.NewStyle().Foreground(theme.ScoreColor(pct)).Render(fmt.Sprintf("%3d%%", pct)),
		)

		if i == h.selected {
			line = lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + line)
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if h.confirming {
		b.WriteString("\n")
		warn := lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true).
			Render("Delete this assessment? Press Y to confirm, N to keep it.")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, warn))
	}

	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
