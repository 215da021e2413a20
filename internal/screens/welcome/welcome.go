package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"agilecheck/internal/assessment"
	"agilecheck/internal/router"
	"agilecheck/internal/screen"
	"agilecheck/internal/screens/assess"
	"agilecheck/internal/screens/history"
	"agilecheck/internal/ui/components"
	"agilecheck/internal/ui/layout"
	"agilecheck/internal/ui/theme"
)

const intro = `Measure how your team is practicing the core principles of agile
software development. Twelve questions across six categories: delivery,
adaptation, collaboration, technical excellence, optimization, and team.

Rate each statement from 1 (not at all) to 5 (completely). You'll get a
breakdown per category and concrete recommendations for improvement.`

// WelcomeScreen is the entry screen: intro text, team name input, and the
// main menu.
type WelcomeScreen struct {
	store      *assessment.Store
	input      components.TextInput
	menu       components.Menu
	inputFocus bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen around the injected store.
func New(store *assessment.Store) *WelcomeScreen {
	w := &WelcomeScreen{
		store:      store,
		input:      components.NewTextInput("Team name (optional)", 40),
		inputFocus: true,
	}

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			return w.startAssessment()
		}},
		{Label: "PAST ASSESSMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(w.store)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	w.menu = components.NewMenu(items)
	return w
}

func (w *WelcomeScreen) startAssessment() tea.Cmd {
	w.store.StartNew(strings.TrimSpace(w.input.Value()))
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: assess.New(w.store)}
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Title() string {
	return "Agile Assessment"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.inputFocus {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Tab", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			w.inputFocus = !w.inputFocus
			return w, nil
		case "enter":
			if w.inputFocus {
				return w, w.startAssessment()
			}
		case "up":
			if !w.inputFocus && w.menu.Selected == 0 {
				w.inputFocus = true
				return w, nil
			}
		case "down":
			if w.inputFocus {
				w.inputFocus = false
				return w, nil
			}
		}
	}

	var cmd tea.Cmd
	if w.inputFocus {
		w.input, cmd = w.input.Update(msg)
	} else {
		w.menu, cmd = w.menu.Update(msg)
	}
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(theme.Title.Width(width).Render("How agile is your team?"))
	b.WriteString("\n\n")

	introBlock := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 72)).
		Render(intro)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, introBlock))
	b.WriteString("\n\n")

	inputLabel := "Team name"
	if w.inputFocus {
		inputLabel = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(inputLabel)
	} else {
		inputLabel = lipgloss.NewStyle().Foreground(theme.TextDim).Render(inputLabel)
	}
	inputLine := fmt.Sprintf("%s  %s", inputLabel, w.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, inputLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, w.menu.View()))

	if n := len(w.store.History()); n > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("%d completed assessment(s) on record", n))))
	}

	return b.String()
}
