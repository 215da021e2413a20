package assess

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"agilecheck/internal/assessment"
	"agilecheck/internal/catalog"
	"agilecheck/internal/router"
	"agilecheck/internal/screen"
	"agilecheck/internal/screens/results"
	"agilecheck/internal/ui/components"
	"agilecheck/internal/ui/layout"
	"agilecheck/internal/ui/theme"
)

// AssessScreen walks through the question catalog one question at a time.
// The rating selector answers the question under the cursor; the navigator
// overlay jumps anywhere in the catalog.
type AssessScreen struct {
	store     *assessment.Store
	likert    components.Likert
	showNav   bool
	navCursor int
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates the assessment screen over the store's current assessment.
func New(store *assessment.Store) *AssessScreen {
	a := &AssessScreen{store: store}
	a.syncLikert()
	return a
}

// syncLikert rebuilds the rating selector for the question under the cursor,
// preselecting any recorded answer.
func (a *AssessScreen) syncLikert() {
	q := catalog.Questions()[a.store.Cursor()]
	chosen, _ := a.store.AnswerFor(q.ID)
	a.likert = components.NewLikert(chosen)
}

func (a *AssessScreen) Init() tea.Cmd {
	return nil
}

func (a *AssessScreen) Title() string {
	return fmt.Sprintf("Question %d of %d", a.store.Cursor()+1, catalog.Count())
}

func (a *AssessScreen) KeyHints() []layout.KeyHint {
	if a.showNav {
		return []layout.KeyHint{
			{Key: "←→↑↓", Description: "Move"},
			{Key: "Enter", Description: "Jump"},
			{Key: "Esc", Description: "Close"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "1-5/Enter", Description: "Rate"},
		{Key: "←→", Description: "Question"},
		{Key: "N", Description: "Navigator"},
	}
	if a.store.CompletionPercentage() >= 100 {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "See results"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (a *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoseMsg:
		q := catalog.Questions()[a.store.Cursor()]
		if err := a.store.SetAnswer(q.ID, msg.Score); err != nil {
			return a, nil
		}
		// Move on after rating, unless this was the last question.
		a.store.Next()
		a.syncLikert()
		return a, nil

	case tea.KeyMsg:
		if a.showNav {
			return a.updateNav(msg)
		}

		switch msg.String() {
		case "left", "h":
			a.store.Prev()
			a.syncLikert()
			return a, nil
		case "right", "l":
			a.store.Next()
			a.syncLikert()
			return a, nil
		case "n":
			a.showNav = true
			a.navCursor = a.store.Cursor()
			return a, nil
		case "c":
			if a.store.CompletionPercentage() >= 100 {
				a.store.Complete()
				return a, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: results.New(a.store)}
				}
			}
			return a, nil
		case "esc":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}

		var cmd tea.Cmd
		a.likert, cmd = a.likert.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *AssessScreen) updateNav(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	count := catalog.Count()
	cols := 6

	switch msg.String() {
	case "left", "h":
		if a.navCursor > 0 {
			a.navCursor--
		}
	case "right", "l":
		if a.navCursor < count-1 {
			a.navCursor++
		}
	case "up", "k":
		if a.navCursor-cols >= 0 {
			a.navCursor -= cols
		}
	case "down", "j":
		if a.navCursor+cols < count {
			a.navCursor += cols
		}
	case "enter":
		a.store.JumpTo(a.navCursor)
		a.syncLikert()
		a.showNav = false
	case "esc", "n":
		a.showNav = false
	}
	return a, nil
}

func (a *AssessScreen) View(width, height int) string {
	if a.showNav {
		return a.viewNav(width)
	}

	q := catalog.Questions()[a.store.Cursor()]

	var b strings.Builder
	b.WriteString("\n")

	progress := components.NewProgressBar("", a.store.CompletionPercentage()/100, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	category := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(q.Category.DisplayName())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, category))
	b.WriteString("\n\n")

	text := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
	b.WriteString("\n")

	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Render(q.Description)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, a.likert.View(min(width, 70))))

	if a.store.CompletionPercentage() >= 100 {
		b.WriteString("\n")
		done := lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("All questions answered — press C to see your results")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, done))
	}

	return b.String()
}

func (a *AssessScreen) viewNav(width int) string {
	answered := make(map[int]bool, catalog.Count())
	for i, q := range catalog.Questions() {
		if _, ok := a.store.AnswerFor(q.ID); ok {
			answered[i] = true
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Jump to Question"))
	b.WriteString("\n\n")

	nav := components.NewNavigator(catalog.Count(), a.navCursor, answered)
	b.WriteString(nav.View(width))
	b.WriteString("\n\n")

	q := catalog.Questions()[a.navCursor]
	preview := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s — %s", q.Category.DisplayName(), q.Text))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, preview))

	return b.String()
}
