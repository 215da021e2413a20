package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"agilecheck/internal/catalog"
	"agilecheck/internal/ui/theme"
)

// Likert is a five-level rating selector for one question. Unlike a quiz
// choice there is no correct answer; a previously chosen score is shown as
// checked and can be changed at any time.
type Likert struct {
	Selected int // highlighted level index 0..4
	Chosen   int // recorded score 1..5, 0 if unanswered
}

// NewLikert creates a rating selector. chosenScore is the already recorded
// score for the question, or 0 when unanswered.
func NewLikert(chosenScore int) Likert {
	selected := 2 // default highlight on the middle level
	if chosenScore >= 1 {
		selected = chosenScore - 1
	}
	return Likert{
		Selected: selected,
		Chosen:   chosenScore,
	}
}

// ChoseMsg is emitted when the user picks a rating.
type ChoseMsg struct {
	Score int
}

// Update handles keyboard navigation and selection.
func (l Likert) Update(msg tea.Msg) (Likert, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	scale := catalog.RatingScale()

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(scale)-1 {
			l.Selected++
		}
	case "1", "2", "3", "4", "5":
		l.Selected = int(key[0]-'0') - 1
		l.Chosen = l.Selected + 1
		score := l.Chosen
		return l, func() tea.Msg { return ChoseMsg{Score: score} }
	case "enter", "space":
		l.Chosen = l.Selected + 1
		score := l.Chosen
		return l, func() tea.Msg { return ChoseMsg{Score: score} }
	}

	return l, nil
}

// View renders the rating scale.
func (l Likert) View(width int) string {
	var s string
	for i, level := range catalog.RatingScale() {
		marker := "( )"
		if level.Score == l.Chosen {
			marker = "(●)"
		}

		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, level.Label)

		var style lipgloss.Style
		switch {
		case i == l.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case level.Score == l.Chosen:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		s += style.Render(line) + "\n"

		if i == l.Selected {
			desc := lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Width(width - 8).
				Render("      " + level.Description)
			s += desc + "\n"
		}
	}
	return s
}
