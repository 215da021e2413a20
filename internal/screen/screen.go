package screen

import (
	tea "charm.land/bubbletea/v2"

	"agilecheck/internal/ui/layout"
)

// Screen is one view in the assessment flow. The router owns a stack of
// these; the active one receives messages and renders inside the frame.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
