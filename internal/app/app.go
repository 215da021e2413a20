package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"agilecheck/internal/assessment"
	"agilecheck/internal/router"
	"agilecheck/internal/screen"
	"agilecheck/internal/screens/results"
	"agilecheck/internal/screens/welcome"
	"agilecheck/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store  *assessment.Store
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	store  *assessment.Store
	log    *zap.Logger
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return AppModel{
		store:  opts.Store,
		log:    log,
		router: router.New(welcome.New(opts.Store)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case results.StartOverMsg:
		// Fresh stack: back to the welcome screen for a new team name.
		m.log.Info("starting over")
		next := welcome.New(m.store)
		m.router = router.New(next)
		return m, next.Init()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	current := m.store.Current()
	completion := int(m.store.CompletionPercentage())
	header := layout.RenderHeader(title, current.TeamName, completion, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Info("ui starting")

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	m.log.Info("ui stopped")
	return nil
}
