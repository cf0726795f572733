package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/puzzlekit/internal/core"
	"github.com/vovakirdan/puzzlekit/internal/game"
)

// Model is the Bubble Tea model for playing puzzle levels.
type Model struct {
	session  *game.Session
	keys     KeyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving the given session.
func NewModel(session *game.Session) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    h,
		theme:   DefaultTheme(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()

	case key.Matches(msg, m.keys.Next):
		m.session.LoadNext()

	case key.Matches(msg, m.keys.Prev):
		if n := m.session.State().LevelNumber; n > 0 {
			m.session.Load(n - 1)
		}

	default:
		if dir := m.keys.Direction(msg); dir != core.DirNone {
			m.session.Move(dir)
		}
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderSession(m.session.State(), m.theme) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session.
func Run(session *game.Session) error {
	p := tea.NewProgram(
		NewModel(session),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
