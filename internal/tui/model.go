package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nybbler/internal/constants"
	"github.com/julianstephens/nybbler/internal/game"
	"github.com/julianstephens/nybbler/internal/models"
	"github.com/julianstephens/nybbler/internal/tui/components/menu"
	"github.com/julianstephens/nybbler/internal/tui/components/stats"
)

// Model is the interactive care loop. It mutates the pet through the game
// manager but never saves; the caller saves after the program exits.
type Model struct {
	game     *game.Manager
	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	menu     menu.Model
	stats    stats.Model
	frame    models.Frame
	message  string
	quitting bool
	width    int
	height   int
}

func NewModel(g *game.Manager) Model {
	rules := g.Rules()
	m := Model{
		game:  g,
		state: constants.StatePet,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		menu:  menu.New(rules, 0, len(models.Actions())*3),
		stats: stats.New(rules.LowStatThreshold),
	}
	m.refresh(g.Pet())
	return m
}

// refresh updates the derived view state after the pet changes.
func (m *Model) refresh(p models.Pet) {
	m.stats.SetPet(p)
	m.frame = models.FrameForMood(m.game.Mood())
	if !p.Alive() {
		m.state = constants.StateDeceased
	}
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case constants.StateConfirmQuit:
		return []key.Binding{m.keys.Yes, m.keys.No}
	case constants.StateDeceased:
		return []key.Binding{m.keys.Quit}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	switch m.state {
	case constants.StateConfirmQuit:
		return [][]key.Binding{{m.keys.Yes, m.keys.No}}
	case constants.StateDeceased:
		return [][]key.Binding{{m.keys.Quit}}
	}
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Quitting reports whether the user left the loop through the quit action.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) State() constants.SessionState {
	return m.state
}
