package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heli-arcade/internal/core"
	"github.com/vovakirdan/heli-arcade/internal/registry"
)

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	draw       *core.DrawList
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The last terminal row is kept for the key help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		draw:       &core.DrawList{},
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.MapKey(msg))

	case tea.MouseMsg:
		return m.handleAction(MapMouse(msg))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction records an action for the next tick, or quits.
func (m Model) handleAction(a core.Action) (tea.Model, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(a)
	return m, nil
}

// handleResize rescales the view. The simulation keeps its playfield size,
// so a resize never restarts the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.draw)
	Rasterize(m.draw, m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
