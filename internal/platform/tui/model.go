package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Rows reserved below the game area for the status line and help.
const chromeRows = 2

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	viewport *core.Viewport
	config   core.RuntimeConfig
	tickRate int
	keys     GameKeyMap
	help     help.Model
	input    core.InputFrame
	state    core.GameState
	log      *log.Logger
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// The game must already be configured.
func NewModel(game registry.Game, width, height int, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	rate := cfg.TickRate
	if rate <= 0 {
		rate = game.TickRate()
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(1, 1),
		config:   cfg,
		tickRate: rate,
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		input:    core.NewInputFrame(),
		log:      core.Logger(cfg),
	}
	m.resize(width, height)

	game.Reset(cfg)
	m.state = game.State()
	m.log.Info("game started", "game", game.ID(), "tick_rate", rate, "seed", cfg.Seed)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if x, y, ok := m.viewport.ToCanvas(msg.X, msg.Y); ok {
			m.input.SetPointer(x, y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Pause, restart and quit are handled
// here; movement is queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		m.log.Debug("pause toggled", "paused", m.paused)

	case core.ActionRestart:
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.input.Clear()
		m.paused = false
		m.log.Info("game restarted", "game", m.game.ID())

	case core.ActionNone:

	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		m.input.Clear()
		return m, tickCmd(m.tickRate)
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if result.Err != nil {
		m.err = result.Err
		m.log.Error("simulation stopped", "game", m.game.ID(), "err", result.Err)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// resize lays the game canvas out in the terminal, keeping its aspect ratio.
func (m *Model) resize(width, height int) {
	rows := max(height-chromeRows, 1)
	cols := max(width, 1)
	m.screen.Resize(cols, rows)

	cw, ch := m.game.CanvasSize()
	m.viewport = core.NewViewport(m.screen, fitRegion(cols, rows, cw, ch), cw, ch)
	m.help.Width = width
}

// fitRegion returns the largest cell region with the canvas aspect ratio
// that fits cols×rows, centered.
func fitRegion(cols, rows int, canvasW, canvasH float64) core.Rect {
	w := cols
	h := int(math.Round(float64(w) * canvasH / canvasW / cellAspect))
	if h > rows {
		h = rows
		w = int(math.Round(float64(h) * canvasW / canvasH * cellAspect))
	}
	w = core.Clamp(w, 1, cols)
	h = core.Clamp(h, 1, rows)
	return core.NewRect((cols-w)/2, (rows-h)/2, w, h)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.viewport)

	status := fmt.Sprintf(" %s  %s", m.game.Title(), m.state.Status)
	if m.paused {
		status += "  " + pausedStyle.Render("PAUSED")
	}

	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status) + "\n" + m.help.View(m.keys)
}

// Err returns the simulation error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program for a configured game.
func Run(game registry.Game, width, height int, cfg core.RuntimeConfig) error {
	model := NewModel(game, width, height, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer drives the paddles
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return fmt.Errorf("%s: %w", game.ID(), m.Err())
	}
	return nil
}
