// Package tetris holds the Tetris board. There is no gameplay yet: the board
// is drawn empty at the configured rate.
package tetris

import (
	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Game is the empty Tetris board.
type Game struct {
	cfg   config.TetrisConfig
	ticks uint64
}

func init() {
	registry.Register("tetris", func() registry.Game { return New() })
}

// New creates a Tetris board with the default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

func (g *Game) ID() string    { return "tetris" }
func (g *Game) Title() string { return "Tetris (unfinished)" }

// Configure loads and validates the configuration.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return err
	}
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

func (g *Game) TickRate() int { return g.cfg.Canvas.TickRate }

func (g *Game) CanvasSize() (w, h float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

func (g *Game) Reset(core.RuntimeConfig) {
	g.ticks = 0
}

// Step only counts ticks.
func (g *Game) Step(core.InputFrame) core.StepResult {
	g.ticks++
	return core.StepResult{State: g.State()}
}

func (g *Game) State() core.GameState {
	return core.GameState{Ticks: g.ticks, Status: "coming soon"}
}

// Render clears the board.
func (g *Game) Render(dst core.Canvas) {
	w, h := g.CanvasSize()
	dst.FillRect(0, 0, w, h, core.ColorBlack)
}
