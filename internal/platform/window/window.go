// Package window runs a game in a desktop window with ebiten. The window's
// logical size is the game's canvas, so cursor positions are canvas units.
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game    registry.Game
	config  core.RuntimeConfig
	input   core.InputFrame
	pointer pointerTracker
	state   core.GameState
	log     *log.Logger
	paused  bool
	err     error

	setTitle func(string)
}

// NewRunner resets a configured game and wraps it for ebiten.
func NewRunner(game registry.Game, cfg core.RuntimeConfig) *Runner {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)
	return &Runner{
		game:   game,
		config: cfg,
		input:  core.NewInputFrame(),
		state:  game.State(),
		log:    core.Logger(cfg),

		setTitle: ebiten.SetWindowTitle,
	}
}

// Update advances the game by one tick. ebiten calls it at the configured TPS.
func (r *Runner) Update() error {
	w, h := r.game.CanvasSize()
	cx, cy := ebiten.CursorPosition()
	r.pointer.update(&r.input, cx, cy, w, h)
	readKeys(&r.input, ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)

	return r.tick()
}

// tick applies platform actions and steps the game with the pending input.
func (r *Runner) tick() error {
	defer r.input.Clear()

	switch {
	case r.input.Has(core.ActionQuit):
		return ebiten.Termination
	case r.input.Has(core.ActionRestart):
		r.game.Reset(r.config)
		r.state = r.game.State()
		r.paused = false
		r.log.Info("game restarted", "game", r.game.ID())
		return nil
	case r.input.Has(core.ActionPause):
		r.paused = !r.paused
		r.log.Debug("pause toggled", "paused", r.paused)
		r.setTitle(r.title())
	}

	if r.paused {
		return nil
	}

	result := r.game.Step(r.input)
	r.state = result.State
	if result.Err != nil {
		r.err = result.Err
		r.log.Error("simulation stopped", "game", r.game.ID(), "err", result.Err)
		return ebiten.Termination
	}

	r.setTitle(r.title())
	return nil
}

// title is the window caption, standing in for the terminal status line.
func (r *Runner) title() string {
	title := fmt.Sprintf("%s  %s", r.game.Title(), r.state.Status)
	if r.paused {
		title += "  [paused]"
	}
	return title
}

// Draw renders the game onto the window.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.game.Render(imageCanvas{dst: screen})
}

// Layout fixes the logical screen to the game's canvas.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := r.game.CanvasSize()
	return int(w), int(h)
}

// Err returns the simulation error that stopped the loop, if any.
func (r *Runner) Err() error {
	return r.err
}

// Run opens a window for a configured game and blocks until it closes.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = game.TickRate()
	}

	r := NewRunner(game, cfg)
	w, h := game.CanvasSize()

	ebiten.SetTPS(rate)
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	r.log.Info("window opened", "game", game.ID(), "tick_rate", rate, "seed", r.config.Seed)
	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if r.Err() != nil {
		return fmt.Errorf("%s: %w", game.ID(), r.Err())
	}
	return nil
}
