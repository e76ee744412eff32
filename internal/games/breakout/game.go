// Package breakout implements Breakout: a paddle along the bottom wall, a
// square ball and rows of blocks that vanish when hit. Clearing the board
// shows a win message while the ball keeps moving; losing the ball restarts
// the round with a full board.
package breakout

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/physics"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

// Game state labels reported in core.GameState.Status.
const (
	StatePlaying = "playing"
	StateWon     = "won"
)

// WinText is drawn over the canvas once every block is gone.
const WinText = "YOU WIN!"

var winFont = core.Font{Size: 54, Bold: true}

// Paddle is the player's bat.
type Paddle struct {
	physics.Rect
	Color core.Color
}

// Game implements the Breakout game logic.
type Game struct {
	cfg       config.BreakoutConfig
	rebound   physics.Rebound
	ballColor core.Color
	rowColors []core.Color

	// Game objects
	paddle Paddle
	square *physics.Rect // Ball shape, position is its top-left corner
	ball   physics.Ball
	blocks BlockField

	// Game state
	ticks   uint64
	rounds  int
	cleared bool

	runtime core.RuntimeConfig
	log     *log.Logger
}

func init() {
	registry.Register("breakout", func() registry.Game { return New() })
}

// New creates a Breakout game with the default configuration.
func New() *Game {
	g := &Game{}
	g.applyConfig(config.DefaultBreakoutConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Configure loads, adjusts and validates the configuration.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return err
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	config.ApplyBreakoutPreset(&cfg, p)
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.applyConfig(cfg)
	return nil
}

func (g *Game) applyConfig(cfg config.BreakoutConfig) {
	g.cfg = cfg
	g.rebound = physics.Rebound{MaxAngle: cfg.Ball.MaxAngle, ClampOffset: cfg.Ball.ClampOffset}
	g.ballColor = colorOr(cfg.Ball.Color, core.ColorRed)
	g.paddle.Color = colorOr(cfg.Paddle.Color, core.ColorRed)
	g.rowColors = g.rowColors[:0]
	for _, name := range cfg.Blocks.RowColors {
		g.rowColors = append(g.rowColors, colorOr(name, core.ColorWhite))
	}
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// TickRate returns the configured simulation rate.
func (g *Game) TickRate() int {
	return g.cfg.Canvas.TickRate
}

// CanvasSize returns the logical canvas dimensions.
func (g *Game) CanvasSize() (w, h float64) {
	return g.cfg.Canvas.Width, g.cfg.Canvas.Height
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = core.Logger(runtime)

	w, h := g.CanvasSize()
	p := g.cfg.Paddle
	g.paddle.Rect = physics.Rect{
		X: w/2 - p.Width/2,
		Y: h - p.Height - p.WallGap,
		W: p.Width,
		H: p.Height,
	}

	g.square = &physics.Rect{W: g.cfg.Ball.Diameter, H: g.cfg.Ball.Diameter}
	g.ball = physics.Ball{Shape: g.square}

	g.ticks = 0
	g.rounds = 0
	g.startRound()
}

// startRound refills the board and serves the ball from the canvas centre.
func (g *Game) startRound() {
	w, h := g.CanvasSize()
	b := g.cfg.Blocks
	g.blocks.Seed(w, b.Height, b.TopOffset, b.PerRow, g.rowColors)

	speed := g.cfg.Ball.Speed
	g.ball.Launch(physics.Vec{X: w / 2, Y: h / 2}, physics.Vec{X: speed, Y: speed}, speed)
	g.cleared = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.movePaddle(in)

	if err := g.update(); err != nil {
		return core.StepResult{State: g.State(), Err: err}
	}
	return core.StepResult{State: g.State()}
}

// movePaddle follows the pointer horizontally; arrow keys nudge it instead
// when no pointer position was reported.
func (g *Game) movePaddle(in core.InputFrame) {
	if x, _, ok := in.Pointer(); ok {
		g.paddle.X = x - g.paddle.W/2
		return
	}

	step := g.cfg.Paddle.KeyStep
	if in.Has(core.ActionLeft) {
		g.paddle.X -= step
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += step
	}
	w, _ := g.CanvasSize()
	g.paddle.X = core.ClampF(g.paddle.X, 0, w-g.paddle.W)
}

func (g *Game) update() error {
	w, h := g.CanvasSize()

	g.ball.Integrate()

	if physics.Overlaps(&g.ball, g.paddle) {
		v, _, err := g.rebound.Off(g.square.X, g.paddle.Rect, physics.FaceUp, g.cfg.Ball.Speed)
		if err != nil {
			return fmt.Errorf("breakout: paddle rebound: %w", err)
		}
		g.ball.Velocity = v
	}

	// Side walls and the top wall are independent, so a corner inverts both.
	if g.ball.Left() < 0 || g.ball.Right() > w {
		g.ball.BounceX()
	}
	if g.ball.Top() < 0 {
		g.ball.BounceY()
	} else if g.ball.Bottom() > h {
		g.rounds++
		g.log.Info("ball lost, restarting round", "round", g.rounds, "blocks_left", g.blocks.Len())
		g.startRound()
	}

	if blk, ok := g.blocks.HitFirst(&g.ball); ok {
		g.ball.BounceY()
		g.log.Debug("block hit", "x", blk.X, "y", blk.Y, "left", g.blocks.Len())
	}

	if g.blocks.Len() == 0 && !g.cleared {
		g.cleared = true
		g.log.Info("board cleared", "ticks", g.ticks)
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := StatePlaying
	if g.blocks.Len() == 0 {
		status = StateWon
	}
	return core.GameState{
		Ticks:  g.ticks,
		Score:  g.blocks.Seeded() - g.blocks.Len(),
		Status: fmt.Sprintf("%s  blocks %d/%d", status, g.blocks.Len(), g.blocks.Seeded()),
		Won:    g.blocks.Len() == 0,
	}
}

// Render draws the game onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	w, h := g.CanvasSize()
	dst.FillRect(0, 0, w, h, core.ColorBlack)

	dst.FillRect(g.square.X, g.square.Y, g.square.W, g.square.H, g.ballColor)
	dst.FillRect(g.paddle.X, g.paddle.Y, g.paddle.W, g.paddle.H, g.paddle.Color)
	g.blocks.Each(func(b Block) {
		dst.FillRect(b.X, b.Y, b.W, b.H, b.Color)
	})

	if g.blocks.Len() == 0 {
		dst.FillText(WinText, w/2, h/2, winFont, core.AlignCenter, core.ColorWhite)
	}
}
