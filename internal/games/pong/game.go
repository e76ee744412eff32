// Package pong implements Pong against a computer opponent.
// The player controls the left paddle, the computer the right one. Side walls
// score; top and bottom walls bounce.
package pong

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/physics"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var scoreFont = core.Font{Size: 40, Bold: true}

// Paddle is a vertical bat. Face is the direction the ball leaves it in.
type Paddle struct {
	physics.Rect
	Face physics.Face
}

// Game implements the Pong game logic.
type Game struct {
	cfg     config.PongConfig
	rebound physics.Rebound

	// Paddles
	player   Paddle // Left, moved by input
	computer Paddle // Right, tracks the ball

	// Ball
	circle *physics.Circle
	ball   physics.Ball

	// Scores
	playerScore   int
	computerScore int

	ticks   uint64
	runtime core.RuntimeConfig
	log     *log.Logger
}

func init() {
	registry.Register("pong", func() registry.Game { return New() })
}

// New creates a Pong game with the default configuration.
func New() *Game {
	g := &Game{}
	g.applyConfig(config.DefaultPongConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Configure loads, adjusts and validates the configuration.
func (g *Game) Configure(path, preset string) error {
	cfg, err := config.LoadPong(path)
	if err != nil {
		return err
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	config.ApplyPongPreset(&cfg, p)
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.applyConfig(cfg)
	return nil
}

func (g *Game) applyConfig(cfg config.PongConfig) {
	g.cfg = cfg
	g.rebound = physics.Rebound{MaxAngle: cfg.Ball.MaxAngle, ClampOffset: cfg.Ball.ClampOffset}
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

	// Center paddles vertically
	y := h/2 - p.Height/2
	g.player = Paddle{
		Rect: physics.Rect{X: p.WallGap, Y: y, W: p.Width, H: p.Height},
		Face: physics.FaceRight,
	}
	g.computer = Paddle{
		Rect: physics.Rect{X: w - p.Width - p.WallGap, Y: y, W: p.Width, H: p.Height},
		Face: physics.FaceLeft,
	}

	g.circle = &physics.Circle{R: g.cfg.Ball.Radius}
	g.ball = physics.Ball{Shape: g.circle}
	g.serve()

	g.playerScore = 0
	g.computerScore = 0
	g.ticks = 0
}

// serve puts the ball back in the centre at serve speed, heading down-right.
func (g *Game) serve() {
	w, h := g.CanvasSize()
	speed := min(g.cfg.Ball.ServeSpeed, g.cfg.Ball.MaxSpeed)
	g.ball.Launch(physics.Vec{X: w / 2, Y: h / 2}, physics.Vec{X: speed, Y: speed}, speed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	g.movePlayer(in)

	if err := g.update(); err != nil {
		return core.StepResult{State: g.State(), Err: err}
	}
	return core.StepResult{State: g.State()}
}

// movePlayer follows the pointer vertically; arrow keys nudge the paddle
// when no pointer position was reported.
func (g *Game) movePlayer(in core.InputFrame) {
	if _, y, ok := in.Pointer(); ok {
		g.player.Y = y - g.player.H/2
		return
	}

	step := g.cfg.Paddle.KeyStep
	if in.Has(core.ActionUp) {
		g.player.Y -= step
	}
	if in.Has(core.ActionDown) {
		g.player.Y += step
	}
	_, h := g.CanvasSize()
	g.player.Y = core.ClampF(g.player.Y, 0, h-g.player.H)
}

func (g *Game) update() error {
	w, h := g.CanvasSize()
	ballCfg := g.cfg.Ball

	g.ball.Integrate()

	// Top wins over bottom; either way the ball is pushed back inside so it
	// cannot bounce again on the next tick.
	if g.ball.Top() < 0 || g.ball.Bottom() > h {
		g.ball.BounceY()
		g.ball.NudgeInside(h, ballCfg.NudgeStep)
	}

	g.computer.Y += g.cfg.Computer.Speed * (g.circle.Y - g.computer.CenterY())

	focus := SelectFocusPaddle(g.circle.X, &g.player, &g.computer, w/2)
	if physics.Overlaps(&g.ball, focus) {
		speed := physics.Accelerate(g.ball.Speed, ballCfg.SpeedIncrement, ballCfg.MaxSpeed)
		v, _, err := g.rebound.Off(g.circle.Y, focus.Rect, focus.Face, speed)
		if err != nil {
			return fmt.Errorf("pong: %s paddle rebound: %w", focus.Face, err)
		}
		g.ball.Velocity = v
		g.ball.Speed = speed
	}

	if g.ball.Left() < 0 {
		g.computerScore++
		g.log.Info("point", "to", "computer", "score", g.score())
		g.serve()
	} else if g.ball.Right() > w {
		g.playerScore++
		g.log.Info("point", "to", "player", "score", g.score())
		g.serve()
	}
	return nil
}

func (g *Game) score() string {
	return fmt.Sprintf("%d - %d", g.playerScore, g.computerScore)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Ticks:  g.ticks,
		Score:  g.playerScore, // Report player's score
		Status: g.score(),
	}
}

// Render draws the court, scores, paddles and ball.
func (g *Game) Render(dst core.Canvas) {
	w, h := g.CanvasSize()
	dst.FillRect(0, 0, w, h, core.ColorBlack)

	// Dashed net down the middle
	net := g.cfg.Net
	x := w/2 - net.Width/2
	for y := 0.0; y <= h; y += net.Dash + net.Gap {
		dst.FillRect(x, y, net.Width, net.Dash, core.ColorWhite)
	}

	dst.FillText(fmt.Sprint(g.playerScore), 10, 40, scoreFont, core.AlignLeft, core.ColorWhite)
	dst.FillText(fmt.Sprint(g.computerScore), w/2+10, 40, scoreFont, core.AlignLeft, core.ColorWhite)

	for _, p := range []Paddle{g.player, g.computer} {
		dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorWhite)
	}
	dst.FillCircle(g.circle.X, g.circle.Y, g.circle.R, core.ColorWhite)
}
