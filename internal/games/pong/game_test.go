package pong

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/config"
	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/physics"
)

const epsilon = 1e-9

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

// place puts the ball centre at (x, y) with the given velocity and speed.
func place(g *Game, x, y, vx, vy, speed float64) {
	g.circle.X, g.circle.Y = x, y
	g.ball.Velocity = physics.Vec{X: vx, Y: vy}
	g.ball.Speed = speed
}

func TestGameReset(t *testing.T) {
	g := newGame(t)

	if g.player.X != 10 || g.player.Y != 100 {
		t.Errorf("player at (%v, %v), expected (10, 100)", g.player.X, g.player.Y)
	}
	if g.computer.X != 675 || g.computer.Y != 100 {
		t.Errorf("computer at (%v, %v), expected (675, 100)", g.computer.X, g.computer.Y)
	}
	if g.circle.X != 350 || g.circle.Y != 175 {
		t.Errorf("ball at (%v, %v), expected (350, 175)", g.circle.X, g.circle.Y)
	}
	if g.ball.Velocity != (physics.Vec{X: 5, Y: 5}) || g.ball.Speed != 5 {
		t.Errorf("serve = %+v at speed %v, expected (5, 5) at 5", g.ball.Velocity, g.ball.Speed)
	}
	if s := g.State(); s.Status != "0 - 0" {
		t.Errorf("Status = %q, expected \"0 - 0\"", s.Status)
	}
}

func TestCentreHitFlipsHorizontally(t *testing.T) {
	tests := []struct {
		name          string
		speed         float64
		expectedSpeed float64
	}{
		{"accelerates", 5, 5.25},
		{"capped at max", 9.9, 10},
		{"already at max", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t)

			// Moving left along the player's vertical centre (y = 175).
			place(g, 30, 175, -5, 0, tc.speed)
			if res := g.Step(core.NewInputFrame()); res.Err != nil {
				t.Fatalf("Step() error = %v", res.Err)
			}

			v := g.ball.Velocity
			if math.Abs(v.Y) > epsilon {
				t.Errorf("VY = %v, expected 0", v.Y)
			}
			if v.X <= 0 {
				t.Errorf("VX = %v, expected rightward", v.X)
			}
			if math.Abs(v.Len()-tc.expectedSpeed) > epsilon {
				t.Errorf("|v| = %v, expected %v", v.Len(), tc.expectedSpeed)
			}
			if g.ball.Speed != tc.expectedSpeed {
				t.Errorf("Speed = %v, expected %v", g.ball.Speed, tc.expectedSpeed)
			}
		})
	}
}

func TestComputerPaddleSendsBallLeft(t *testing.T) {
	g := newGame(t)

	// Below the computer's centre: leaves leftward and down.
	place(g, 665, 215, 5, 0, 5)
	g.Step(core.NewInputFrame())

	if g.ball.Velocity.X >= 0 || g.ball.Velocity.Y <= 0 {
		t.Errorf("Velocity = %+v, expected left and down", g.ball.Velocity)
	}
}

func TestWallContainment(t *testing.T) {
	tests := []struct {
		name       string
		y, vy      float64
		expectedVY float64
	}{
		{"top", 5, -8, 8},
		{"bottom", 345, 8, -8},
		{"deep top", 2, -9.7, 9.7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t)
			place(g, 350, tc.y, 5, tc.vy, 5)
			g.Step(core.NewInputFrame())

			if g.ball.Top() < 0 || g.ball.Bottom() > 350 {
				t.Errorf("ball spans [%v, %v], expected within [0, 350]", g.ball.Top(), g.ball.Bottom())
			}
			if g.ball.Velocity.Y != tc.expectedVY {
				t.Errorf("VY = %v, expected %v", g.ball.Velocity.Y, tc.expectedVY)
			}
		})
	}
}

func TestWallContainmentCustomNudgeStep(t *testing.T) {
	tests := []struct {
		name string
		step float64
		y    float64
		vy   float64
	}{
		{"fractional step at the top", 0.3, 12, -5},
		{"widest step at the top", 330, 12, -5},
		{"widest step at the bottom", 330, 338, 5},
		{"smallest step", config.MinNudgeStep, 12, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultPongConfig()
			cfg.Ball.NudgeStep = tc.step
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() = %v, expected nil", err)
			}

			g := New()
			g.applyConfig(cfg)
			g.Reset(core.DefaultConfig())
			place(g, 350, tc.y, 5, tc.vy, 5)
			g.Step(core.NewInputFrame())

			if g.ball.Top() < 0 || g.ball.Bottom() > 350 {
				t.Errorf("ball spans [%v, %v], expected within [0, 350]", g.ball.Top(), g.ball.Bottom())
			}
			if g.ball.Velocity.Y != -tc.vy {
				t.Errorf("VY = %v, expected %v", g.ball.Velocity.Y, -tc.vy)
			}
		})
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name             string
		x, vx            float64
		expectedPlayer   int
		expectedComputer int
	}{
		{"left exit scores for computer", 12, -5, 0, 1},
		{"right exit scores for player", 688, 5, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t)

			// High up, clear of both paddles.
			place(g, tc.x, 20, tc.vx, 0, 7.5)
			res := g.Step(core.NewInputFrame())

			if g.playerScore != tc.expectedPlayer || g.computerScore != tc.expectedComputer {
				t.Errorf("score = %d - %d, expected %d - %d",
					g.playerScore, g.computerScore, tc.expectedPlayer, tc.expectedComputer)
			}
			if res.State.Score != tc.expectedPlayer {
				t.Errorf("State().Score = %d, expected %d", res.State.Score, tc.expectedPlayer)
			}
			if g.circle.X != 350 || g.circle.Y != 175 {
				t.Errorf("ball at (%v, %v), expected reset to centre", g.circle.X, g.circle.Y)
			}
			if g.ball.Speed != 5 || g.ball.Velocity != (physics.Vec{X: 5, Y: 5}) {
				t.Errorf("after reset speed %v velocity %+v, expected 5 and (5, 5)", g.ball.Speed, g.ball.Velocity)
			}
		})
	}
}

func TestBallPastWallScoresEvenOnPaddle(t *testing.T) {
	g := newGame(t)

	// Overlaps the player paddle and is already through the left wall.
	place(g, 8, 175, -5, 0, 5)
	g.Step(core.NewInputFrame())

	if g.computerScore != 1 {
		t.Errorf("computerScore = %d, expected 1", g.computerScore)
	}
}

func TestComputerTracksBall(t *testing.T) {
	g := newGame(t)

	// Ball parked 100 below the computer's centre.
	place(g, 400, 275, 0, 0, 5)
	g.Step(core.NewInputFrame())

	if math.Abs(g.computer.Y-110) > epsilon {
		t.Errorf("computer.Y = %v, expected 110 (a tenth of the way)", g.computer.Y)
	}

	for range 200 {
		g.Step(core.NewInputFrame())
	}
	if math.Abs(g.computer.CenterY()-275) > 0.01 {
		t.Errorf("computer centre = %v, expected to converge on 275", g.computer.CenterY())
	}
}

func TestPointerMovesPlayer(t *testing.T) {
	g := newGame(t)

	in := core.NewInputFrame()
	in.SetPointer(0, 200)
	g.Step(in)
	if g.player.Y != 125 {
		t.Errorf("player.Y = %v, expected 125", g.player.Y)
	}
}

func TestKeysMovePlayer(t *testing.T) {
	g := newGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)
	if g.player.Y != 80 {
		t.Errorf("player.Y = %v, expected 80", g.player.Y)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionDown)
	for range 30 {
		g.Step(in)
	}
	if g.player.Y != 200 {
		t.Errorf("player.Y = %v, expected clamp at 200", g.player.Y)
	}
}

func TestDegeneratePaddleStopsStep(t *testing.T) {
	g := newGame(t)
	g.player.H = 0
	g.player.Y = 175

	place(g, 30, 175, -5, 0, 5)
	res := g.Step(core.NewInputFrame())
	if !errors.Is(res.Err, physics.ErrDegeneratePaddle) {
		t.Errorf("Step().Err = %v, expected ErrDegeneratePaddle", res.Err)
	}
}

func TestRallyInvariants(t *testing.T) {
	g := newGame(t)

	for i := range 5000 {
		// A perfect player: always centred on the ball.
		in := core.NewInputFrame()
		in.SetPointer(0, g.circle.Y)
		if res := g.Step(in); res.Err != nil {
			t.Fatalf("tick %d: Step() error = %v", i, res.Err)
		}

		if g.ball.Speed > 10 {
			t.Fatalf("tick %d: speed %v exceeds max 10", i, g.ball.Speed)
		}
		if g.ball.Top() < 0 || g.ball.Bottom() > 350 {
			t.Fatalf("tick %d: ball spans [%v, %v]", i, g.ball.Top(), g.ball.Bottom())
		}
	}
}

func TestRenderShowsScores(t *testing.T) {
	g := newGame(t)
	g.playerScore, g.computerScore = 3, 7

	rec := &recorder{}
	g.Render(rec)
	if !slices.Contains(rec.texts, "3") || !slices.Contains(rec.texts, "7") {
		t.Errorf("Render texts = %v, expected both scores", rec.texts)
	}
	if rec.circles != 1 {
		t.Errorf("Render drew %d circles, expected 1", rec.circles)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t)
		for i := range 3000 {
			in := core.NewInputFrame()
			if i%3 == 0 {
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}
