package snake

import (
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 12345})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newGame(t)
	g2 := newGame(t)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		if i == 5 {
			input.Set(core.ActionDown)
		}
		if i == 9 {
			input.Set(core.ActionLeft)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshot mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestInitialSnake(t *testing.T) {
	g := newGame(t)

	if len(g.snake) != 12 {
		t.Fatalf("snake length = %d, expected 12", len(g.snake))
	}
	if g.snake[0] != (Point{X: 12, Y: 12}) {
		t.Errorf("head = %+v, expected centre tile (12, 12)", g.snake[0])
	}
	if g.snake[11] != (Point{X: 23, Y: 12}) {
		t.Errorf("tail = %+v, expected (23, 12)", g.snake[11])
	}
	if g.direction != DirLeft {
		t.Errorf("direction = %v, expected left", g.direction)
	}
}

func TestMoveKeepsLength(t *testing.T) {
	g := newGame(t)
	g.food = Point{X: 0, Y: 0}

	g.Step(core.NewInputFrame())
	if g.snake[0] != (Point{X: 11, Y: 12}) {
		t.Errorf("head = %+v, expected (11, 12)", g.snake[0])
	}
	if len(g.snake) != 12 {
		t.Errorf("length = %d, expected 12", len(g.snake))
	}

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)
	if g.snake[0] != (Point{X: 11, Y: 11}) {
		t.Errorf("head = %+v, expected (11, 11)", g.snake[0])
	}
}

func TestEatingGrows(t *testing.T) {
	g := newGame(t)
	g.food = Point{X: 11, Y: 12}

	res := g.Step(core.NewInputFrame())
	if len(g.snake) != 13 {
		t.Errorf("length = %d, expected 13", len(g.snake))
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if g.snake[12] != (Point{X: 23, Y: 12}) {
		t.Errorf("tail = %+v, expected it to stay at (23, 12)", g.snake[12])
	}
}

func TestLeavingGridRespawns(t *testing.T) {
	g := newGame(t)
	g.food = Point{X: 24, Y: 24}

	// Twelve moves take the head from x=12 to x=0; the next leaves the grid.
	for range 13 {
		g.Step(core.NewInputFrame())
	}

	if g.deaths != 1 {
		t.Errorf("deaths = %d, expected 1", g.deaths)
	}
	if g.snake[0] != (Point{X: 12, Y: 12}) || len(g.snake) != 12 {
		t.Errorf("after death head = %+v length = %d, expected a fresh snake", g.snake[0], len(g.snake))
	}
}

func TestReversingIntoBodyRespawns(t *testing.T) {
	g := newGame(t)
	g.food = Point{X: 0, Y: 0}

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)

	if g.deaths != 1 {
		t.Errorf("deaths = %d, expected reversing into the body to kill the snake", g.deaths)
	}
	if g.direction != DirLeft {
		t.Errorf("direction = %v, expected the fresh snake to head left", g.direction)
	}
}

func TestDirectionForKeyCode(t *testing.T) {
	tests := []struct {
		code     int
		expected Direction
		ok       bool
	}{
		{37, DirLeft, true},
		{38, DirUp, true},
		{39, DirRight, true},
		{40, DirDown, true},
		{36, 0, false},
		{41, 0, false},
	}

	for _, tc := range tests {
		got, ok := DirectionForKeyCode(tc.code)
		if ok != tc.ok || (ok && got != tc.expected) {
			t.Errorf("DirectionForKeyCode(%d) = %v, %v, expected %v, %v", tc.code, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestCanvasSize(t *testing.T) {
	g := New()
	w, h := g.CanvasSize()
	if w != 500 || h != 500 {
		t.Errorf("CanvasSize() = (%v, %v), expected (500, 500)", w, h)
	}
	if g.TickRate() != 10 {
		t.Errorf("TickRate() = %d, expected 10", g.TickRate())
	}
}
