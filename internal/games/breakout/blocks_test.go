package breakout

import (
	"testing"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/physics"
)

func TestBlockFieldSeed(t *testing.T) {
	var f BlockField
	rows := []core.Color{core.ColorRed, core.ColorOrange, core.ColorBlue}
	f.Seed(600, 20, 60, 10, rows)

	if f.Len() != 30 || f.Seeded() != 30 {
		t.Fatalf("Len() = %d, Seeded() = %d, expected 30", f.Len(), f.Seeded())
	}

	var got []Block
	f.Each(func(b Block) { got = append(got, b) })

	if got[0].Rect != (physics.Rect{X: 0, Y: 60, W: 60, H: 20}) || got[0].Color != core.ColorRed {
		t.Errorf("first block = %+v", got[0])
	}
	if got[9].X != 540 || got[9].Y != 60 {
		t.Errorf("end of first row at (%v, %v), expected (540, 60)", got[9].X, got[9].Y)
	}
	if last := got[29]; last.Y != 100 || last.Color != core.ColorBlue {
		t.Errorf("last block = %+v, expected blue at y=100", last)
	}
}

func TestBlockFieldHitFirst(t *testing.T) {
	var f BlockField
	f.Seed(100, 10, 0, 2, []core.Color{core.ColorRed})

	// Touching the edge of the second block is not a hit.
	if _, ok := f.HitFirst(physics.Rect{X: 100, Y: 0, W: 5, H: 5}); ok {
		t.Error("edge contact should not remove a block")
	}

	// Overlaps both; only the first goes.
	hit, ok := f.HitFirst(physics.Rect{X: 45, Y: 0, W: 10, H: 5})
	if !ok || hit.X != 0 {
		t.Errorf("HitFirst() = %+v, %v, expected block at x=0", hit, ok)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", f.Len())
	}

	hit, ok = f.HitFirst(physics.Rect{X: 45, Y: 0, W: 10, H: 5})
	if !ok || hit.X != 50 {
		t.Errorf("second HitFirst() = %+v, %v, expected block at x=50", hit, ok)
	}
	if _, ok := f.HitFirst(physics.Rect{X: 0, Y: 0, W: 100, H: 10}); ok {
		t.Error("empty field should report no hit")
	}
	if f.Seeded() != 2 {
		t.Errorf("Seeded() = %d, expected 2", f.Seeded())
	}
}
