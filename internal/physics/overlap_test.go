package physics

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected bool
	}{
		{
			name:     "edges touching horizontally",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 1, Y: 0, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "edges touching vertically",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 0, Y: 1, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "one unit of penetration",
			a:        Rect{X: 0, Y: 0, W: 2, H: 2},
			b:        Rect{X: 1, Y: 0, W: 2, H: 2},
			expected: true,
		},
		{
			name:     "corners touching",
			a:        Rect{X: 0, Y: 0, W: 1, H: 1},
			b:        Rect{X: 1, Y: 1, W: 1, H: 1},
			expected: false,
		},
		{
			name:     "contained",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 4, Y: 4, W: 1, H: 1},
			expected: true,
		},
		{
			name:     "circle against rect",
			a:        Circle{X: 10, Y: 10, R: 5},
			b:        Rect{X: 14, Y: 0, W: 5, H: 20},
			expected: true,
		},
		{
			name:     "circle touching rect",
			a:        Circle{X: 10, Y: 10, R: 5},
			b:        Rect{X: 15, Y: 0, W: 5, H: 20},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShapeBounds(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 12}
	if r.Left() != 10 || r.Right() != 110 || r.Top() != 20 || r.Bottom() != 32 {
		t.Errorf("Rect bounds = (%v, %v, %v, %v)", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.CenterX() != 60 || r.CenterY() != 26 {
		t.Errorf("Rect centre = (%v, %v), expected (60, 26)", r.CenterX(), r.CenterY())
	}

	c := Circle{X: 50, Y: 40, R: 10}
	if c.Left() != 40 || c.Right() != 60 || c.Top() != 30 || c.Bottom() != 50 {
		t.Errorf("Circle bounds = (%v, %v, %v, %v)", c.Left(), c.Right(), c.Top(), c.Bottom())
	}

	// Bounds follow the position; nothing is cached
	c.MoveTo(Vec{X: 0, Y: 0})
	if c.Left() != -10 || c.Bottom() != 10 {
		t.Error("Circle bounds should be derived from the current position")
	}
}
