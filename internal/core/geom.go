// Package core provides fundamental types shared by the games and the platform
// layers: the cell screen buffer, the canvas renderer contract and input frames.
// Game logic depends on this package only, never on Bubble Tea or ebiten.
package core

// Rect is an axis-aligned block of terminal cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the last column.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the last row.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle shares at least one cell with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clip returns the part of r that lies inside a w×h area anchored at the origin.
func (r Rect) Clip(w, h int) Rect {
	x0, y0 := Clamp(r.X, 0, w), Clamp(r.Y, 0, h)
	x1, y1 := Clamp(r.Right(), 0, w), Clamp(r.Bottom(), 0, h)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
