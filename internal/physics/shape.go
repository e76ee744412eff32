// Package physics holds the ball/paddle geometry shared by breakout and pong:
// shapes with derived bounds, strict overlap, and angle-based paddle rebound.
// All coordinates are canvas units with y growing downward.
package physics

import "math"

// Vec is a 2D vector in canvas units.
type Vec struct {
	X, Y float64
}

// Len returns the Euclidean length.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Bounds exposes the edges of an axis-aligned box.
type Bounds interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
}

// Shape is a movable body with derived bounds.
type Shape interface {
	Bounds
	Position() Vec
	MoveTo(p Vec)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Position returns the top-left corner.
func (r *Rect) Position() Vec { return Vec{X: r.X, Y: r.Y} }

// MoveTo places the top-left corner at p.
func (r *Rect) MoveTo(p Vec) { r.X, r.Y = p.X, p.Y }

// Circle is anchored at its centre.
type Circle struct {
	X, Y float64
	R    float64
}

func (c Circle) Left() float64   { return c.X - c.R }
func (c Circle) Right() float64  { return c.X + c.R }
func (c Circle) Top() float64    { return c.Y - c.R }
func (c Circle) Bottom() float64 { return c.Y + c.R }

// Position returns the centre.
func (c *Circle) Position() Vec { return Vec{X: c.X, Y: c.Y} }

// MoveTo places the centre at p.
func (c *Circle) MoveTo(p Vec) { c.X, c.Y = p.X, p.Y }
