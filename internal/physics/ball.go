package physics

import "math"

// Ball is a moving shape. Speed is the scalar used for the next paddle rebound;
// games that rebound at a fixed speed leave it constant.
type Ball struct {
	Shape
	Velocity Vec
	Speed    float64
}

// Integrate advances the ball by one tick of velocity.
func (b *Ball) Integrate() {
	p := b.Position()
	b.MoveTo(Vec{X: p.X + b.Velocity.X, Y: p.Y + b.Velocity.Y})
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Velocity.X = -b.Velocity.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Velocity.Y = -b.Velocity.Y
}

// Launch resets position, velocity and speed in one go.
func (b *Ball) Launch(at Vec, velocity Vec, speed float64) {
	b.MoveTo(at)
	b.Velocity = velocity
	b.Speed = speed
}

// NudgeInside moves the ball vertically by whole steps until its bounds lie
// within [0, height]. A step wider than the free range would overshoot the
// opposite wall, so the ball ends flush against the top instead. A ball taller
// than the range is left alone.
func (b *Ball) NudgeInside(height, step float64) {
	if step <= 0 || b.Bottom()-b.Top() > height {
		return
	}
	if top := b.Top(); top < 0 {
		b.shiftY(math.Ceil(-top/step) * step)
	}
	if over := b.Bottom() - height; over > 0 {
		b.shiftY(-math.Ceil(over/step) * step)
	}
	if top := b.Top(); top < 0 {
		b.shiftY(-top)
	}
}

func (b *Ball) shiftY(dy float64) {
	p := b.Position()
	b.MoveTo(Vec{X: p.X, Y: p.Y + dy})
}
