package physics

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegeneratePaddle is returned when a paddle has no extent along the axis
// the rebound offset is measured on.
var ErrDegeneratePaddle = errors.New("physics: degenerate paddle")

// Face is the direction a paddle's hitting surface points to.
type Face int

const (
	// FaceUp is a horizontal paddle at the bottom; the ball leaves upward.
	FaceUp Face = iota
	// FaceRight is a vertical paddle on the left wall; the ball leaves rightward.
	FaceRight
	// FaceLeft is a vertical paddle on the right wall; the ball leaves leftward.
	FaceLeft
)

func (f Face) String() string {
	switch f {
	case FaceUp:
		return "up"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Rebound turns the distance between a contact point and a paddle's centre
// into an outgoing direction, steeper the further off-centre the hit.
type Rebound struct {
	MaxAngle    float64 // Degrees from the paddle normal
	ClampOffset bool    // Clamp the normalized offset to [-1, 1]
}

// Off returns the velocity of a ball leaving paddle at the given speed, plus the
// rebound angle in degrees from the paddle normal. contact is the ball
// coordinate along the paddle's long axis: X for FaceUp, Y otherwise.
func (r Rebound) Off(contact float64, paddle Rect, face Face, speed float64) (Vec, float64, error) {
	var offset, half float64
	if face == FaceUp {
		offset, half = contact-paddle.CenterX(), paddle.W/2
	} else {
		offset, half = contact-paddle.CenterY(), paddle.H/2
	}
	if half <= 0 {
		return Vec{}, 0, fmt.Errorf("%w: half extent %g on %s face", ErrDegeneratePaddle, half, face)
	}

	normalized := offset / half
	if r.ClampOffset {
		normalized = math.Max(-1, math.Min(1, normalized))
	}
	angle := r.MaxAngle * math.Pi / 180 * normalized
	sin, cos := math.Sincos(angle)

	var v Vec
	switch face {
	case FaceUp:
		v = Vec{X: speed * sin, Y: -speed * cos}
	case FaceRight:
		v = Vec{X: speed * cos, Y: speed * sin}
	case FaceLeft:
		v = Vec{X: -speed * cos, Y: speed * sin}
	}
	return v, angle * 180 / math.Pi, nil
}

// Accelerate adds increment to speed, capped at max.
func Accelerate(speed, increment, max float64) float64 {
	return math.Min(speed+increment, max)
}
