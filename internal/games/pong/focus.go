package pong

// SelectFocusPaddle returns the paddle on the half of the court the ball is in,
// the only one tested for a hit this tick. A ball exactly on the midpoint
// belongs to the right half.
func SelectFocusPaddle(ballX float64, left, right *Paddle, midpoint float64) *Paddle {
	if ballX < midpoint {
		return left
	}
	return right
}
