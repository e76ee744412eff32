package breakout

import "math"

// Snapshot is a flat copy of the simulation state, used to compare runs.
type Snapshot struct {
	Tick            uint64
	Rounds          int
	PaddleX         float64
	BallX, BallY    float64
	BallVX, BallVY  float64
	BlocksRemaining int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:            g.ticks,
		Rounds:          g.rounds,
		PaddleX:         g.paddle.X,
		BallX:           g.square.X,
		BallY:           g.square.Y,
		BallVX:          g.ball.Velocity.X,
		BallVY:          g.ball.Velocity.Y,
		BlocksRemaining: g.blocks.Len(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Rounds) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	return h
}
