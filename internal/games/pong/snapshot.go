package pong

import "math"

// Snapshot is a flat copy of the simulation state, used to compare runs.
type Snapshot struct {
	Tick           uint64
	BallX, BallY   float64
	BallVX, BallVY float64
	BallSpeed      float64
	PlayerY        float64
	ComputerY      float64
	PlayerScore    int
	ComputerScore  int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.ticks,
		BallX:         g.circle.X,
		BallY:         g.circle.Y,
		BallVX:        g.ball.Velocity.X,
		BallVY:        g.ball.Velocity.Y,
		BallSpeed:     g.ball.Speed,
		PlayerY:       g.player.Y,
		ComputerY:     g.computer.Y,
		PlayerScore:   g.playerScore,
		ComputerScore: g.computerScore,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.BallSpeed, snap.PlayerY, snap.ComputerY} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + uint64(snap.PlayerScore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComputerScore) //#nosec G115 -- hash computation
	return h
}
