package snake

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Deaths   int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:     g.tick,
		Deaths:   g.deaths,
		SnakeLen: len(g.snake),
		HeadX:    headX,
		HeadY:    headY,
		Dir:      g.direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
	}
}
