package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int         // Simulation ticks per second, 0 means the game's own rate
	Seed     int64       // RNG seed (snake food placement)
	Logger   *log.Logger // Optional, nil discards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 0,
		Seed:     0, // 0 means use current time in platform layer
	}
}

var discard = log.New(io.Discard)

// Logger returns the configured logger or a discarding one.
func Logger(cfg RuntimeConfig) *log.Logger {
	if cfg.Logger == nil {
		return discard
	}
	return cfg.Logger
}

// GameState summarizes a game for the platform HUD.
type GameState struct {
	Ticks  uint64 // Simulation ticks since the last Reset
	Score  int    // Primary score (player side)
	Status string // Short status line, e.g. "3 - 1"
	Won    bool   // Terminal win indicator (breakout board cleared)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Err is set when the tick could not be resolved, e.g. a degenerate
	// paddle. Schedulers stop the loop and report it.
	Err error
}
