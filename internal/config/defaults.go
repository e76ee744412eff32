package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Canvas: CanvasConfig{Width: 600, Height: 500, TickRate: 60},
		Paddle: BreakoutPaddle{
			Width:   100,
			Height:  12,
			WallGap: 50,
			KeyStep: 20,
			Color:   "red",
		},
		Ball: BreakoutBall{
			Diameter:    11,
			Speed:       5,
			MaxAngle:    45,
			ClampOffset: true,
			Color:       "red",
		},
		Blocks: BreakoutBlocks{
			Height:    20,
			TopOffset: 60,
			PerRow:    10,
			RowColors: []string{"red", "orange", "amber", "olive", "green", "blue"},
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Canvas: CanvasConfig{Width: 700, Height: 350, TickRate: 60},
		Paddle: PongPaddle{
			Width:   15,
			Height:  150,
			WallGap: 10,
			KeyStep: 20,
		},
		Ball: PongBall{
			Radius:         10,
			ServeSpeed:     5,
			MaxSpeed:       10,
			SpeedIncrement: 0.25,
			MaxAngle:       45,
			ClampOffset:    true,
			NudgeStep:      1,
		},
		Computer: PongComputer{Speed: 0.1},
		Net:      PongNet{Width: 4, Dash: 10, Gap: 5},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TilesPerRow:   25,
		TileSize:      20,
		StartSegments: 12,
		TickRate:      10,
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Canvas: CanvasConfig{Width: 300, Height: 600, TickRate: 60},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) ([]byte, error) {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML, nil
	case "pong":
		return defaultPongYAML, nil
	case "snake":
		return defaultSnakeYAML, nil
	case "tetris":
		return defaultTetrisYAML, nil
	default:
		return nil, fmt.Errorf("no default config for game %q", gameID)
	}
}
