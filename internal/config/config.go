// Package config provides YAML-based game configuration loading, validation and
// difficulty presets for the arcade games.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}

// CanvasConfig is the logical drawing surface of a game.
type CanvasConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // Simulation steps per second
}

func (c CanvasConfig) validate(game string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("%s canvas must be positive, got %gx%g", game, c.Width, c.Height)
	}
	if c.TickRate <= 0 {
		return invalid("%s tick_rate must be > 0, got %d", game, c.TickRate)
	}
	return nil
}

func validateAngle(game string, deg float64) error {
	if deg <= 0 || deg >= 90 {
		return invalid("%s max_angle must be in (0, 90), got %g", game, deg)
	}
	return nil
}

func validateColor(game, field, name string) error {
	if _, ok := core.ParseColor(name); !ok {
		return invalid("%s %s: unknown color %q", game, field, name)
	}
	return nil
}

// BreakoutConfig contains all configuration for Breakout.
type BreakoutConfig struct {
	Canvas CanvasConfig   `yaml:"canvas"`
	Paddle BreakoutPaddle `yaml:"paddle"`
	Ball   BreakoutBall   `yaml:"ball"`
	Blocks BreakoutBlocks `yaml:"blocks"`
}

// BreakoutPaddle defines the player paddle.
type BreakoutPaddle struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	WallGap float64 `yaml:"wall_gap"` // Gap between paddle and bottom wall
	KeyStep float64 `yaml:"key_step"` // Distance moved per arrow key press
	Color   string  `yaml:"color"`
}

// BreakoutBall defines the square ball and its rebound policy.
type BreakoutBall struct {
	Diameter    float64 `yaml:"diameter"`
	Speed       float64 `yaml:"speed"`
	MaxAngle    float64 `yaml:"max_angle"` // Degrees from vertical
	ClampOffset bool    `yaml:"clamp_offset"`
	Color       string  `yaml:"color"`
}

// BreakoutBlocks defines the block field layout.
type BreakoutBlocks struct {
	Height    float64  `yaml:"height"`
	TopOffset float64  `yaml:"top_offset"` // Distance from top wall to the first row
	PerRow    int      `yaml:"per_row"`
	RowColors []string `yaml:"row_colors"` // One row per entry, top to bottom
}

// Validate checks the configuration for values the simulation cannot run with.
func (c BreakoutConfig) Validate() error {
	if err := c.Canvas.validate("breakout"); err != nil {
		return err
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("breakout paddle must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Ball.Diameter <= 0 || c.Ball.Diameter >= c.Canvas.Width || c.Ball.Diameter >= c.Canvas.Height {
		return invalid("breakout ball diameter must be positive and smaller than the canvas, got %g", c.Ball.Diameter)
	}
	if c.Ball.Speed <= 0 {
		return invalid("breakout ball speed must be > 0, got %g", c.Ball.Speed)
	}
	if err := validateAngle("breakout", c.Ball.MaxAngle); err != nil {
		return err
	}
	if c.Blocks.PerRow <= 0 {
		return invalid("breakout blocks per_row must be > 0, got %d", c.Blocks.PerRow)
	}
	if c.Blocks.Height <= 0 {
		return invalid("breakout block height must be > 0, got %g", c.Blocks.Height)
	}
	if len(c.Blocks.RowColors) == 0 {
		return invalid("breakout blocks need at least one row color")
	}
	if err := validateColor("breakout", "paddle", c.Paddle.Color); err != nil {
		return err
	}
	if err := validateColor("breakout", "ball", c.Ball.Color); err != nil {
		return err
	}
	for i, name := range c.Blocks.RowColors {
		if err := validateColor("breakout", fmt.Sprintf("row %d", i), name); err != nil {
			return err
		}
	}
	return nil
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Canvas   CanvasConfig `yaml:"canvas"`
	Paddle   PongPaddle   `yaml:"paddle"`
	Ball     PongBall     `yaml:"ball"`
	Computer PongComputer `yaml:"computer"`
	Net      PongNet      `yaml:"net"`
}

// PongPaddle defines both paddles.
type PongPaddle struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	WallGap float64 `yaml:"wall_gap"` // Gap between each paddle and its side wall
	KeyStep float64 `yaml:"key_step"`
}

// PongBall defines the round ball, its speed curve and rebound policy.
type PongBall struct {
	Radius         float64 `yaml:"radius"`
	ServeSpeed     float64 `yaml:"serve_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added after every paddle hit
	MaxAngle       float64 `yaml:"max_angle"`       // Degrees from horizontal
	ClampOffset    bool    `yaml:"clamp_offset"`
	NudgeStep      float64 `yaml:"nudge_step"` // Overlap correction step at top/bottom walls
}

// PongComputer defines the computer opponent.
type PongComputer struct {
	Speed float64 `yaml:"speed"` // Fraction of the distance to the ball closed per tick
}

// PongNet defines the dashed centre line.
type PongNet struct {
	Width float64 `yaml:"width"`
	Dash  float64 `yaml:"dash"`
	Gap   float64 `yaml:"gap"`
}

// MinNudgeStep is the smallest accepted pong wall correction step.
const MinNudgeStep = 0.01

// Validate checks the configuration for values the simulation cannot run with.
func (c PongConfig) Validate() error {
	if err := c.Canvas.validate("pong"); err != nil {
		return err
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return invalid("pong paddle must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Ball.Radius <= 0 || 2*c.Ball.Radius >= c.Canvas.Height || 2*c.Ball.Radius >= c.Canvas.Width {
		return invalid("pong ball radius must be positive and fit the canvas, got %g", c.Ball.Radius)
	}
	if c.Ball.ServeSpeed <= 0 || c.Ball.MaxSpeed < c.Ball.ServeSpeed {
		return invalid("pong ball speeds must satisfy 0 < serve_speed <= max_speed, got %g and %g",
			c.Ball.ServeSpeed, c.Ball.MaxSpeed)
	}
	if c.Ball.SpeedIncrement < 0 {
		return invalid("pong speed_increment must be >= 0, got %g", c.Ball.SpeedIncrement)
	}
	if free := c.Canvas.Height - 2*c.Ball.Radius; c.Ball.NudgeStep < MinNudgeStep || c.Ball.NudgeStep > free {
		return invalid("pong nudge_step must be in [%g, %g], got %g", MinNudgeStep, free, c.Ball.NudgeStep)
	}
	if err := validateAngle("pong", c.Ball.MaxAngle); err != nil {
		return err
	}
	if c.Computer.Speed < 0 || c.Computer.Speed > 1 {
		return invalid("pong computer speed must be in [0, 1], got %g", c.Computer.Speed)
	}
	if c.Net.Dash+c.Net.Gap <= 0 {
		return invalid("pong net dash plus gap must be > 0")
	}
	return nil
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	TilesPerRow   int     `yaml:"tiles_per_row"`
	TileSize      float64 `yaml:"tile_size"`
	StartSegments int     `yaml:"start_segments"`
	TickRate      int     `yaml:"tick_rate"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	if c.TilesPerRow <= 0 || c.TileSize <= 0 {
		return invalid("snake grid must be positive, got %d tiles of %g", c.TilesPerRow, c.TileSize)
	}
	if c.StartSegments <= 0 || c.TilesPerRow/2+c.StartSegments > c.TilesPerRow {
		return invalid("snake start_segments must fit right of the centre tile, got %d", c.StartSegments)
	}
	if c.TickRate <= 0 {
		return invalid("snake tick_rate must be > 0, got %d", c.TickRate)
	}
	return nil
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
}

// Validate checks the configuration for values the game cannot run with.
func (c TetrisConfig) Validate() error {
	return c.Canvas.validate("tetris")
}
