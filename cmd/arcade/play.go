package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
	"github.com/vovakirdan/canvas-arcade/internal/platform/window"
	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse        - Move the paddle
  Arrows/WASD  - Move the paddle, steer the snake
  P/Space      - Pause
  R            - Restart
  Q/Esc        - Quit

Difficulty options:
  easy   - Wider paddle, slower ball, slower computer
  normal - Config values as loaded
  hard   - Narrower paddle, faster ball, sharper computer

Examples:
  arcade play breakout
  arcade play pong --difficulty hard
  arcade play snake --window
  arcade play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := prepareGame(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(flagLogFile, flagLogLevel, flagWindow)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	}

	if flagWindow {
		return window.Run(game, cfg)
	}
	width, height := terminalSize()
	return tui.Run(game, width, height, cfg)
}

// prepareGame creates and configures a game. An invalid configuration is
// reported before any loop starts.
func prepareGame(id, configPath, difficulty string) (registry.Game, error) {
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if err := game.Configure(configPath, difficulty); err != nil {
		return nil, fmt.Errorf("configure %s: %w", id, err)
	}
	return game, nil
}

// terminalSize returns the terminal dimensions, 80x24 when unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
