package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/core"
	"github.com/vovakirdan/canvas-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter        - Select game
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file ./arcade.log`,
	RunE: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --log-file, --log-level)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Menu loop
	for {
		width, height := terminalSize()

		gameID, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		if gameID == "" {
			return nil
		}

		game, err := prepareGame(gameID, "", "")
		if err != nil {
			return err
		}

		cfg := core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
			Logger:   logger,
		}
		if err := tui.Run(game, width, height, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
