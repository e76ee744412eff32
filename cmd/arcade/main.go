// arcade plays canvas-style arcade games in the terminal or in a window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>          - Override the game's tick rate
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/canvas-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/pong"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/snake"
	_ "github.com/vovakirdan/canvas-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Canvas Arcade - breakout, pong and snake in your terminal",
	Long: `Canvas Arcade runs small canvas games on a shared ball and paddle
simulation. Games render to the terminal or, with --window, to a desktop window.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  config   - Print a game's default configuration

Examples:
  arcade list
  arcade play breakout
  arcade play pong --window --difficulty hard
  arcade config pong > ~/.arcade/configs/pong.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = game default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
