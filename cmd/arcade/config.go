package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default configuration",
	Long: `Prints the built-in YAML configuration for a game. Save it to
~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml and edit it to
override the defaults, or pass it to 'arcade play --config'.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data, err := config.GetDefaultYAML(args[0])
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
