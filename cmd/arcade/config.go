package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config of a game",
	Long: `Print the built-in YAML configuration of a game. Save it under
~/.arcade/configs/ or ./configs/ to override the defaults, or pass it
to 'arcade play --config'.

Examples:
  arcade config flappy > ~/.arcade/configs/flappy.yaml
  arcade config bounce`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no config for game %q\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
