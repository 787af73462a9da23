package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap-arcade/internal/platform/tui"
	"github.com/vovakirdan/flap-arcade/internal/registry"
	"github.com/vovakirdan/flap-arcade/internal/replay"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space/Up/Click - Flap / tap
  Enter          - Start from the menu
  P              - Pause
  R              - Restart (after game over)
  D              - Toggle debug overlay
  Esc/B          - Leave (when not playing)
  Q/Ctrl+C       - Quit

Difficulty options (flappy):
  easy   - Start at lowest speed, progresses to max
  normal - Start at 30% speed, progresses to max
  hard   - Start at 70% speed, progresses to max
  fixed  - No progression, stays at config's initial speed

Examples:
  arcade play flappy
  arcade play flappy --difficulty hard
  arcade play flappy --assets ./sprites
  arcade play bounce --config ./my-bounce.yaml
  arcade play bounce --seed 42 --record run.rec`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite PNGs (sizes the hitboxes)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the run to this file")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	deps := sess.deps()
	deps.ConfigPath = flagConfig
	deps.Difficulty = flagDifficulty
	deps.AssetsDir = flagAssets

	game, err := registry.Create(gameID, deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	opts := tui.Options{Store: sess.store, Diag: sess.ring, Logger: sess.logger}
	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(gameID, cfg)
		opts.Recorder.SetDifficulty(flagDifficulty)
		opts.Recorder.SetAssetsDir(absPath(flagAssets))
	}

	result, runErr := tui.Run(game, cfg, opts)

	if opts.Recorder != nil {
		rec := opts.Recorder.Finish(result.State.Score)
		if err := replay.Save(flagRecord, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save replay: %v\n", err)
		} else {
			fmt.Printf("Replay saved to %s (%d ticks, score %d)\n", flagRecord, rec.Ticks, rec.Score)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		sess.Close()
		os.Exit(1)
	}
}

// absPath makes a recorded path independent of the working directory.
func absPath(p string) string {
	if p == "" {
		return ""
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
