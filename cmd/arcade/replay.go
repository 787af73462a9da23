package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap-arcade/internal/registry"
	"github.com/vovakirdan/flap-arcade/internal/replay"
)

var flagReplayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run",
	Long: `Load a recording made with 'arcade play --record' and run it again
without a terminal UI. The game is rebuilt with the recorded difficulty
and sprite directory, and with the default configuration search path, so a
run recorded with --config replays faithfully only when the same settings
are found there.

Examples:
  arcade replay run.rec
  arcade replay run.rec --verbose`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Log game events to stderr")
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	requireGame(rec.GameID)

	var w io.Writer = io.Discard
	if flagReplayVerbose {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{Level: log.DebugLevel, Prefix: "replay"})

	game, err := registry.Create(rec.GameID, registry.Deps{
		Logger:     logger,
		Difficulty: rec.Difficulty,
		AssetsDir:  rec.AssetsDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	result, err := replay.Run(game, rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Game:     %s\n", game.Title())
	fmt.Printf("Seed:     %d\n", rec.Seed)
	fmt.Printf("Ticks:    %d (%d with input)\n", result.Ticks, len(rec.Frames))
	fmt.Printf("Phase:    %s\n", result.State.Phase)
	fmt.Printf("Score:    %d (recorded %d)\n", result.State.Score, rec.Score)
	if result.FrameErrors > 0 {
		fmt.Printf("Rejected: %d frames\n", result.FrameErrors)
	}
	if !result.ScoreMatches {
		fmt.Fprintln(os.Stderr, "Replay diverged from the recording.")
		os.Exit(1)
	}
}
