package replay

import (
	"fmt"

	"github.com/vovakirdan/flap-arcade/internal/core"
	"github.com/vovakirdan/flap-arcade/internal/registry"
)

// Result is the outcome of a playback.
type Result struct {
	Ticks        int
	State        core.GameState
	FrameErrors  int
	ScoreMatches bool // Whether the final score equals the recorded one
}

// Run resets g with the recorded seed and feeds it every recorded tick.
func Run(g registry.Game, rec *Recording) (Result, error) {
	if g.ID() != rec.GameID {
		return Result{}, fmt.Errorf("replay: recording is for %q, not %q", rec.GameID, g.ID())
	}

	cfg := core.DefaultConfig()
	cfg.Seed = rec.Seed
	if rec.TickRate > 0 {
		cfg.TickRate = rec.TickRate
	}
	g.Reset(cfg)
	dt := cfg.TickDuration()

	byTick := make(map[int][]core.Action, len(rec.Frames))
	for _, f := range rec.Frames {
		byTick[f.Tick] = f.Actions
	}

	var res Result
	for tick := 0; tick < rec.Ticks; tick++ {
		step := g.Step(core.NewInputFrame(byTick[tick]...), dt)
		if step.Err != nil {
			res.FrameErrors++
		}
		res.State = step.State
		res.Ticks++
	}

	if rec.Ticks == 0 {
		res.State = g.State()
	}
	res.ScoreMatches = res.State.Score == rec.Score
	return res, nil
}
