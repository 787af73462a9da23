package bounce

import (
	"time"

	"github.com/vovakirdan/flap-arcade/internal/core"
)

// Snapshot is a read-only copy of what a renderer needs for one frame.
type Snapshot struct {
	Phase     core.Phase
	Paused    bool
	Ball      Ball
	PowerUps  []PowerUp
	Score     int
	HighScore int
	Elapsed   time.Duration
	Remaining time.Duration // Zero when the round is unlimited
}

// Snapshot copies the current frame.
func (g *Game) Snapshot() Snapshot {
	s := g.session.clone()
	snap := Snapshot{
		Phase:     g.phase,
		Paused:    g.paused,
		Ball:      s.Ball,
		PowerUps:  s.PowerUps,
		Score:     s.Score,
		HighScore: g.high.Value(),
		Elapsed:   g.Elapsed(),
	}
	if limit := g.cfg.Session.TimeLimitTicks; limit > 0 {
		left := max(limit-s.Ticks, 0)
		snap.Remaining = time.Duration(left) * g.runtime.TickDuration()
	}
	return snap
}
