package config

import "github.com/vovakirdan/flap-arcade/internal/core"

// DifficultyManager derives the tube speed of a session from its progress.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64 // Level at score 0, tick 0
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level grows during a session.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far along the progression axis a session is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	limit := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score":
		return core.ClampF(float64(score)/limit, 0, 1)
	case "time":
		return core.ClampF(float64(ticks)/limit, 0, 1)
	}
	return 0
}

// Level interpolates from the initial level to 1 as the session progresses.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}
	return d.start + d.progress(score, ticks)*(1-d.start)
}

// Speed scales baseSpeed by the current level. Without progression the
// result is constant for the whole session.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
