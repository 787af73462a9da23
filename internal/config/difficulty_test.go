package config

import (
	"math"
	"testing"
)

func TestDifficultyConstantWithoutProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	first := dm.Speed(6, 0, 0)
	later := dm.Speed(6, 500, 100000)
	if first != later {
		t.Errorf("speed should stay constant, got %v then %v", first, later)
	}
	if math.Abs(first-7.8) > 1e-9 {
		t.Errorf("Speed() = %v, want 7.8", first)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := dm.Level(5, 0); got != 0.5 {
		t.Errorf("Level(5) = %v, want 0.5", got)
	}
	if got := dm.Level(50, 0); got != 1.0 {
		t.Errorf("Level should clamp at 1.0, got %v", got)
	}
	if got := dm.Speed(4, 10, 0); got != 8 {
		t.Errorf("Speed at max = %v, want 8", got)
	}
}
