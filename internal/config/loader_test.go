package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := load("flappy.yaml", "", defaultFlappyYAML, func() FlappyConfig { return FlappyConfig{} })
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	def := DefaultFlappyConfig()

	if cfg.World != def.World {
		t.Errorf("world = %+v, want %+v", cfg.World, def.World)
	}
	if cfg.Obstacles.Count != def.Obstacles.Count || cfg.Obstacles.Gap != def.Obstacles.Gap {
		t.Errorf("obstacles = %+v, want %+v", cfg.Obstacles, def.Obstacles)
	}
	if cfg.Scoring.HighScoreKey != "highScore" {
		t.Errorf("high score key = %q", cfg.Scoring.HighScoreKey)
	}

	ball, err := load("bounce.yaml", "", defaultBounceYAML, func() BounceConfig { return BounceConfig{} })
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if ball.Ball != DefaultBounceConfig().Ball || ball.PowerUps != DefaultBounceConfig().PowerUps {
		t.Errorf("bounce defaults drifted: %+v", ball)
	}
}

func TestLoadFlappyCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("obstacles:\n  gap: 300\n  count: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Obstacles.Gap != 300 || cfg.Obstacles.Count != 6 {
		t.Errorf("custom values not applied: %+v", cfg.Obstacles)
	}
	if cfg.Physics.Gravity != DefaultFlappyConfig().Physics.Gravity {
		t.Errorf("unset values should keep defaults, gravity = %v", cfg.Physics.Gravity)
	}
}

func TestLoadFlappyMissingFile(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadFlappyRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFlappy(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestBounceValidate(t *testing.T) {
	cfg := DefaultBounceConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	cfg.Ball.Radius = cfg.World.Height
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("oversized ball should be invalid, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyFlappyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyFlappyPreset(&cfg, DifficultyHard)

	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	ApplyFlappyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"flappy", "bounce"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("no embedded config for %q", id)
		}
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no config")
	}
}
