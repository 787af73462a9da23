// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import (
	"errors"
	"fmt"
)

// World is the size of the simulated playfield in world units.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteSize is the on-screen extent of a sprite in world units.
type SpriteSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World      World            `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Sprites    FlappySprites    `yaml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    Scoring          `yaml:"scoring"`
}

// FlappyPhysics defines physics parameters for Flappy Bird.
// Gravity and velocities are per second; they are scaled by the frame delta.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	FlapImpulse    float64 `yaml:"flap_impulse"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	RotationFactor float64 `yaml:"rotation_factor"`
	RotationMin    float64 `yaml:"rotation_min"`
	RotationMax    float64 `yaml:"rotation_max"`
}

// FlappyObstacles defines the tube ring.
type FlappyObstacles struct {
	Count              int     `yaml:"count"`
	Speed              float64 `yaml:"speed"` // World units per tick
	Gap                float64 `yaml:"gap"`
	OffsetMargin       float64 `yaml:"offset_margin"`
	BaseDistanceFactor float64 `yaml:"base_distance_factor"` // Fraction of world width
	SpacingMin         float64 `yaml:"spacing_min"`
	SpacingMax         float64 `yaml:"spacing_max"`
}

// FlappyPlayer defines player parameters for Flappy Bird.
type FlappyPlayer struct {
	HitboxFraction float64 `yaml:"hitbox_fraction"` // Circle radius as a fraction of sprite width
	FlapFrameTicks int     `yaml:"flap_frame_ticks"`
}

// FlappySprites holds the sprite sizes used when no asset directory is given.
type FlappySprites struct {
	Bird       SpriteSize `yaml:"bird"`
	BirdDead   SpriteSize `yaml:"bird_dead"`
	TopTube    SpriteSize `yaml:"top_tube"`
	BottomTube SpriteSize `yaml:"bottom_tube"`
}

// Scoring names the preference key a game persists its high score under.
type Scoring struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// BounceConfig contains all configuration for the Bouncing Ball game.
type BounceConfig struct {
	World    World          `yaml:"world"`
	Ball     BounceBall     `yaml:"ball"`
	PowerUps BouncePowerUps `yaml:"powerups"`
	Session  BounceSession  `yaml:"session"`
	Scoring  Scoring        `yaml:"scoring"`
}

// BounceBall defines the ball. Speed is in world units per tick.
type BounceBall struct {
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	TouchBonus int     `yaml:"touch_bonus"`
}

// BouncePowerUps defines power-up spawning and effects.
type BouncePowerUps struct {
	Radius           float64 `yaml:"radius"`
	LifetimeTicks    int     `yaml:"lifetime_ticks"`
	SpawnChance      float64 `yaml:"spawn_chance"`       // Per tick
	TouchSpawnChance float64 `yaml:"touch_spawn_chance"` // Per tap
	MarginX          float64 `yaml:"margin_x"`
	MarginY          float64 `yaml:"margin_y"`
	SpeedFactor      float64 `yaml:"speed_factor"`
	SpeedBonus       int     `yaml:"speed_bonus"`
	SlowFactor       float64 `yaml:"slow_factor"`
	SlowBonus        int     `yaml:"slow_bonus"`
	ScoreBonus       int     `yaml:"score_bonus"`
}

// BounceSession bounds a bouncing ball session.
type BounceSession struct {
	TimeLimitTicks int `yaml:"time_limit_ticks"` // 0 = unlimited
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks the values the simulation divides by or draws from.
func (c FlappyConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Obstacles.Count < 1:
		return fmt.Errorf("%w: obstacles.count must be at least 1", ErrInvalid)
	case c.Obstacles.Gap <= 0 || c.Obstacles.Gap >= c.World.Height:
		return fmt.Errorf("%w: obstacles.gap must be within the world height", ErrInvalid)
	case c.World.Height-c.Obstacles.Gap-c.Obstacles.OffsetMargin < 0:
		return fmt.Errorf("%w: gap plus offset margin exceed the world height", ErrInvalid)
	case c.Obstacles.SpacingMin <= 0 || c.Obstacles.SpacingMax < c.Obstacles.SpacingMin:
		return fmt.Errorf("%w: spacing range is empty", ErrInvalid)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_fall_speed must be positive", ErrInvalid)
	}
	return nil
}

// Validate checks the bouncing ball values.
func (c BounceConfig) Validate() error {
	switch {
	case c.World.Width <= 2*c.PowerUps.MarginX || c.World.Height <= 2*c.PowerUps.MarginY:
		return fmt.Errorf("%w: world too small for power-up margins", ErrInvalid)
	case c.Ball.Radius <= 0 || 2*c.Ball.Radius >= c.World.Width || 2*c.Ball.Radius >= c.World.Height:
		return fmt.Errorf("%w: ball radius must fit the world", ErrInvalid)
	case c.PowerUps.LifetimeTicks < 1:
		return fmt.Errorf("%w: powerups.lifetime_ticks must be at least 1", ErrInvalid)
	}
	return nil
}
