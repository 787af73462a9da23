package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{Width: 1280, Height: 960},
		Physics: FlappyPhysics{
			Gravity:        2200,
			FlapImpulse:    700,
			MaxFallSpeed:   900,
			RotationFactor: 0.2,
			RotationMin:    -90,
			RotationMax:    30,
		},
		Obstacles: FlappyObstacles{
			Count:              4,
			Speed:              6,
			Gap:                360,
			OffsetMargin:       200,
			BaseDistanceFactor: 0.75,
			SpacingMin:         0.8,
			SpacingMax:         1.2,
		},
		Player: FlappyPlayer{
			HitboxFraction: 1.0 / 3.0,
			FlapFrameTicks: 10,
		},
		Sprites: FlappySprites{
			Bird:       SpriteSize{Width: 68, Height: 48},
			BirdDead:   SpriteSize{Width: 68, Height: 48},
			TopTube:    SpriteSize{Width: 104, Height: 800},
			BottomTube: SpriteSize{Width: 104, Height: 800},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
		Scoring: Scoring{HighScoreKey: "highScore"},
	}
}

// DefaultBounceConfig returns the default Bouncing Ball configuration.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		World: World{Width: 1280, Height: 960},
		Ball: BounceBall{
			Speed:      12,
			Radius:     40,
			TouchBonus: 8,
		},
		PowerUps: BouncePowerUps{
			Radius:           15,
			LifetimeTicks:    300,
			SpawnChance:      0.002,
			TouchSpawnChance: 0.3,
			MarginX:          50,
			MarginY:          100,
			SpeedFactor:      1.5,
			SpeedBonus:       10,
			SlowFactor:       0.7,
			SlowBonus:        5,
			ScoreBonus:       25,
		},
		Session: BounceSession{
			TimeLimitTicks: 3600, // One minute at 60 FPS
		},
		Scoring: Scoring{HighScoreKey: "bounceHighScore"},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "bounce":
		return defaultBounceYAML
	default:
		return nil
	}
}
