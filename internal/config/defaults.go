package config

import (
	_ "embed"
)

//go:embed defaults/breaker.yaml
var defaultBreakerYAML []byte

// DefaultBreakerConfig returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML cannot parse.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Physics: Physics{
			BallSpeed:     320,
			BallSpeedRamp: 4,
			SpeedGainRate: 2,
			PaddleSpeed:   630,
			MaxStep:       0.03,
		},
		Ball: Ball{
			Radius: 9,
		},
		Paddle: Paddle{
			Width:        120,
			Height:       16,
			BottomOffset: 48,
			Margin:       6,
			MinWidth:     60,
			MaxWidth:     320,
		},
		Bricks: Bricks{
			Rows:         7,
			Cols:         12,
			MarginX:      70,
			MarginY:      100,
			Gap:          6,
			Height:       22,
			BasePoints:   50,
			PointsPerRow: 10,
			HardRows:     2,
		},
		Perks: Perks{
			SpawnChance: 0.22,
			FallSpeed:   150,
			Size:        18,

			WeightExtraLife:      18,
			WeightSpeedUp:        18,
			WeightWidePaddle:     16,
			WeightShrinkPaddle:   14,
			WeightThroughBall:    12,
			WeightFireball:       12,
			WeightShootingPaddle: 6,
			WeightInstantDeath:   4,

			SpeedUpFactor: 1.18,
			WideFactor:    1.35,
			ShrinkFactor:  0.7,

			WideDuration:     14,
			ShrinkDuration:   12,
			ThroughDuration:  10,
			FireballDuration: 8,
			ShootingDuration: 12,
		},
		Bullets: Bullets{
			Speed:  640,
			Width:  4,
			Height: 10,
		},
		Gameplay: Gameplay{
			Lives:    3,
			MaxLives: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakerYAML
}
