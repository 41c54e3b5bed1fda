// Package config provides YAML-based game configuration loading and
// difficulty presets for the breaker platform.
package config

// BreakerConfig contains all tunable parameters for the game.
type BreakerConfig struct {
	Physics  Physics  `yaml:"physics"`
	Ball     Ball     `yaml:"ball"`
	Paddle   Paddle   `yaml:"paddle"`
	Bricks   Bricks   `yaml:"bricks"`
	Perks    Perks    `yaml:"perks"`
	Bullets  Bullets  `yaml:"bullets"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Physics defines motion and difficulty-ramp parameters.
// Speeds are in play-field units per second.
type Physics struct {
	BallSpeed     float64 `yaml:"ball_speed"`      // Base ball speed at run start
	BallSpeedRamp float64 `yaml:"ball_speed_ramp"` // Added to live ball speed per second
	SpeedGainRate float64 `yaml:"speed_gain_rate"` // Added to the reset-speed accumulator per second
	PaddleSpeed   float64 `yaml:"paddle_speed"`
	MaxStep       float64 `yaml:"max_step"` // Upper bound on dt per tick, seconds
}

// Ball defines ball parameters.
type Ball struct {
	Radius float64 `yaml:"radius"`
}

// Paddle defines paddle geometry and width limits.
type Paddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of paddle center from the field bottom
	Margin       float64 `yaml:"margin"`        // Gap kept between paddle edge and side walls
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
}

// Bricks defines the grid layout built at new-game.
type Bricks struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	MarginX      float64 `yaml:"margin_x"`
	MarginY      float64 `yaml:"margin_y"`
	Gap          float64 `yaml:"gap"`
	Height       float64 `yaml:"height"`
	BasePoints   int     `yaml:"base_points"`    // Points for row 0
	PointsPerRow int     `yaml:"points_per_row"` // Added per row index
	HardRows     int     `yaml:"hard_rows"`      // Top rows that take two hits
}

// Perks defines power-up spawning, durations, and effect magnitudes.
// Durations are in seconds.
type Perks struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Probability of a drop per destroyed brick
	FallSpeed   float64 `yaml:"fall_speed"`
	Size        float64 `yaml:"size"`

	// Spawn weights (relative, higher = more common)
	WeightExtraLife      int `yaml:"weight_extra_life"`
	WeightSpeedUp        int `yaml:"weight_speed_up"`
	WeightWidePaddle     int `yaml:"weight_wide_paddle"`
	WeightShrinkPaddle   int `yaml:"weight_shrink_paddle"`
	WeightThroughBall    int `yaml:"weight_through_ball"`
	WeightFireball       int `yaml:"weight_fireball"`
	WeightShootingPaddle int `yaml:"weight_shooting_paddle"`
	WeightInstantDeath   int `yaml:"weight_instant_death"`

	SpeedUpFactor float64 `yaml:"speed_up_factor"`
	WideFactor    float64 `yaml:"wide_factor"`
	ShrinkFactor  float64 `yaml:"shrink_factor"`

	WideDuration     float64 `yaml:"wide_duration"`
	ShrinkDuration   float64 `yaml:"shrink_duration"`
	ThroughDuration  float64 `yaml:"through_duration"`
	FireballDuration float64 `yaml:"fireball_duration"`
	ShootingDuration float64 `yaml:"shooting_duration"`
}

// Bullets defines projectile parameters for the shooting paddle.
type Bullets struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Gameplay defines run-level rules.
type Gameplay struct {
	Lives    int `yaml:"lives"`
	MaxLives int `yaml:"max_lives"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts starting parameters for a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *BreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 150
		cfg.Physics.BallSpeed = 280
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Physics.BallSpeed = 380
	}
}
