package game

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// PerkType represents the different power-up kinds.
type PerkType int

const (
	PerkExtraLife PerkType = iota
	PerkSpeedUp
	PerkWidePaddle
	PerkShrinkPaddle
	PerkThroughBall
	PerkFireball
	PerkInstantDeath
	PerkShootingPaddle
	PerkTypeCount // Sentinel for counting types
)

// String returns the name of the perk type.
func (p PerkType) String() string {
	switch p {
	case PerkExtraLife:
		return "Life"
	case PerkSpeedUp:
		return "Speed"
	case PerkWidePaddle:
		return "Wide"
	case PerkShrinkPaddle:
		return "Shrink"
	case PerkThroughBall:
		return "Through"
	case PerkFireball:
		return "Fireball"
	case PerkInstantDeath:
		return "Death"
	case PerkShootingPaddle:
		return "Guns"
	default:
		return "?"
	}
}

// Glyph returns the display character for a perk type.
func (p PerkType) Glyph() rune {
	switch p {
	case PerkExtraLife:
		return '♥'
	case PerkSpeedUp:
		return '»'
	case PerkWidePaddle:
		return 'W'
	case PerkShrinkPaddle:
		return 'S'
	case PerkThroughBall:
		return 'T'
	case PerkFireball:
		return 'F'
	case PerkInstantDeath:
		return '☠'
	case PerkShootingPaddle:
		return 'G'
	default:
		return '?'
	}
}

// Color returns the display color for a perk type.
func (p PerkType) Color() core.Color {
	switch p {
	case PerkExtraLife:
		return core.ColorBrightRed
	case PerkSpeedUp:
		return core.ColorBrightYellow
	case PerkWidePaddle:
		return core.ColorBrightGreen
	case PerkShrinkPaddle:
		return core.ColorYellow
	case PerkThroughBall:
		return core.ColorBrightCyan
	case PerkFireball:
		return core.ColorOrange
	case PerkInstantDeath:
		return core.ColorGray
	case PerkShootingPaddle:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// perkWeight pairs a perk type with its relative spawn weight.
type perkWeight struct {
	Type   PerkType
	Weight int
}

// perkWeights builds the weighted-distribution table from config.
// Keeping it a table (rather than cascading probability bounds) makes
// the distribution auditable and testable.
func perkWeights(cfg config.Perks) []perkWeight {
	return []perkWeight{
		{PerkExtraLife, cfg.WeightExtraLife},
		{PerkSpeedUp, cfg.WeightSpeedUp},
		{PerkWidePaddle, cfg.WeightWidePaddle},
		{PerkShrinkPaddle, cfg.WeightShrinkPaddle},
		{PerkThroughBall, cfg.WeightThroughBall},
		{PerkFireball, cfg.WeightFireball},
		{PerkShootingPaddle, cfg.WeightShootingPaddle},
		{PerkInstantDeath, cfg.WeightInstantDeath},
	}
}

// rollPerkType selects a perk type with a single uniform draw over the
// weight table.
func rollPerkType(rng *SimpleRNG, cfg config.Perks) PerkType {
	weights := perkWeights(cfg)

	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return PerkExtraLife
	}

	roll := rng.Intn(total)
	cumulative := 0
	for _, w := range weights {
		cumulative += w.Weight
		if roll < cumulative {
			return w.Type
		}
	}
	return PerkExtraLife
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator) so its state can be
// captured in snapshots.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()) / float64(1<<64)
}

// State returns the current RNG state for snapshotting.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
