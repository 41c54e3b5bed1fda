package core

// RuntimeConfig contains configuration passed to the game session at
// initialization. The platform uses it to size the play field and to
// seed the RNG for deterministic simulation.
type RuntimeConfig struct {
	FieldW   float64 // Play-field width in logical units
	FieldH   float64 // Play-field height in logical units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic perk rolls
}

// DefaultConfig returns a RuntimeConfig with the classic field size.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		FieldW:   900,
		FieldH:   700,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
