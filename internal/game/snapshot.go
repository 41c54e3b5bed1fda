package game

import "math"

// Snapshot is the read-only state the renderer consumes once per tick.
// Entity slices are copies; mutating a snapshot never touches the
// session.
type Snapshot struct {
	Screen    Screen
	FieldW    float64
	FieldH    float64
	Score     int
	Lives     int
	PlayTime  float64
	CanResume bool

	MenuIndex  int
	MenuItems  []string
	PauseIndex int
	PauseItems []string

	Ball    Ball
	Paddle  Paddle
	Bricks  []Brick
	Perks   []Perk
	Bullets []Bullet

	// High-score view: runs sorted (score desc, time asc) plus the
	// best-run summary.
	Runs     []Run
	Best     Run
	HaveBest bool
}

// Snapshot captures the current session state for presentation.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:    s.screen,
		FieldW:    s.fieldW,
		FieldH:    s.fieldH,
		Score:     s.score,
		Lives:     s.lives,
		PlayTime:  s.playTime,
		CanResume: s.canResume,

		MenuIndex:  s.menuIndex,
		MenuItems:  s.MenuItems(),
		PauseIndex: s.pauseIndex,
		PauseItems: s.PauseItems(),

		Ball:   s.ball,
		Paddle: s.paddle,

		Bricks:  make([]Brick, len(s.bricks)),
		Perks:   make([]Perk, len(s.perks)),
		Bullets: make([]Bullet, len(s.bullets)),

		Runs: SortRuns(s.history),
	}
	copy(snap.Bricks, s.bricks)
	copy(snap.Perks, s.perks)
	copy(snap.Bullets, s.bullets)
	snap.Best, snap.HaveBest = bestRun(s.history)
	return snap
}

// Hash folds the simulation-relevant snapshot fields into a single
// value for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}

	mix(uint64(snap.Screen))      //#nosec G115 -- hash computation
	mix(uint64(snap.Score))       //#nosec G115 -- hash computation
	mix(uint64(snap.Lives))       //#nosec G115 -- hash computation
	mixF(snap.PlayTime)
	mixF(snap.Ball.Pos.X)
	mixF(snap.Ball.Pos.Y)
	mixF(snap.Ball.Vel.X)
	mixF(snap.Ball.Vel.Y)
	mixF(snap.Ball.Speed)
	mixF(snap.Paddle.Pos.X)
	mixF(snap.Paddle.W)

	for i := range snap.Bricks {
		b := &snap.Bricks[i]
		if b.Alive {
			mix(1)
		} else {
			mix(0)
		}
		mix(uint64(b.HP)) //#nosec G115 -- hash computation
	}
	for i := range snap.Perks {
		mix(uint64(snap.Perks[i].Type)) //#nosec G115 -- hash computation
		mixF(snap.Perks[i].Pos.Y)
	}
	for i := range snap.Bullets {
		mixF(snap.Bullets[i].Pos.Y)
	}
	return h
}
