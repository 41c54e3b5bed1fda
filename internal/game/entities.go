// Package game implements the brick-breaker simulation and its
// screen-flow state machine. All state lives in a Session owned by a
// single goroutine; the platform drives it with intent calls and one
// Advance per tick.
package game

import (
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Ball is the single ball in play. Speed is tracked separately from the
// velocity vector so reflections can rescale to the ramped speed.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Speed  float64
	Radius float64

	Stuck bool // Resting on the paddle, not yet launched

	Through       bool // Passes through bricks without bouncing
	ThroughTimer  float64
	Fireball      bool // Implies through; visually distinct
	FireballTimer float64
}

// Paddle is the player's paddle. Y is fixed for the lifetime of a field
// size; only X moves.
type Paddle struct {
	Pos   core.Vec2
	W, H  float64
	Speed float64

	WidthTimer float64 // Remaining duration of a width effect, 0 = base width

	Shooting      bool
	ShootingTimer float64
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.W, p.H)
}

// Brick is one cell of the grid built at level start.
type Brick struct {
	X, Y   float64 // Center position
	W, H   float64
	Alive  bool
	HP     int
	Color  core.Color
	Points int
}

// Rect returns the brick's bounding rectangle.
func (b *Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Perk is a falling power-up spawned from a destroyed brick.
type Perk struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Size  float64
	Type  PerkType
	Alive bool
}

// Rect returns the perk's bounding rectangle.
func (p *Perk) Rect() core.Rect {
	return core.NewRect(p.Pos.X, p.Pos.Y, p.Size, p.Size)
}

// Bullet is a projectile fired by the shooting paddle.
type Bullet struct {
	Pos   core.Vec2
	Vel   core.Vec2
	W, H  float64
	Alive bool
}

// Rect returns the bullet's bounding rectangle.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.W, b.H)
}
