package game

import (
	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Session is the single live game aggregate: entity collections, the
// run-level counters, and the screen-flow state. It is owned by one
// logical thread; no locking, no blocking operations.
type Session struct {
	cfg     config.BreakerConfig
	runtime core.RuntimeConfig

	screen     Screen
	menuIndex  int
	pauseIndex int
	canResume  bool
	quit       bool

	fieldW, fieldH float64

	lives     int
	score     int
	playTime  float64
	speedGain float64 // Difficulty accumulator added to the ball's reset speed

	ball    Ball
	paddle  Paddle
	bricks  []Brick
	perks   []Perk
	bullets []Bullet

	heldLeft   bool
	heldRight  bool
	pointerX   float64
	hasPointer bool

	history []Run

	rng *SimpleRNG
}

// NewSession creates a session on the Menu screen with the given
// configuration. A zero seed is replaced by 1 inside the RNG; callers
// wanting time-derived seeds set runtime.Seed themselves.
func NewSession(cfg config.BreakerConfig, runtime core.RuntimeConfig) *Session {
	s := &Session{
		cfg:     cfg,
		runtime: runtime,
		screen:  ScreenMenu,
		fieldW:  runtime.FieldW,
		fieldH:  runtime.FieldH,
		rng:     NewSimpleRNG(runtime.Seed),
	}
	s.resetPlayState()
	return s
}

// Config returns the session's game configuration.
func (s *Session) Config() config.BreakerConfig {
	return s.cfg
}

// resetPlayState restores paddle, ball, counters, and entity
// collections to their new-game defaults. Bricks are not rebuilt here;
// NewGame does that so Resize can relayout only at the next new game.
func (s *Session) resetPlayState() {
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.speedGain = 0
	s.playTime = 0
	s.perks = s.perks[:0]
	s.bullets = s.bullets[:0]

	s.paddle = Paddle{
		Pos:   core.Vec2{X: s.fieldW / 2, Y: s.fieldH - s.cfg.Paddle.BottomOffset},
		W:     s.cfg.Paddle.Width,
		H:     s.cfg.Paddle.Height,
		Speed: s.cfg.Physics.PaddleSpeed,
	}
	s.ball = Ball{
		Radius: s.cfg.Ball.Radius,
		Speed:  s.cfg.Physics.BallSpeed,
	}
	s.resetBallOnPaddle()
	s.heldLeft = false
	s.heldRight = false
	s.hasPointer = false
}

// resetBallOnPaddle puts the ball back on the paddle with all ball
// effects cleared and speed restored to base plus the accumulated gain.
func (s *Session) resetBallOnPaddle() {
	s.ball.Stuck = true
	s.ball.Through = false
	s.ball.ThroughTimer = 0
	s.ball.Fireball = false
	s.ball.FireballTimer = 0
	s.ball.Speed = s.cfg.Physics.BallSpeed + s.speedGain
	s.pinBallToPaddle()
	s.ball.Vel = core.Vec2{X: 0, Y: -1}
}

// pinBallToPaddle centers a stuck ball just above the paddle surface.
func (s *Session) pinBallToPaddle() {
	s.ball.Pos = core.Vec2{
		X: s.paddle.Pos.X,
		Y: s.paddle.Pos.Y - s.paddle.H/2 - s.ball.Radius - 1,
	}
}

// newGame starts a fresh run: everything reset, grid rebuilt for the
// current field size, clock restarted, screen set to Playing.
func (s *Session) newGame() {
	s.resetPlayState()
	s.bricks = BuildGrid(s.cfg.Bricks, s.fieldW)
	s.screen = ScreenPlaying
	s.canResume = true
	s.pauseIndex = 0
}

// exitToMenu abandons the current run and fully resets session state.
func (s *Session) exitToMenu() {
	s.resetPlayState()
	s.bricks = s.bricks[:0]
	s.canResume = false
	s.screen = ScreenMenu
	s.menuIndex = 0
	s.pauseIndex = 0
}

// endRun records the finished run and moves to the given terminal
// screen (Win or GameOver).
func (s *Session) endRun(result Screen) {
	s.history = append(s.history, Run{Seconds: s.playTime, Score: s.score})
	s.canResume = false
	s.screen = result
}

// loseLife handles the ball crossing the bottom boundary.
func (s *Session) loseLife() {
	if s.lives > 0 {
		s.lives--
	}
	if s.lives <= 0 {
		s.lives = 0
		s.endRun(ScreenGameOver)
		return
	}

	// Recenter the paddle and clear paddle effects before serving again
	s.paddle.Pos.X = s.fieldW / 2
	s.paddle.W = s.cfg.Paddle.Width
	s.paddle.WidthTimer = 0
	s.paddle.Shooting = false
	s.paddle.ShootingTimer = 0
	s.resetBallOnPaddle()
}

// fireBullet spawns a bullet above the paddle. No-op unless the
// shooting power-up is active.
func (s *Session) fireBullet() {
	if !s.paddle.Shooting {
		return
	}
	s.bullets = append(s.bullets, Bullet{
		Pos:   core.Vec2{X: s.paddle.Pos.X, Y: s.paddle.Pos.Y - s.paddle.H/2 - 8},
		Vel:   core.Vec2{X: 0, Y: -s.cfg.Bullets.Speed},
		W:     s.cfg.Bullets.Width,
		H:     s.cfg.Bullets.Height,
		Alive: true,
	})
}

// maybeSpawnPerk rolls the drop chance for a destroyed brick and, on
// success, rolls the perk type from the weight table. Called exactly
// once per brick destruction.
func (s *Session) maybeSpawnPerk(b *Brick) {
	if s.rng.Float64() >= s.cfg.Perks.SpawnChance {
		return
	}
	s.perks = append(s.perks, Perk{
		Pos:   core.Vec2{X: b.X, Y: b.Y},
		Vel:   core.Vec2{X: 0, Y: s.cfg.Perks.FallSpeed},
		Size:  s.cfg.Perks.Size,
		Type:  rollPerkType(s.rng, s.cfg.Perks),
		Alive: true,
	})
}

// applyPerk applies a collected perk's effect atomically.
func (s *Session) applyPerk(t PerkType) {
	p := &s.cfg.Perks
	switch t {
	case PerkExtraLife:
		if s.lives < s.cfg.Gameplay.MaxLives {
			s.lives++
		}
	case PerkSpeedUp:
		s.ball.Speed *= p.SpeedUpFactor
	case PerkWidePaddle:
		s.paddle.W = core.ClampF(s.paddle.W*p.WideFactor, s.cfg.Paddle.MinWidth, s.cfg.Paddle.MaxWidth)
		s.paddle.WidthTimer = p.WideDuration
	case PerkShrinkPaddle:
		s.paddle.W = core.ClampF(s.paddle.W*p.ShrinkFactor, s.cfg.Paddle.MinWidth, s.cfg.Paddle.MaxWidth)
		s.paddle.WidthTimer = p.ShrinkDuration
	case PerkThroughBall:
		s.ball.Through = true
		if s.ball.ThroughTimer < p.ThroughDuration {
			s.ball.ThroughTimer = p.ThroughDuration
		}
	case PerkFireball:
		s.ball.Fireball = true
		s.ball.FireballTimer = p.FireballDuration
		s.ball.Through = true
		if s.ball.ThroughTimer < p.FireballDuration {
			s.ball.ThroughTimer = p.FireballDuration
		}
	case PerkInstantDeath:
		s.lives = 0
		s.endRun(ScreenGameOver)
	case PerkShootingPaddle:
		s.paddle.Shooting = true
		s.paddle.ShootingTimer = p.ShootingDuration
	}
}
