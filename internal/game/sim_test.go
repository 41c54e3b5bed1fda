package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
)

const testDt = 1.0 / 60.0

func almostEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// newTestSession builds a session on the default config with a fixed
// field size and seed.
func newTestSession(seed int64) *Session {
	cfg := config.DefaultBreakerConfig()
	rt := core.DefaultConfig()
	rt.Seed = seed
	return NewSession(cfg, rt)
}

// startGame drives the session from the menu into a fresh run.
func startGame(s *Session) {
	s.MenuSelect() // "New Game" is the first entry when nothing can resume
	if s.screen != ScreenPlaying {
		panic("test setup: expected Playing screen after menu select")
	}
}

func TestAdvanceNoOpOutsideDuringMenu(t *testing.T) {
	s := newTestSession(1)

	before := s.Snapshot()
	s.Advance(testDt)
	after := s.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Advance() should not change state outside the Playing screen")
	}
	if after.PlayTime != 0 {
		t.Errorf("PlayTime = %v, expected 0 while on the menu", after.PlayTime)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(12345)
		startGame(s)
		for i := 0; i < 600; i++ {
			switch {
			case i == 30:
				s.Launch()
			case i > 30 && i%7 < 3:
				s.MoveLeft(true)
				s.MoveRight(false)
			case i > 30:
				s.MoveLeft(false)
				s.MoveRight(true)
			}
			s.Advance(testDt)
			if snap := s.Snapshot(); snap.Screen != ScreenPlaying {
				break
			}
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Ball.Pos != snap2.Ball.Pos {
		t.Error("Determinism failed: ball positions differ")
	}
}

func TestAdvanceClampsStep(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	// A huge frame hitch advances the clock by at most MaxStep
	s.Advance(10)
	if !almostEq(s.playTime, s.cfg.Physics.MaxStep) {
		t.Errorf("PlayTime after hitch = %v, expected %v", s.playTime, s.cfg.Physics.MaxStep)
	}

	// A negative delta is treated as zero
	before := s.playTime
	s.Advance(-5)
	if s.playTime != before {
		t.Errorf("PlayTime after negative dt = %v, expected %v", s.playTime, before)
	}
}

func TestBallSpeedRampsUp(t *testing.T) {
	s := newTestSession(1)
	startGame(s)
	s.Launch()

	prev := s.ball.Speed
	for i := 0; i < 60; i++ {
		s.Advance(testDt)
		if s.screen != ScreenPlaying {
			t.Fatal("Run ended unexpectedly during ramp test")
		}
		if s.ball.Speed < prev {
			t.Fatalf("Ball speed decreased from %v to %v at tick %d", prev, s.ball.Speed, i)
		}
		prev = s.ball.Speed
	}
	if s.ball.Speed <= s.cfg.Physics.BallSpeed {
		t.Errorf("Ball speed = %v, expected above base %v after a second", s.ball.Speed, s.cfg.Physics.BallSpeed)
	}
}

func TestBrickHitScoresAndBounces(t *testing.T) {
	s := newTestSession(7)
	startGame(s)

	// Aim the ball straight up at a bottom-row (single-hit) brick
	target := &s.bricks[(s.cfg.Bricks.Rows-1)*s.cfg.Bricks.Cols]
	s.ball.Stuck = false
	s.ball.Pos = core.Vec2{X: target.X, Y: target.Y + target.H/2 + s.ball.Radius + 1}
	s.ball.Vel = core.Vec2{X: 0, Y: -s.ball.Speed}

	scoreBefore := s.score
	s.Advance(testDt)

	if target.Alive {
		t.Error("Single-hit brick should be destroyed")
	}
	if got := s.score - scoreBefore; got != target.Points {
		t.Errorf("Score gained %d, expected %d", got, target.Points)
	}
	if s.ball.Vel.Y <= 0 {
		t.Errorf("Ball should bounce downward off the brick, Vel.Y = %v", s.ball.Vel.Y)
	}
}

func TestHardBrickTakesTwoHits(t *testing.T) {
	s := newTestSession(7)
	startGame(s)

	target := &s.bricks[0] // Top row is hardened
	if target.HP != 2 {
		t.Fatalf("Top-row brick HP = %d, expected 2", target.HP)
	}

	s.damageBrick(target)
	if !target.Alive || target.HP != 1 {
		t.Errorf("After first hit: alive=%v hp=%d, expected alive with 1 HP", target.Alive, target.HP)
	}

	s.damageBrick(target)
	if target.Alive {
		t.Error("Brick should be destroyed after the second hit")
	}

	// Both hits score
	if s.score != 2*target.Points {
		t.Errorf("Score = %d, expected %d (both hits score)", s.score, 2*target.Points)
	}
}

func TestThroughBallSkipsBounce(t *testing.T) {
	s := newTestSession(7)
	startGame(s)

	target := &s.bricks[(s.cfg.Bricks.Rows-1)*s.cfg.Bricks.Cols]
	s.ball.Stuck = false
	s.ball.Through = true
	s.ball.ThroughTimer = 10
	s.ball.Pos = core.Vec2{X: target.X, Y: target.Y + target.H/2 + s.ball.Radius + 1}
	s.ball.Vel = core.Vec2{X: 0, Y: -s.ball.Speed}

	s.Advance(testDt)

	if target.Alive {
		t.Error("Through ball should still destroy the brick")
	}
	if s.ball.Vel.Y >= 0 {
		t.Errorf("Through ball should keep flying upward, Vel.Y = %v", s.ball.Vel.Y)
	}
}

func TestPaddleBounceAlwaysUpward(t *testing.T) {
	s := newTestSession(7)
	startGame(s)

	// Drop the ball onto the right half of the paddle
	s.ball.Stuck = false
	s.ball.Pos = core.Vec2{
		X: s.paddle.Pos.X + s.paddle.W/4,
		Y: s.paddle.Pos.Y - s.paddle.H/2 - s.ball.Radius - 1,
	}
	s.ball.Vel = core.Vec2{X: 0, Y: s.ball.Speed}

	s.Advance(testDt)

	if s.ball.Vel.Y >= 0 {
		t.Errorf("Paddle bounce must send the ball upward, Vel.Y = %v", s.ball.Vel.Y)
	}
	if s.ball.Vel.X <= 0 {
		t.Errorf("Hit on the right half should angle the ball right, Vel.X = %v", s.ball.Vel.X)
	}
	if !almostEq(s.ball.Vel.Length(), s.ball.Speed) {
		t.Errorf("Bounce speed = %v, expected %v", s.ball.Vel.Length(), s.ball.Speed)
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	s.MoveRight(true)
	for i := 0; i < 300; i++ {
		s.Advance(testDt)
	}

	maxX := s.fieldW - s.paddle.W/2 - s.cfg.Paddle.Margin
	if s.paddle.Pos.X > maxX+1e-9 {
		t.Errorf("Paddle X = %v, expected clamped at %v", s.paddle.Pos.X, maxX)
	}

	s.MoveRight(false)
	s.MoveLeft(true)
	for i := 0; i < 300; i++ {
		s.Advance(testDt)
	}

	minX := s.paddle.W/2 + s.cfg.Paddle.Margin
	if s.paddle.Pos.X < minX-1e-9 {
		t.Errorf("Paddle X = %v, expected clamped at %v", s.paddle.Pos.X, minX)
	}
}

func TestLifeLossSkipsRestOfTick(t *testing.T) {
	s := newTestSession(7)
	startGame(s)

	// An extra-life perk sits right on the paddle; if the perk pass ran
	// this tick it would be collected.
	s.perks = append(s.perks, Perk{
		Pos:   s.paddle.Pos,
		Vel:   core.Vec2{X: 0, Y: s.cfg.Perks.FallSpeed},
		Size:  s.cfg.Perks.Size,
		Type:  PerkExtraLife,
		Alive: true,
	})

	// Ball about to cross the bottom boundary
	s.ball.Stuck = false
	s.ball.Pos = core.Vec2{X: 100, Y: s.fieldH - s.ball.Radius}
	s.ball.Vel = core.Vec2{X: 0, Y: s.ball.Speed}

	livesBefore := s.lives
	perkPos := s.perks[0].Pos
	s.Advance(testDt)

	if s.lives != livesBefore-1 {
		t.Errorf("Lives = %d, expected %d after losing the ball", s.lives, livesBefore-1)
	}
	if len(s.perks) != 1 || s.perks[0].Pos != perkPos {
		t.Error("Perk pass should be skipped on the life-loss tick")
	}
	if !s.ball.Stuck {
		t.Error("Ball should be back on the paddle after a life loss")
	}
}

func TestLifeLossClearsPaddleEffects(t *testing.T) {
	s := newTestSession(7)
	startGame(s)

	s.applyPerk(PerkWidePaddle)
	s.applyPerk(PerkShootingPaddle)
	if s.paddle.W == s.cfg.Paddle.Width || !s.paddle.Shooting {
		t.Fatal("Test setup: paddle effects not active")
	}

	s.ball.Stuck = false
	s.ball.Pos = core.Vec2{X: 100, Y: s.fieldH - s.ball.Radius}
	s.ball.Vel = core.Vec2{X: 0, Y: s.ball.Speed}
	s.Advance(testDt)

	if s.paddle.W != s.cfg.Paddle.Width {
		t.Errorf("Paddle width = %v, expected base %v after life loss", s.paddle.W, s.cfg.Paddle.Width)
	}
	if s.paddle.Shooting {
		t.Error("Shooting effect should be cleared on life loss")
	}
	if !almostEq(s.paddle.Pos.X, s.fieldW/2) {
		t.Errorf("Paddle X = %v, expected recentered at %v", s.paddle.Pos.X, s.fieldW/2)
	}
}

func TestLastLifeLossEndsRun(t *testing.T) {
	s := newTestSession(7)
	startGame(s)
	s.lives = 1
	s.score = 123
	s.playTime = 42

	s.ball.Stuck = false
	s.ball.Pos = core.Vec2{X: 100, Y: s.fieldH - s.ball.Radius}
	s.ball.Vel = core.Vec2{X: 0, Y: s.ball.Speed}
	s.Advance(testDt)

	if s.screen != ScreenGameOver {
		t.Fatalf("Screen = %v, expected GameOver", s.screen)
	}
	if s.lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.lives)
	}
	if s.canResume {
		t.Error("A finished run must not be resumable")
	}
	if len(s.history) != 1 || s.history[0].Score != 123 {
		t.Errorf("History = %+v, expected one run with score 123", s.history)
	}
}

func TestExtraLifeCapped(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	for i := 0; i < 10; i++ {
		s.applyPerk(PerkExtraLife)
	}
	if s.lives != s.cfg.Gameplay.MaxLives {
		t.Errorf("Lives = %d, expected capped at %d", s.lives, s.cfg.Gameplay.MaxLives)
	}
}

func TestInstantDeathEndsRun(t *testing.T) {
	s := newTestSession(1)
	startGame(s)
	s.score = 55

	s.applyPerk(PerkInstantDeath)

	if s.screen != ScreenGameOver {
		t.Fatalf("Screen = %v, expected GameOver", s.screen)
	}
	if s.lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.lives)
	}
	if len(s.history) != 1 || s.history[0].Score != 55 {
		t.Errorf("History = %+v, expected one run with score 55", s.history)
	}
}

func TestWinWhenLastBrickFalls(t *testing.T) {
	s := newTestSession(1)
	startGame(s)
	s.score = 999

	for i := range s.bricks {
		s.bricks[i].Alive = false
	}
	s.Advance(testDt)

	if s.screen != ScreenWin {
		t.Fatalf("Screen = %v, expected Win", s.screen)
	}
	if s.canResume {
		t.Error("A won run must not be resumable")
	}
	if len(s.history) != 1 || s.history[0].Score != 999 {
		t.Errorf("History = %+v, expected one run with score 999", s.history)
	}
}

func TestFireballImpliesThrough(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	s.applyPerk(PerkFireball)

	if !s.ball.Fireball || !s.ball.Through {
		t.Error("Fireball perk must activate both fireball and through")
	}
	if s.ball.FireballTimer != s.cfg.Perks.FireballDuration {
		t.Errorf("Fireball timer = %v, expected %v", s.ball.FireballTimer, s.cfg.Perks.FireballDuration)
	}
	if s.ball.ThroughTimer < s.cfg.Perks.FireballDuration {
		t.Errorf("Through timer = %v, expected at least %v", s.ball.ThroughTimer, s.cfg.Perks.FireballDuration)
	}
}

func TestThroughTimerNeverShortened(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	s.ball.Through = true
	s.ball.ThroughTimer = 20

	s.applyPerk(PerkThroughBall)
	if s.ball.ThroughTimer != 20 {
		t.Errorf("Through timer = %v, expected to stay at 20", s.ball.ThroughTimer)
	}
}

func TestWidthEffectExpires(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	s.applyPerk(PerkWidePaddle)
	wide := s.paddle.W
	if wide <= s.cfg.Paddle.Width {
		t.Fatalf("Paddle width = %v, expected wider than base %v", wide, s.cfg.Paddle.Width)
	}

	// Ball stays on the paddle; run the clock past the effect duration
	ticks := int(s.cfg.Perks.WideDuration/testDt) + 2
	for i := 0; i < ticks; i++ {
		s.Advance(testDt)
	}

	if s.paddle.W != s.cfg.Paddle.Width {
		t.Errorf("Paddle width = %v, expected reverted to base %v", s.paddle.W, s.cfg.Paddle.Width)
	}
	if s.paddle.WidthTimer != 0 {
		t.Errorf("Width timer = %v, expected 0 after expiry", s.paddle.WidthTimer)
	}
}

func TestShrinkRespectsFloor(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	for i := 0; i < 10; i++ {
		s.applyPerk(PerkShrinkPaddle)
	}
	if s.paddle.W < s.cfg.Paddle.MinWidth {
		t.Errorf("Paddle width = %v, expected floored at %v", s.paddle.W, s.cfg.Paddle.MinWidth)
	}

	for i := 0; i < 10; i++ {
		s.applyPerk(PerkWidePaddle)
	}
	if s.paddle.W > s.cfg.Paddle.MaxWidth {
		t.Errorf("Paddle width = %v, expected capped at %v", s.paddle.W, s.cfg.Paddle.MaxWidth)
	}
}

func TestFireRequiresShootingPerk(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	s.Fire()
	if len(s.bullets) != 0 {
		t.Error("Fire without the shooting perk should be a no-op")
	}

	s.applyPerk(PerkShootingPaddle)
	s.Fire()
	if len(s.bullets) != 1 {
		t.Fatalf("Bullets = %d, expected 1 after firing with the perk", len(s.bullets))
	}
	if s.bullets[0].Vel.Y >= 0 {
		t.Errorf("Bullet Vel.Y = %v, expected upward", s.bullets[0].Vel.Y)
	}
}

func TestBulletDestroysBrick(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	// Park the paddle directly under a bottom-row brick and fire
	target := &s.bricks[(s.cfg.Bricks.Rows-1)*s.cfg.Bricks.Cols+3]
	s.paddle.Pos.X = target.X
	s.applyPerk(PerkShootingPaddle)
	s.Fire()

	scoreBefore := s.score
	for i := 0; i < 120 && target.Alive; i++ {
		s.Advance(testDt)
	}

	if target.Alive {
		t.Fatal("Bullet never reached the brick")
	}
	if s.score <= scoreBefore {
		t.Error("Bullet hit should score")
	}
	if len(s.bullets) != 0 {
		t.Errorf("Bullets = %d, expected the bullet consumed on impact", len(s.bullets))
	}
}

func TestPerkCollectedByPaddle(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	// A wide-paddle perk one tick above the paddle, falling
	s.perks = append(s.perks, Perk{
		Pos:   core.Vec2{X: s.paddle.Pos.X, Y: s.paddle.Pos.Y - s.paddle.H/2 - s.cfg.Perks.Size/2 - 1},
		Vel:   core.Vec2{X: 0, Y: s.cfg.Perks.FallSpeed},
		Size:  s.cfg.Perks.Size,
		Type:  PerkWidePaddle,
		Alive: true,
	})

	s.Advance(testDt)

	if len(s.perks) != 0 {
		t.Errorf("Perks = %d, expected collected", len(s.perks))
	}
	if s.paddle.W <= s.cfg.Paddle.Width {
		t.Errorf("Paddle width = %v, expected widened", s.paddle.W)
	}
}

func TestPerkCulledBelowField(t *testing.T) {
	s := newTestSession(1)
	startGame(s)

	s.perks = append(s.perks, Perk{
		Pos:   core.Vec2{X: 100, Y: s.fieldH + 31},
		Vel:   core.Vec2{X: 0, Y: s.cfg.Perks.FallSpeed},
		Size:  s.cfg.Perks.Size,
		Type:  PerkExtraLife,
		Alive: true,
	})

	s.Advance(testDt)

	if len(s.perks) != 0 {
		t.Errorf("Perks = %d, expected culled below the field", len(s.perks))
	}
}

func TestScoreAndLivesInvariants(t *testing.T) {
	s := newTestSession(99)
	startGame(s)
	s.Launch()

	prevScore := s.score
	for i := 0; i < 2000; i++ {
		if i%3 == 0 {
			s.MoveLeft(true)
			s.MoveRight(false)
		} else {
			s.MoveLeft(false)
			s.MoveRight(true)
		}
		s.Advance(testDt)

		if s.score < prevScore {
			t.Fatalf("Score decreased from %d to %d at tick %d", prevScore, s.score, i)
		}
		prevScore = s.score

		if s.lives < 0 || s.lives > s.cfg.Gameplay.MaxLives {
			t.Fatalf("Lives = %d out of range at tick %d", s.lives, i)
		}
		if s.screen != ScreenPlaying {
			break
		}
		if s.ball.Stuck {
			s.Launch()
		}
	}
}
