package game

import (
	"math"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

// Advance runs one simulation tick. dt is clamped to [0, MaxStep] so
// frame hitches and clock anomalies cannot destabilize the
// integration. Outside the Playing screen this is a no-op.
//
// Tick order is load-bearing: ramp, effect expiry, paddle, ball, perks,
// bullets, win check. A life loss ends the tick early (the rest of the
// systems skip one frame), and so does an instant-death perk collected
// mid-tick.
func (s *Session) Advance(dt float64) {
	if s.screen != ScreenPlaying {
		return
	}
	if dt < 0 {
		dt = 0
	}
	if dt > s.cfg.Physics.MaxStep {
		dt = s.cfg.Physics.MaxStep
	}
	s.playTime += dt

	// 1. Difficulty ramp
	s.speedGain += dt * s.cfg.Physics.SpeedGainRate
	s.ball.Speed += dt * s.cfg.Physics.BallSpeedRamp

	// 2. Timed effects
	s.expireEffects(dt)

	// 3. Paddle
	s.updatePaddle(dt)

	// 4. Ball
	if !s.updateBall(dt) {
		return
	}

	// 5. Perks
	if !s.updatePerks(dt) {
		return
	}

	// 6. Bullets
	s.updateBullets(dt)

	// 7. Win check
	if countAliveBricks(s.bricks) == 0 {
		s.endRun(ScreenWin)
	}
}

// expireEffects counts down the timed power-up effects and clears them
// on expiry. Paddle width reverts to base when its timer runs out.
func (s *Session) expireEffects(dt float64) {
	if s.ball.Through {
		s.ball.ThroughTimer -= dt
		if s.ball.ThroughTimer <= 0 {
			s.ball.Through = false
			s.ball.ThroughTimer = 0
		}
	}
	if s.ball.Fireball {
		s.ball.FireballTimer -= dt
		if s.ball.FireballTimer <= 0 {
			s.ball.Fireball = false
			s.ball.FireballTimer = 0
		}
	}
	if s.paddle.WidthTimer > 0 {
		s.paddle.WidthTimer -= dt
		if s.paddle.WidthTimer <= 0 {
			s.paddle.WidthTimer = 0
			s.paddle.W = s.cfg.Paddle.Width
		}
	}
	if s.paddle.Shooting {
		s.paddle.ShootingTimer -= dt
		if s.paddle.ShootingTimer <= 0 {
			s.paddle.Shooting = false
			s.paddle.ShootingTimer = 0
		}
	}
}

// updatePaddle applies held-direction movement (or pointer follow) and
// clamps the paddle to the field accounting for its current width.
func (s *Session) updatePaddle(dt float64) {
	if s.heldLeft || s.heldRight {
		vx := 0.0
		if s.heldLeft {
			vx -= s.paddle.Speed
		}
		if s.heldRight {
			vx += s.paddle.Speed
		}
		s.paddle.Pos.X += vx * dt
		s.hasPointer = false
	} else if s.hasPointer {
		s.paddle.Pos.X = s.pointerX
	}

	margin := s.cfg.Paddle.Margin
	s.paddle.Pos.X = core.ClampF(s.paddle.Pos.X, s.paddle.W/2+margin, s.fieldW-s.paddle.W/2-margin)
}

// updateBall integrates the ball and resolves wall, paddle, and brick
// collisions. Returns false when a life was lost this tick.
func (s *Session) updateBall(dt float64) bool {
	b := &s.ball

	if b.Stuck {
		s.pinBallToPaddle()
		return true
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	// Side and top walls: reposition to the boundary, flip the
	// velocity component toward the field.
	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.X+b.Radius > s.fieldW {
		b.Pos.X = s.fieldW - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
	}

	// Bottom boundary
	if b.Pos.Y+b.Radius > s.fieldH {
		s.loseLife()
		return false
	}

	// Paddle bounce: push out, then redirect based on where the ball
	// struck, blended with a fixed forward bias. Always upward.
	if hit, n, pen := core.CircleRectCollision(s.paddle.Rect(), b.Pos, b.Radius); hit {
		b.Pos = b.Pos.Add(n.Scale(pen))
		rel := core.ClampF((b.Pos.X-s.paddle.Pos.X)/(s.paddle.W/2), -1, 1)
		dir := core.Vec2{X: rel, Y: -1.2}.Normalize()
		b.Vel = dir.Scale(b.Speed)
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}

	// Bricks: every live brick is tested; through/fireball skips the
	// bounce but still deals damage.
	for i := range s.bricks {
		br := &s.bricks[i]
		if !br.Alive {
			continue
		}
		hit, n, pen := core.CircleRectCollision(br.Rect(), b.Pos, b.Radius)
		if !hit {
			continue
		}
		s.damageBrick(br)
		if !(b.Through || b.Fireball) {
			b.Pos = b.Pos.Add(n.Scale(pen))
			b.Vel = core.Reflect(b.Vel, n, b.Speed)
		}
	}

	return true
}

// damageBrick decrements hit points, scores the hit, and on destruction
// marks the brick dead and rolls a perk spawn exactly once.
func (s *Session) damageBrick(br *Brick) {
	before := br.HP
	br.HP--
	s.score += br.Points
	if before > 0 && br.HP <= 0 {
		br.Alive = false
		s.maybeSpawnPerk(br)
	}
}

// updatePerks advances falling perks, culls the ones below the field,
// and applies collected effects. Returns false when an instant-death
// perk ended the run.
func (s *Session) updatePerks(dt float64) bool {
	alive := s.perks[:0]
	for i := range s.perks {
		p := s.perks[i]
		if !p.Alive {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		if p.Pos.Y > s.fieldH+30 {
			continue
		}
		if p.Rect().Overlaps(s.paddle.Rect()) {
			s.applyPerk(p.Type)
			if s.lives <= 0 {
				// Run is over; drop the remaining perks with it
				s.perks = s.perks[:0]
				return false
			}
			continue
		}
		alive = append(alive, p)
	}
	s.perks = alive
	return true
}

// updateBullets advances bullets, culls the ones above the field, and
// applies brick damage on impact. Bullets never bounce.
func (s *Session) updateBullets(dt float64) {
	alive := s.bullets[:0]
	for i := range s.bullets {
		bu := s.bullets[i]
		if !bu.Alive {
			continue
		}
		bu.Pos = bu.Pos.Add(bu.Vel.Scale(dt))
		if bu.Pos.Y < -20 {
			continue
		}
		for j := range s.bricks {
			br := &s.bricks[j]
			if !br.Alive {
				continue
			}
			if br.Rect().Overlaps(bu.Rect()) {
				bu.Alive = false
				s.damageBrick(br)
				break
			}
		}
		if bu.Alive {
			alive = append(alive, bu)
		}
	}
	s.bullets = alive
}
