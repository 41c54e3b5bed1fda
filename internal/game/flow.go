package game

import "github.com/vovakirdan/tui-breaker/internal/core"

// Screen identifies the current state of the game-flow machine.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenPaused
	ScreenHelp
	ScreenHighScores
	ScreenWin
	ScreenGameOver
)

// String returns a human-readable name for the screen.
func (sc Screen) String() string {
	switch sc {
	case ScreenMenu:
		return "Menu"
	case ScreenPlaying:
		return "Playing"
	case ScreenPaused:
		return "Paused"
	case ScreenHelp:
		return "Help"
	case ScreenHighScores:
		return "HighScores"
	case ScreenWin:
		return "Win"
	case ScreenGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Main menu entries. Resume is present only while a run can be resumed.
const (
	MenuResume     = "Resume"
	MenuNewGame    = "New Game"
	MenuHighScores = "High Scores"
	MenuHelp       = "Help"
	MenuExit       = "Exit"
)

// Pause menu entries.
var pauseItems = []string{"Resume", "Exit to Menu"}

// MenuItems returns the main menu entries for the current session state.
func (s *Session) MenuItems() []string {
	items := make([]string, 0, 5)
	if s.canResume {
		items = append(items, MenuResume)
	}
	return append(items, MenuNewGame, MenuHighScores, MenuHelp, MenuExit)
}

// PauseItems returns the pause menu entries.
func (s *Session) PauseItems() []string {
	return pauseItems
}

// Apply dispatches a semantic action to the session. The platform layer
// calls this for every key event; held-movement actions are re-issued
// each tick the key repeats.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionMoveLeft:
		s.MoveLeft(true)
	case core.ActionMoveRight:
		s.MoveRight(true)
	case core.ActionLaunch:
		s.Launch()
	case core.ActionFire:
		s.Fire()
	case core.ActionPause:
		s.TogglePause()
	case core.ActionMenuUp:
		s.MenuUp()
	case core.ActionMenuDown:
		s.MenuDown()
	case core.ActionMenuSelect:
		s.MenuSelect()
	case core.ActionMenuCancel:
		s.MenuCancel()
	}
}

// MoveLeft sets the held state of the left-movement intent.
func (s *Session) MoveLeft(held bool) {
	s.heldLeft = held
}

// MoveRight sets the held state of the right-movement intent.
func (s *Session) MoveRight(held bool) {
	s.heldRight = held
}

// PointerMove makes the paddle follow an absolute horizontal position.
// Held-key movement takes precedence over the pointer.
func (s *Session) PointerMove(x float64) {
	s.pointerX = x
	s.hasPointer = true
}

// Launch releases a stuck ball with a fixed initial direction at the
// current ball speed. No-op when the ball is already in flight or
// outside the Playing screen.
func (s *Session) Launch() {
	if s.screen != ScreenPlaying || !s.ball.Stuck {
		return
	}
	s.ball.Stuck = false
	s.ball.Vel = core.Vec2{X: 0.2, Y: -1}.Normalize().Scale(s.ball.Speed)
}

// Fire requests a bullet. No-op unless playing with an active shooting
// power-up.
func (s *Session) Fire() {
	if s.screen != ScreenPlaying {
		return
	}
	s.fireBullet()
}

// TogglePause switches between Playing and Paused.
func (s *Session) TogglePause() {
	switch s.screen {
	case ScreenPlaying:
		s.screen = ScreenPaused
		s.pauseIndex = 0
		s.canResume = true
	case ScreenPaused:
		s.screen = ScreenPlaying
	}
}

// MenuUp moves the highlight up, wrapping at the top.
func (s *Session) MenuUp() {
	switch s.screen {
	case ScreenMenu:
		n := len(s.MenuItems())
		s.menuIndex = (s.menuIndex - 1 + n) % n
	case ScreenPaused:
		n := len(pauseItems)
		s.pauseIndex = (s.pauseIndex - 1 + n) % n
	}
}

// MenuDown moves the highlight down, wrapping at the bottom.
func (s *Session) MenuDown() {
	switch s.screen {
	case ScreenMenu:
		n := len(s.MenuItems())
		s.menuIndex = (s.menuIndex + 1) % n
	case ScreenPaused:
		n := len(pauseItems)
		s.pauseIndex = (s.pauseIndex + 1) % n
	}
}

// MenuSelect executes the highlighted entry, or confirms out of the
// informational and terminal screens.
func (s *Session) MenuSelect() {
	switch s.screen {
	case ScreenMenu:
		items := s.MenuItems()
		if s.menuIndex >= len(items) {
			s.menuIndex = len(items) - 1
		}
		switch items[s.menuIndex] {
		case MenuResume:
			s.screen = ScreenPlaying
		case MenuNewGame:
			s.newGame()
		case MenuHighScores:
			s.screen = ScreenHighScores
		case MenuHelp:
			s.screen = ScreenHelp
		case MenuExit:
			s.quit = true
		}

	case ScreenPaused:
		if s.pauseIndex == 0 {
			s.screen = ScreenPlaying
		} else {
			s.exitToMenu()
		}

	case ScreenHelp, ScreenHighScores, ScreenWin, ScreenGameOver:
		s.screen = ScreenMenu
		s.menuIndex = 0
	}
}

// MenuCancel backs out of the current screen: pause while playing,
// resume while paused, otherwise return to the menu.
func (s *Session) MenuCancel() {
	switch s.screen {
	case ScreenPlaying:
		s.TogglePause()
	case ScreenPaused:
		s.screen = ScreenPlaying
	case ScreenHelp, ScreenHighScores, ScreenWin, ScreenGameOver:
		s.screen = ScreenMenu
		s.menuIndex = 0
	}
}

// Resize rescales the play-field bounds. The paddle keeps its relative
// horizontal position and snaps to the new bottom row; the brick grid
// is relaid out only at the next new game.
func (s *Session) Resize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if s.fieldW > 0 {
		s.paddle.Pos.X *= w / s.fieldW
	}
	s.fieldW = w
	s.fieldH = h
	s.paddle.Pos.Y = s.fieldH - s.cfg.Paddle.BottomOffset
	margin := s.cfg.Paddle.Margin
	s.paddle.Pos.X = core.ClampF(s.paddle.Pos.X, s.paddle.W/2+margin, s.fieldW-s.paddle.W/2-margin)
	if s.ball.Stuck {
		s.pinBallToPaddle()
	}
}

// ShouldQuit reports whether the Exit menu entry was selected.
func (s *Session) ShouldQuit() bool {
	return s.quit
}
