package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/game"
)

// KeyMapper translates Bubble Tea key messages to semantic actions.
// Mapping depends on the current screen: space selects in menus but
// launches the ball during play, and esc means pause or back depending
// on context.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given screen.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, screen game.Screen) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if screen == game.ScreenPlaying {
		switch key {
		case "a", "left":
			return core.ActionMoveLeft, false
		case "d", "right":
			return core.ActionMoveRight, false
		case " ":
			return core.ActionLaunch, false
		case "f":
			return core.ActionFire, false
		case "p", "esc":
			return core.ActionPause, false
		}
		return core.ActionNone, false
	}

	// Menu-like screens (Menu, Paused, Help, HighScores, Win, GameOver)
	switch key {
	case "w", "up", "k": // vim-style k for up
		return core.ActionMenuUp, false
	case "s", "down", "j": // vim-style j for down
		return core.ActionMenuDown, false
	case "enter", " ":
		return core.ActionMenuSelect, false
	case "b", "esc":
		return core.ActionMenuCancel, false
	case "p":
		if screen == game.ScreenPaused {
			return core.ActionPause, false
		}
	}

	return core.ActionNone, false
}
