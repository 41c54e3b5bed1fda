package core

// Action represents a semantic input intent, abstracted from physical
// key presses. The platform maps keys (or SSH input) to actions; the
// game session consumes actions without knowing their source.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveLeft          // A, Left arrow - move paddle left (held for the tick)
	ActionMoveRight         // D, Right arrow - move paddle right (held for the tick)
	ActionLaunch            // Space - release a stuck ball
	ActionFire              // F - fire a bullet (shooting power-up only)
	ActionPause             // P, Esc - pause/unpause during play
	ActionMenuUp            // W, Up, K - move menu highlight up
	ActionMenuDown          // S, Down, J - move menu highlight down
	ActionMenuSelect        // Enter - execute highlighted menu entry
	ActionMenuCancel        // B, Esc - back out of Help/HighScores
	ActionQuit              // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionLaunch:
		return "Launch"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionMenuUp:
		return "MenuUp"
	case ActionMenuDown:
		return "MenuDown"
	case ActionMenuSelect:
		return "MenuSelect"
	case ActionMenuCancel:
		return "MenuCancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
