package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard keys and touch swipes both resolve to the same actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionStart          // Space - start a game from idle or over
	ActionPause          // P - toggle pause
	ActionRestart        // R - reset to idle
	ActionAccept         // Y - accept a difficulty recommendation
	ActionDecline        // N - decline a difficulty recommendation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionAccept:
		return "Accept"
	case ActionDecline:
		return "Decline"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the direction of travel for a movement action.
// The second result is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// ActionFor returns the movement action for a direction.
func ActionFor(d Direction) Action {
	switch d {
	case DirUp:
		return ActionUp
	case DirDown:
		return ActionDown
	case DirLeft:
		return ActionLeft
	case DirRight:
		return ActionRight
	default:
		return ActionNone
	}
}
