package tui

// Action is the closed set of recognized user inputs. Raw key events are
// translated through ActionFor at the boundary so the update loop never
// depends on the input backend's event shape.
type Action int

const (
	// ActionIgnored covers every key that has no binding.
	ActionIgnored Action = iota
	// ActionQuit terminates the program immediately.
	ActionQuit
	// ActionTogglePause flips the pause flag.
	ActionTogglePause
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitEsc     = "esc"
	KeyQuitCtrlC   = "ctrl+c"
	KeyTogglePause = " " // space bar
)

// String returns a human-readable label for the action.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionTogglePause:
		return "toggle-pause"
	default:
		return "ignored"
	}
}

// ActionFor maps a key, as reported by the terminal backend, to an Action.
// Unrecognized keys map to ActionIgnored and have no effect.
func ActionFor(key string) Action {
	switch key {
	case KeyQuit, KeyQuitEsc, KeyQuitCtrlC:
		return ActionQuit
	case KeyTogglePause:
		return ActionTogglePause
	default:
		return ActionIgnored
	}
}
