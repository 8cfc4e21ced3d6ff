package core

// Action represents a semantic game action, abstracted from physical input.
// Frontends translate keys, mouse buttons and touches into actions so the
// simulation never sees a device.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Keyboard left held this frame
	ActionRight              // Keyboard right held this frame
	ActionButtonLeft         // On-screen left button held (mouse or touch)
	ActionButtonRight        // On-screen right button held (mouse or touch)
	ActionStart              // Space/Enter on the home screen
	ActionRetry              // Space/R after game over
	ActionMenu               // M/Esc after game over
	ActionToggleMusic        // Toggle background ambience
	ActionToggleSound        // Toggle sound effects
	ActionQuit               // Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionButtonLeft:
		return "ButtonLeft"
	case ActionButtonRight:
		return "ButtonRight"
	case ActionStart:
		return "Start"
	case ActionRetry:
		return "Retry"
	case ActionMenu:
		return "Menu"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick. Hold actions
// (Left, Right, ButtonLeft, ButtonRight) are set on every frame the input is
// down; the rest are one-shot.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
