package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, K - move cursor up
	ActionDown           // Down arrow, J - move cursor down
	ActionLeft           // Left arrow, H - move cursor left
	ActionRight          // Right arrow, L - move cursor right
	ActionReveal         // Space - open the tile under the cursor
	ActionFlag           // F - flag the tile under the cursor
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - close menu
	ActionMenu           // M - open the preset menu
	ActionRestart        // R - new board with the same preset
	ActionQuit           // Q, Ctrl+C - exit
	ActionPreset1        // 1 - first preset
	ActionPreset2        // 2 - second preset
	ActionPreset3        // 3 - third preset
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
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionMenu:
		return "Menu"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPreset1:
		return "Preset1"
	case ActionPreset2:
		return "Preset2"
	case ActionPreset3:
		return "Preset3"
	default:
		return "Unknown"
	}
}

// MouseButton identifies which pointer button produced a click.
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonSecondary
)

// Click is a pointer press at a screen cell.
type Click struct {
	X, Y   int
	Button MouseButton
}

// InputFrame collects the input for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Clicks holds pointer presses in arrival order.
	Clicks []Click
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

// AddClick records a pointer press for this frame.
func (f *InputFrame) AddClick(x, y int, b MouseButton) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y, Button: b})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
