package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move cursor up
	ActionDown             // S, Down arrow - move cursor down
	ActionLeft             // A, Left arrow - move cursor left
	ActionRight            // D, Right arrow - move cursor right
	ActionConfirm          // Enter - confirm selection
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
	ActionHint             // H - request/advance a hint
	ActionToggleDir        // Tab - toggle across/down in crossword
	ActionErase            // Backspace - erase current crossword cell
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionHint:
		return "Hint"
	case ActionToggleDir:
		return "ToggleDir"
	case ActionErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a pointer gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
)

// PointerEvent is a single mouse event in screen coordinates. The platform
// translates terminal mouse messages into these; games never see the raw
// terminal event type.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}

// InputFrame represents the input state for a single simulation tick: the
// semantic actions triggered, any typed letters, and any pointer events in
// arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Runes holds letters typed this frame (crossword cell entry).
	Runes []rune

	// Pointer holds mouse events received this frame, oldest first.
	Pointer []PointerEvent
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

// Type appends a typed letter to this frame.
func (f *InputFrame) Type(r rune) {
	f.Runes = append(f.Runes, r)
}

// Point appends a pointer event to this frame.
func (f *InputFrame) Point(e PointerEvent) {
	f.Pointer = append(f.Pointer, e)
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Runes = append(clone.Runes, f.Runes...)
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
