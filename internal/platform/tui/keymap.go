package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordgrid/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// In typing mode (crossword), plain letters are delivered as typed runes and
// the single-letter shortcuts move to control keys so they cannot collide
// with answer entry.
type KeyMapper struct {
	TypingMode bool
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	if key == "ctrl+c" {
		return core.ActionQuit, true
	}

	// Keys shared by both modes
	switch key {
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "left":
		return core.ActionLeft, false
	case "right":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "tab":
		return core.ActionToggleDir, false
	case "backspace":
		return core.ActionErase, false
	}

	if km.TypingMode {
		// Letters are answers here, so the shortcuts live on non-letters.
		switch key {
		case "?":
			return core.ActionHint, false
		case "ctrl+r":
			return core.ActionRestart, false
		case "ctrl+p":
			return core.ActionPause, false
		}
		return core.ActionNone, false
	}

	switch key {
	case "q":
		return core.ActionQuit, true
	case "w", "k":
		return core.ActionUp, false
	case "s", "j":
		return core.ActionDown, false
	case "a":
		return core.ActionLeft, false
	case "d":
		return core.ActionRight, false
	case "b":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "h", "?":
		return core.ActionHint, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message: actions are
// set, and in typing mode plain letters are appended as typed runes.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
		return isQuit
	}
	if km.TypingMode && msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.Type(r)
		}
	}
	return isQuit
}

// MapMouseToFrame translates a mouse message into a pointer event on the
// frame. Only left-button presses, drags, and releases are forwarded.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		frame.Point(core.PointerEvent{Kind: core.PointerPress, X: msg.X, Y: msg.Y})
	case tea.MouseActionMotion:
		frame.Point(core.PointerEvent{Kind: core.PointerMove, X: msg.X, Y: msg.Y})
	case tea.MouseActionRelease:
		frame.Point(core.PointerEvent{Kind: core.PointerRelease, X: msg.X, Y: msg.Y})
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
