package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nbyadav/barrage/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the active player.
// Both players share the same bindings since the game is hot-seat.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "a":
		return core.ActionAngleLeft, false
	case "right", "d":
		return core.ActionAngleRight, false
	case "up", "w":
		return core.ActionPowerUp, false
	case "down", "s":
		return core.ActionPowerDown, false
	case " ", "enter":
		return core.ActionFire, false
	case "n":
		return core.ActionNewMatch, false
	case "r":
		return core.ActionRegen, false
	case "t":
		return core.ActionToggleAI, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
