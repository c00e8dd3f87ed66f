package tui

import tea "github.com/charmbracelet/bubbletea"

// Action is a shell-level input action derived from a key press.
// Centralizing the bindings here keeps them testable and consistent
// across tabs.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionNextTab
	ActionPrevTab
	ActionSelect
	ActionBack
	ActionPassWeek
	ActionFinishWork
	ActionCycleMusicians
	ActionCycleDedication
	ActionMore
	ActionLess
)

// KeyMapper translates Bubble Tea key messages to shell actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a shell action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "up", "k":
		return ActionUp
	case "down", "j":
		return ActionDown
	case "tab", "right", "l":
		return ActionNextTab
	case "shift+tab", "left", "h":
		return ActionPrevTab
	case "enter", " ":
		return ActionSelect
	case "esc", "b":
		return ActionBack
	case "w":
		return ActionPassWeek
	case "f":
		return ActionFinishWork
	case "m":
		return ActionCycleMusicians
	case "d":
		return ActionCycleDedication
	case "+", "=":
		return ActionMore
	case "-", "_":
		return ActionLess
	}
	return ActionNone
}
