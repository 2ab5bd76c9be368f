package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeTimeline Mode = iota
	ModeMenu
)

func (m Mode) String() string {
	switch m {
	case ModeTimeline:
		return "timeline"
	case ModeMenu:
		return "menu"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg) ([]Action, bool)

	// HandleMouse processes a mouse message
	HandleMouse(msg tea.MouseMsg) []Action

	// Enter is called when entering this mode
	Enter() []Action

	// Exit is called when leaving this mode
	Exit() []Action

	// Name returns the mode name for display
	Name() string
}
