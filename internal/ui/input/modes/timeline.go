package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"openprism/internal/touchpad"
	"openprism/internal/ui/input/types"
)

// TimelineMode feeds the card timeline: keys become key codes and mouse drags
// become touch sequences
type TimelineMode struct {
	pointer *PointerTracker
}

func NewTimelineMode(pointer *PointerTracker) *TimelineMode {
	return &TimelineMode{pointer: pointer}
}

func (m *TimelineMode) Name() string {
	return "timeline"
}

func (m *TimelineMode) Enter() []types.Action {
	return nil
}

// Exit abandons a drag that is still in progress
func (m *TimelineMode) Exit() []types.Action {
	return motions(m.pointer.Cancel())
}

func (m *TimelineMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return key(touchpad.KeyDpadUp), true

	case tea.KeyDown:
		return key(touchpad.KeyDpadDown), true

	case tea.KeyLeft:
		return key(touchpad.KeyDpadLeft), true

	case tea.KeyRight:
		return key(touchpad.KeyDpadRight), true

	case tea.KeyEnter:
		return key(touchpad.KeyEnter), true

	case tea.KeySpace:
		return key(touchpad.KeyDpadCenter), true

	case tea.KeyEsc:
		return key(touchpad.KeyEscape), true

	case tea.KeyBackspace:
		return key(touchpad.KeyBack), true

	case tea.KeyTab:
		return key(touchpad.KeyNavigateNext), true

	case tea.KeyShiftTab:
		return key(touchpad.KeyNavigatePrevious), true
	}

	// Handle string keys
	switch msg.String() {
	case "k":
		return key(touchpad.KeyDpadUp), true

	case "j":
		return key(touchpad.KeyDpadDown), true

	case "h":
		return key(touchpad.KeyDpadLeft), true

	case "l":
		return key(touchpad.KeyDpadRight), true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *TimelineMode) HandleMouse(msg tea.MouseMsg) []types.Action {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return key(touchpad.KeyNavigatePrevious)
		case tea.MouseButtonWheelDown:
			return key(touchpad.KeyNavigateNext)
		}
	}
	return motions(m.pointer.Translate(msg))
}

func key(code touchpad.KeyCode) []types.Action {
	return []types.Action{types.KeyEventAction{Code: code}}
}

func motions(events []touchpad.MotionEvent) []types.Action {
	if len(events) == 0 {
		return nil
	}
	actions := make([]types.Action, len(events))
	for i, ev := range events {
		actions[i] = types.MotionAction{Event: ev}
	}
	return actions
}
