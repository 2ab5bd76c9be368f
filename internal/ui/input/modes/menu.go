package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"openprism/internal/ui/input/types"
)

// MenuMode drives the options menu of a notification. Keys it does not consume
// are left to the list.
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter() []types.Action {
	return nil
}

func (m *MenuMode) Exit() []types.Action {
	return nil
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter", " ":
		return []types.Action{
			types.MenuChooseAction{},
			types.ChangeModeAction{Mode: types.ModeTimeline},
		}, true
	case "esc", "backspace":
		return []types.Action{
			types.MenuCloseAction{},
			types.ChangeModeAction{Mode: types.ModeTimeline},
		}, true
	}
	return nil, false
}

func (m *MenuMode) HandleMouse(msg tea.MouseMsg) []types.Action {
	if msg.Action == tea.MouseActionRelease {
		return []types.Action{
			types.MenuChooseAction{},
			types.ChangeModeAction{Mode: types.ModeTimeline},
		}
	}
	return nil
}
