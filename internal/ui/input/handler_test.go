package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openprism/internal/touchpad"
	"openprism/internal/ui/input/types"
)

func fixedClock() func() time.Duration {
	var now time.Duration
	return func() time.Duration {
		now += 10 * time.Millisecond
		return now
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyCodes(t *testing.T, actions []types.Action) []touchpad.KeyCode {
	t.Helper()
	var codes []touchpad.KeyCode
	for _, a := range actions {
		k, ok := a.(types.KeyEventAction)
		require.True(t, ok, "unexpected action %T", a)
		codes = append(codes, k.Code)
	}
	return codes
}

func motionEvents(t *testing.T, actions []types.Action) []touchpad.MotionEvent {
	t.Helper()
	var events []touchpad.MotionEvent
	for _, a := range actions {
		m, ok := a.(types.MotionAction)
		require.True(t, ok, "unexpected action %T", a)
		events = append(events, m.Event)
	}
	return events
}

func TestTimelineKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want touchpad.KeyCode
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, touchpad.KeyDpadLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, touchpad.KeyDpadRight},
		{tea.KeyMsg{Type: tea.KeyUp}, touchpad.KeyDpadUp},
		{tea.KeyMsg{Type: tea.KeyDown}, touchpad.KeyDpadDown},
		{runes("h"), touchpad.KeyDpadLeft},
		{runes("l"), touchpad.KeyDpadRight},
		{runes("k"), touchpad.KeyDpadUp},
		{runes("j"), touchpad.KeyDpadDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, touchpad.KeyEnter},
		{tea.KeyMsg{Type: tea.KeySpace}, touchpad.KeyDpadCenter},
		{tea.KeyMsg{Type: tea.KeyEsc}, touchpad.KeyEscape},
		{tea.KeyMsg{Type: tea.KeyBackspace}, touchpad.KeyBack},
		{tea.KeyMsg{Type: tea.KeyTab}, touchpad.KeyNavigateNext},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, touchpad.KeyNavigatePrevious},
	}

	h := New(10, 20, fixedClock())
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			actions, consumed := h.HandleKey(tt.msg)
			require.True(t, consumed)
			assert.Equal(t, []touchpad.KeyCode{tt.want}, keyCodes(t, actions))
		})
	}
}

func TestTimelineCommands(t *testing.T) {
	h := New(10, 20, fixedClock())

	actions, consumed := h.HandleKey(runes("q"))
	require.True(t, consumed)
	assert.Equal(t, []types.Action{types.QuitAction{Force: false}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, _ = h.HandleKey(runes("?"))
	assert.Equal(t, []types.Action{types.ToggleHelpAction{}}, actions)

	_, consumed = h.HandleKey(runes("x"))
	assert.False(t, consumed)
}

func TestDragBecomesTouchSequence(t *testing.T) {
	h := New(10, 20, fixedClock())

	events := motionEvents(t, h.HandleMouse(tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	require.Len(t, events, 1)
	assert.Equal(t, touchpad.ActionDown, events[0].Action)
	assert.Equal(t, 1, events[0].PointerCount)
	assert.Equal(t, 300.0, events[0].X)
	assert.Equal(t, 100.0, events[0].Y)

	events = motionEvents(t, h.HandleMouse(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}))
	require.Len(t, events, 1)
	assert.Equal(t, touchpad.ActionMove, events[0].Action)

	events = motionEvents(t, h.HandleMouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease}))
	require.Len(t, events, 1)
	assert.Equal(t, touchpad.ActionUp, events[0].Action)
	assert.Equal(t, 100.0, events[0].X)
	assert.Greater(t, events[0].Time, time.Duration(0))

	// motion without a pressed button is ignored
	assert.Empty(t, h.HandleMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion}))
}

func TestModifiersAddFingers(t *testing.T) {
	h := New(10, 20, fixedClock())
	d := touchpad.NewDetector()

	feed := func(msg tea.MouseMsg) (touchpad.Gesture, bool) {
		var (
			g  touchpad.Gesture
			ok bool
		)
		for _, ev := range motionEvents(t, h.HandleMouse(msg)) {
			if got, done := d.Classify(ev); done {
				g, ok = got, true
			}
		}
		return g, ok
	}

	feed(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Alt: true})
	g, ok := feed(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease})
	require.True(t, ok)
	assert.Equal(t, touchpad.TwoTap, g)

	feed(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true})
	g, ok = feed(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease})
	require.True(t, ok)
	assert.Equal(t, touchpad.ThreeTap, g)

	feed(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Alt: true})
	g, ok = feed(tea.MouseMsg{X: 25, Y: 5, Action: tea.MouseActionRelease})
	require.True(t, ok)
	assert.Equal(t, touchpad.TwoSwipeRight, g)
}

func TestWheelNavigates(t *testing.T) {
	h := New(10, 20, fixedClock())
	assert.Equal(t, []touchpad.KeyCode{touchpad.KeyNavigatePrevious},
		keyCodes(t, h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})))
	assert.Equal(t, []touchpad.KeyCode{touchpad.KeyNavigateNext},
		keyCodes(t, h.HandleMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})))
}

func TestMenuMode(t *testing.T) {
	h := New(10, 20, fixedClock())

	// leaving the timeline mid-drag cancels the sequence
	h.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	events := motionEvents(t, h.ChangeMode(types.ModeMenu))
	require.Len(t, events, 1)
	assert.Equal(t, touchpad.ActionCancel, events[0].Action)
	assert.Equal(t, types.ModeMenu, h.CurrentMode())

	_, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, consumed, "list keys are left to the list")

	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, consumed)
	assert.Equal(t, []types.Action{types.MenuChooseAction{}}, actions)
	assert.Equal(t, types.ModeTimeline, h.CurrentMode())

	h.ChangeMode(types.ModeMenu)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []types.Action{types.MenuCloseAction{}}, actions)
	assert.Equal(t, types.ModeTimeline, h.CurrentMode())
}
