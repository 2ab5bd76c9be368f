package touchpad

import (
	"fmt"
	"time"
)

// Action is the phase of a motion event
type Action int

const (
	ActionDown Action = iota
	ActionUp
	ActionMove
	ActionCancel
	ActionPointerDown
	ActionPointerUp
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMove:
		return "move"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer_down"
	case ActionPointerUp:
		return "pointer_up"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction parses the names produced by Action.String
func ParseAction(s string) (Action, error) {
	for a := ActionDown; a <= ActionPointerUp; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown motion action %q", s)
}

// MotionEvent is one phase of a touch sequence.
// PointerCount includes a pointer that is being lifted by this event.
type MotionEvent struct {
	Action       Action
	PointerIndex int
	PointerCount int
	X            float64
	Y            float64
	Time         time.Duration
}

// KeyCode identifies a hardware key. Values match the Android key codes.
type KeyCode int

const (
	KeyUnknown          KeyCode = 0
	KeyBack             KeyCode = 4
	KeyDpadUp           KeyCode = 19
	KeyDpadDown         KeyCode = 20
	KeyDpadLeft         KeyCode = 21
	KeyDpadRight        KeyCode = 22
	KeyDpadCenter       KeyCode = 23
	KeyEnter            KeyCode = 66
	KeyEscape           KeyCode = 111
	KeyNavigatePrevious KeyCode = 260
	KeyNavigateNext     KeyCode = 261
)

func (k KeyCode) String() string {
	switch k {
	case KeyBack:
		return "BACK"
	case KeyDpadUp:
		return "DPAD_UP"
	case KeyDpadDown:
		return "DPAD_DOWN"
	case KeyDpadLeft:
		return "DPAD_LEFT"
	case KeyDpadRight:
		return "DPAD_RIGHT"
	case KeyDpadCenter:
		return "DPAD_CENTER"
	case KeyEnter:
		return "ENTER"
	case KeyEscape:
		return "ESCAPE"
	case KeyNavigatePrevious:
		return "NAVIGATE_PREVIOUS"
	case KeyNavigateNext:
		return "NAVIGATE_NEXT"
	default:
		return fmt.Sprintf("KEYCODE(%d)", int(k))
	}
}

// MapKey translates a key code into the gesture it stands for.
// It holds no state and never touches a touch sequence.
func MapKey(code KeyCode) (Gesture, bool) {
	switch code {
	case KeyDpadCenter, KeyEnter:
		return Tap, true
	case KeyDpadUp:
		return SwipeUp, true
	case KeyDpadDown, KeyEscape, KeyBack:
		return SwipeDown, true
	case KeyDpadLeft, KeyNavigatePrevious:
		return SwipeLeft, true
	case KeyDpadRight, KeyNavigateNext:
		return SwipeRight, true
	default:
		return 0, false
	}
}
