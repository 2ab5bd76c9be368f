package touchpad

import "fmt"

// Gesture is a discrete gesture recognized on the touchpad
type Gesture int

const (
	Tap Gesture = iota
	TwoTap
	ThreeTap
	LongPress
	TwoLongPress
	ThreeLongPress
	SwipeUp
	TwoSwipeUp
	SwipeDown
	TwoSwipeDown
	SwipeLeft
	TwoSwipeLeft
	SwipeRight
	TwoSwipeRight
)

var gestureNames = [...]string{
	Tap:            "TAP",
	TwoTap:         "TWO_TAP",
	ThreeTap:       "THREE_TAP",
	LongPress:      "LONG_PRESS",
	TwoLongPress:   "TWO_LONG_PRESS",
	ThreeLongPress: "THREE_LONG_PRESS",
	SwipeUp:        "SWIPE_UP",
	TwoSwipeUp:     "TWO_SWIPE_UP",
	SwipeDown:      "SWIPE_DOWN",
	TwoSwipeDown:   "TWO_SWIPE_DOWN",
	SwipeLeft:      "SWIPE_LEFT",
	TwoSwipeLeft:   "TWO_SWIPE_LEFT",
	SwipeRight:     "SWIPE_RIGHT",
	TwoSwipeRight:  "TWO_SWIPE_RIGHT",
}

// Gestures lists every gesture in declaration order
func Gestures() []Gesture {
	out := make([]Gesture, len(gestureNames))
	for i := range gestureNames {
		out[i] = Gesture(i)
	}
	return out
}

func (g Gesture) String() string {
	if g < 0 || int(g) >= len(gestureNames) {
		return fmt.Sprintf("Gesture(%d)", int(g))
	}
	return gestureNames[g]
}

// ParseGesture returns the gesture with the given upper-case name
func ParseGesture(name string) (Gesture, error) {
	for i, n := range gestureNames {
		if n == name {
			return Gesture(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gesture %q", name)
}

// IsForward reports whether the gesture moves forward on the touchpad
func IsForward(g Gesture) bool {
	return g == SwipeRight || g == TwoSwipeRight
}

// IsForwardDelta reports whether a horizontal displacement points forward
func IsForwardDelta(deltaX float64) bool {
	return deltaX > 0
}

// swipe picks the one- or two-finger variant of a swipe
func swipe(one, two Gesture, fingers int) Gesture {
	if fingers >= 2 {
		return two
	}
	return one
}
