package touchpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKey(t *testing.T) {
	cases := map[KeyCode]Gesture{
		KeyDpadCenter:       Tap,
		KeyEnter:            Tap,
		KeyDpadUp:           SwipeUp,
		KeyDpadDown:         SwipeDown,
		KeyEscape:           SwipeDown,
		KeyBack:             SwipeDown,
		KeyDpadLeft:         SwipeLeft,
		KeyNavigatePrevious: SwipeLeft,
		KeyDpadRight:        SwipeRight,
		KeyNavigateNext:     SwipeRight,
	}
	for code, want := range cases {
		got, ok := MapKey(code)
		require.True(t, ok, code.String())
		assert.Equal(t, want, got, code.String())
	}

	_, ok := MapKey(KeyUnknown)
	assert.False(t, ok)
	_, ok = MapKey(KeyCode(42))
	assert.False(t, ok)
}

func TestGestureNames(t *testing.T) {
	all := Gestures()
	require.Len(t, all, 14)
	for _, g := range all {
		parsed, err := ParseGesture(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}
	assert.Equal(t, "TWO_SWIPE_RIGHT", TwoSwipeRight.String())
	assert.Equal(t, "Gesture(99)", Gesture(99).String())

	_, err := ParseGesture("WAVE")
	assert.Error(t, err)
}

func TestIsForward(t *testing.T) {
	assert.True(t, IsForward(SwipeRight))
	assert.True(t, IsForward(TwoSwipeRight))
	assert.False(t, IsForward(SwipeLeft))
	assert.False(t, IsForward(Tap))
	assert.True(t, IsForwardDelta(0.5))
	assert.False(t, IsForwardDelta(0))
}

func TestParseAction(t *testing.T) {
	for a := ActionDown; a <= ActionPointerUp; a++ {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAction("hover")
	assert.Error(t, err)
}
