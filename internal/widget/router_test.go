package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openprism/internal/touchpad"
)

// pagedViewport rests on the selected card of model
type pagedViewport struct {
	model *SelectionModel
	width float64
}

func (v pagedViewport) PageWidth() float64 { return v.width }
func (v pagedViewport) ScrollOffset() float64 {
	return float64(v.model.Index()) * v.width
}

func newRouter(n int, width float64) (*InputRouter, *SelectionModel, *int) {
	m := NewSelectionModel(&sizedAdapter{n: n})
	r := NewInputRouter(m, pagedViewport{model: m, width: width})
	dismissed := 0
	r.SetOnDismissRequested(func() { dismissed++ })
	return r, m, &dismissed
}

func swipeTo(r *InputRouter, x0, y0, x1, y1 float64) Outcome {
	r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionDown, PointerCount: 1, X: x0, Y: y0})
	r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionMove, PointerCount: 1, X: (x0 + x1) / 2, Y: (y0 + y1) / 2})
	return r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 1, X: x1, Y: y1})
}

func TestSwipeLeftAdvancesPage(t *testing.T) {
	r, m, _ := newRouter(5, 100)

	assert.Equal(t, OutcomeNavigated, swipeTo(r, 300, 50, 220, 50))
	assert.Equal(t, 1, m.Index())

	assert.Equal(t, OutcomeNavigated, swipeTo(r, 300, 50, 80, 50))
	assert.Equal(t, 3, m.Index(), "220 units over 100 wide cards rounds to 2 pages")

	assert.Equal(t, OutcomeNavigated, swipeTo(r, 50, 50, 200, 50))
	assert.Equal(t, 2, m.Index())
}

func TestSwipePastEdgeIsIgnored(t *testing.T) {
	r, m, _ := newRouter(3, 100)
	assert.Equal(t, OutcomeNone, swipeTo(r, 0, 0, 200, 0))
	assert.Equal(t, 0, m.Index())

	m.Goto(2)
	assert.Equal(t, OutcomeNone, swipeTo(r, 400, 0, 100, 0))
	assert.Equal(t, 2, m.Index())
}

func TestShortSwipeRoundsToCurrentPage(t *testing.T) {
	r, m, _ := newRouter(3, 400)
	assert.Equal(t, OutcomeNone, swipeTo(r, 200, 0, 140, 0))
	assert.Equal(t, 0, m.Index())
}

func TestSwipeWithoutGeometryMovesOneCard(t *testing.T) {
	r, m, _ := newRouter(3, 0)
	assert.Equal(t, OutcomeNavigated, swipeTo(r, 200, 0, 100, 0))
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, OutcomeNavigated, swipeTo(r, 100, 0, 200, 0))
	assert.Equal(t, 0, m.Index())
}

func TestSwipeDownDismisses(t *testing.T) {
	r, m, dismissed := newRouter(3, 100)
	assert.Equal(t, OutcomeDismissed, swipeTo(r, 10, 10, 20, 80))
	assert.Equal(t, 1, *dismissed)
	assert.Equal(t, 0, m.Index())

	// upward swipes are activations
	clicks := 0
	m.SetOnItemClicked(func(int, int64) { clicks++ })
	assert.Equal(t, OutcomeClicked, swipeTo(r, 10, 80, 20, 10))
	assert.Equal(t, 1, clicks)
}

func TestTapClicks(t *testing.T) {
	r, m, _ := newRouter(3, 100)
	var clicked []int
	m.SetOnItemClicked(func(p int, _ int64) { clicked = append(clicked, p) })

	assert.Equal(t, OutcomeClicked, swipeTo(r, 10, 10, 10, 10))
	assert.Equal(t, []int{0}, clicked)
}

func TestUpWithoutDownOrWithExtraPointers(t *testing.T) {
	r, m, _ := newRouter(3, 100)
	clicks := 0
	m.SetOnItemClicked(func(int, int64) { clicks++ })

	assert.Equal(t, OutcomeNone, r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 1}))

	r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionDown, PointerCount: 1})
	r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionPointerDown, PointerCount: 2})
	assert.Equal(t, OutcomeNone, r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 2}))
	assert.Equal(t, OutcomeClicked, r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 1}))
	assert.Equal(t, 1, clicks)

	r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionDown, PointerCount: 1})
	r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionCancel, PointerCount: 1})
	assert.Equal(t, OutcomeNone, r.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 1}))
	assert.Equal(t, 1, clicks)
}

func TestRouterKeys(t *testing.T) {
	r, m, dismissed := newRouter(3, 100)
	clicks := 0
	m.SetOnItemClicked(func(int, int64) { clicks++ })

	assert.Equal(t, OutcomeNavigated, r.OnKeyEvent(touchpad.KeyDpadRight))
	assert.Equal(t, OutcomeNavigated, r.OnKeyEvent(touchpad.KeyNavigateNext))
	assert.Equal(t, OutcomeNone, r.OnKeyEvent(touchpad.KeyNavigateNext))
	assert.Equal(t, 2, m.Index())

	assert.Equal(t, OutcomeNavigated, r.OnKeyEvent(touchpad.KeyDpadLeft))
	assert.Equal(t, OutcomeNavigated, r.OnKeyEvent(touchpad.KeyNavigatePrevious))
	assert.Equal(t, 0, m.Index())

	assert.Equal(t, OutcomeClicked, r.OnKeyEvent(touchpad.KeyEnter))
	assert.Equal(t, OutcomeClicked, r.OnKeyEvent(touchpad.KeyDpadCenter))
	assert.Equal(t, 2, clicks)

	for _, code := range []touchpad.KeyCode{touchpad.KeyBack, touchpad.KeyEscape, touchpad.KeyDpadDown} {
		assert.Equal(t, OutcomeDismissed, r.OnKeyEvent(code))
	}
	assert.Equal(t, 3, *dismissed)

	assert.Equal(t, OutcomeNone, r.OnKeyEvent(touchpad.KeyDpadUp))
	assert.Equal(t, OutcomeNone, r.OnKeyEvent(touchpad.KeyCode(1234)))
}

func TestGesturePadSeesEveryEvent(t *testing.T) {
	r, m, _ := newRouter(3, 100)
	pad := touchpad.NewDetector()
	var gestures []touchpad.Gesture
	pad.SetBaseListener(func(g touchpad.Gesture) bool {
		gestures = append(gestures, g)
		return true
	})
	r.SetGesturePad(pad)
	require.Same(t, pad, r.GesturePad())

	swipeTo(r, 200, 0, 100, 0)
	r.OnKeyEvent(touchpad.KeyEnter)
	assert.Equal(t, []touchpad.Gesture{touchpad.SwipeLeft, touchpad.Tap}, gestures)
	assert.Equal(t, 1, m.Index())
}
