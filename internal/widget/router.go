package widget

import (
	"log"
	"math"

	"openprism/internal/touchpad"
)

// Outcome is what an input did to the paging surface
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeNavigated
	OutcomeClicked
	OutcomeDismissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNavigated:
		return "navigated"
	case OutcomeClicked:
		return "clicked"
	case OutcomeDismissed:
		return "dismissed"
	default:
		return "none"
	}
}

// Viewport describes the horizontal geometry of a paging surface
type Viewport interface {
	// PageWidth is the width of one card in input coordinates
	PageWidth() float64
	// ScrollOffset is the current horizontal scroll position in input coordinates
	ScrollOffset() float64
}

// InputRouter turns touch sequences and keys on a paging surface into selection
// changes, clicks and dismiss requests.
type InputRouter struct {
	model     *SelectionModel
	viewport  Viewport
	threshold float64
	pad       *touchpad.Detector
	onDismiss func()

	tracking bool
	startX   float64
	startY   float64
}

// NewInputRouter creates a router driving model over viewport
func NewInputRouter(model *SelectionModel, viewport Viewport) *InputRouter {
	return &InputRouter{
		model:     model,
		viewport:  viewport,
		threshold: touchpad.DefaultSwipeThreshold,
	}
}

// SetThreshold sets the displacement a swipe must exceed
func (r *InputRouter) SetThreshold(threshold float64) {
	if threshold > 0 {
		r.threshold = threshold
	}
}

// SetOnDismissRequested sets the dismiss listener, replacing any previous one
func (r *InputRouter) SetOnDismissRequested(l func()) {
	r.onDismiss = l
}

// SetGesturePad makes every event also reach d, so the surface reports
// classified gestures too. A nil detector turns the pass-through off.
func (r *InputRouter) SetGesturePad(d *touchpad.Detector) {
	r.pad = d
}

// GesturePad returns the pass-through detector, if any
func (r *InputRouter) GesturePad() *touchpad.Detector {
	return r.pad
}

// OnMotionEvent consumes one phase of a touch sequence
func (r *InputRouter) OnMotionEvent(ev touchpad.MotionEvent) Outcome {
	if r.pad != nil {
		r.pad.OnMotionEvent(ev)
	}

	switch ev.Action {
	case touchpad.ActionDown:
		r.tracking = true
		r.startX, r.startY = ev.X, ev.Y
	case touchpad.ActionCancel:
		r.tracking = false
	case touchpad.ActionUp:
		if !r.tracking || ev.PointerCount != 1 {
			return OutcomeNone
		}
		r.tracking = false
		return r.release(ev.X, ev.Y)
	}
	return OutcomeNone
}

func (r *InputRouter) release(x, y float64) Outcome {
	if math.Abs(x-r.startX) > r.threshold {
		// A finger moving left pulls the next card in
		delta := r.startX - x
		if r.page(delta) {
			return OutcomeNavigated
		}
		return OutcomeNone
	}
	if y-r.startY > r.threshold {
		return r.dismiss()
	}
	if r.model.Click() {
		return OutcomeClicked
	}
	return OutcomeNone
}

func (r *InputRouter) page(delta float64) bool {
	width := r.viewport.PageWidth()
	if width <= 0 {
		// Without geometry a swipe moves a single card
		if touchpad.IsForwardDelta(delta) {
			return r.model.Next()
		}
		return r.model.Prev()
	}
	target := int(math.Round((r.viewport.ScrollOffset() + delta) / width))
	return r.model.Goto(target)
}

// OnKeyEvent consumes a key press
func (r *InputRouter) OnKeyEvent(code touchpad.KeyCode) Outcome {
	if r.pad != nil {
		r.pad.OnKeyEvent(code)
	}

	switch code {
	case touchpad.KeyDpadRight, touchpad.KeyNavigateNext:
		if r.model.Next() {
			return OutcomeNavigated
		}
	case touchpad.KeyDpadLeft, touchpad.KeyNavigatePrevious:
		if r.model.Prev() {
			return OutcomeNavigated
		}
	case touchpad.KeyDpadCenter, touchpad.KeyEnter:
		if r.model.Click() {
			return OutcomeClicked
		}
	case touchpad.KeyBack, touchpad.KeyEscape, touchpad.KeyDpadDown:
		return r.dismiss()
	default:
		if _, known := touchpad.MapKey(code); !known {
			log.Printf("widget: ignoring unknown key code %d", int(code))
		}
	}
	return OutcomeNone
}

func (r *InputRouter) dismiss() Outcome {
	if r.onDismiss != nil {
		r.onDismiss()
	}
	return OutcomeDismissed
}
