package touchpad

import (
	"log"
	"time"
)

// DefaultSwipeThreshold is the displacement a sequence must exceed on one axis
// to be classified as a swipe. It is expressed in input coordinate units.
const DefaultSwipeThreshold = 50.0

// BaseListener receives discrete gestures. It returns true when it consumed the gesture.
type BaseListener func(g Gesture) bool

// FingerListener is told whenever the number of fingers on the touchpad changes
type FingerListener func(previousCount, currentCount int)

// ScrollListener receives continuous horizontal movement.
// displacement is measured from the start of the sequence, delta from the previous
// event, and velocity in units per second.
type ScrollListener func(displacement, delta, velocity float64) bool

// Option configures a Detector
type Option func(*Detector)

// WithSwipeThreshold overrides DefaultSwipeThreshold
func WithSwipeThreshold(threshold float64) Option {
	return func(d *Detector) {
		if threshold > 0 {
			d.threshold = threshold
		}
	}
}

// WithLongPressTimeout turns taps held for at least timeout into long presses.
// A zero timeout disables long presses.
func WithLongPressTimeout(timeout time.Duration) Option {
	return func(d *Detector) {
		d.longPress = timeout
	}
}

// sequence is the state of one down→up cycle
type sequence struct {
	active     bool
	startX     float64
	startY     float64
	startTime  time.Duration
	lastX      float64
	lastTime   time.Duration
	fingers    int
	maxFingers int
}

// Detector turns raw touchpad events into gestures
type Detector struct {
	threshold     float64
	longPress     time.Duration
	alwaysConsume bool
	seq           sequence

	baseListener      BaseListener
	fingerListener    FingerListener
	scrollListener    ScrollListener
	oneFingerListener ScrollListener
	twoFingerListener ScrollListener
}

// NewDetector creates a detector with the default swipe threshold
func NewDetector(opts ...Option) *Detector {
	d := &Detector{threshold: DefaultSwipeThreshold}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Threshold returns the swipe threshold in use
func (d *Detector) Threshold() float64 {
	return d.threshold
}

// SetBaseListener sets the discrete gesture listener, replacing any previous one
func (d *Detector) SetBaseListener(l BaseListener) *Detector {
	d.baseListener = l
	return d
}

// SetFingerListener sets the finger count listener
func (d *Detector) SetFingerListener(l FingerListener) *Detector {
	d.fingerListener = l
	return d
}

// SetScrollListener sets the listener for scrolls with any number of fingers
func (d *Detector) SetScrollListener(l ScrollListener) *Detector {
	d.scrollListener = l
	return d
}

// SetOneFingerScrollListener sets the listener for one-finger scrolls
func (d *Detector) SetOneFingerScrollListener(l ScrollListener) *Detector {
	d.oneFingerListener = l
	return d
}

// SetTwoFingerScrollListener sets the listener for two-finger scrolls
func (d *Detector) SetTwoFingerScrollListener(l ScrollListener) *Detector {
	d.twoFingerListener = l
	return d
}

// SetAlwaysConsumeEvents makes OnMotionEvent report every event as handled
func (d *Detector) SetAlwaysConsumeEvents(enabled bool) *Detector {
	d.alwaysConsume = enabled
	return d
}

// OnMotionEvent feeds one event to the detector and dispatches any gesture to the
// base listener. It returns true when a listener consumed the event.
func (d *Detector) OnMotionEvent(ev MotionEvent) bool {
	g, ok, scrolled := d.step(ev)
	handled := scrolled
	if ok && d.baseListener != nil {
		handled = d.baseListener(g) || handled
	}
	return handled || d.alwaysConsume
}

// Classify advances the current sequence by one event and returns the gesture it
// completes, if any. Finger and scroll listeners are notified along the way; the
// base listener is not.
func (d *Detector) Classify(ev MotionEvent) (Gesture, bool) {
	g, ok, _ := d.step(ev)
	return g, ok
}

// OnKeyEvent maps a key to a gesture and dispatches it to the base listener.
// Unknown keys are logged and ignored.
func (d *Detector) OnKeyEvent(code KeyCode) bool {
	g, ok := MapKey(code)
	if !ok {
		log.Printf("touchpad: unknown key code %d", int(code))
		return false
	}
	if d.baseListener == nil {
		return false
	}
	return d.baseListener(g)
}

func (d *Detector) step(ev MotionEvent) (Gesture, bool, bool) {
	switch ev.Action {
	case ActionDown:
		d.begin(ev)
		return 0, false, false
	case ActionCancel:
		if d.seq.active {
			d.end()
		}
		return 0, false, false
	}

	if !d.seq.active {
		return 0, false, false
	}

	if ev.PointerCount > d.seq.maxFingers {
		d.seq.maxFingers = ev.PointerCount
	}

	switch ev.Action {
	case ActionPointerDown:
		d.setFingers(ev.PointerCount)
	case ActionPointerUp:
		d.setFingers(ev.PointerCount - 1)
	case ActionMove:
		d.setFingers(ev.PointerCount)
		return 0, false, d.scroll(ev)
	case ActionUp:
		if ev.PointerCount != 1 {
			d.setFingers(ev.PointerCount - 1)
			return 0, false, false
		}
		g, ok := d.classify(ev)
		d.end()
		return g, ok, false
	}
	return 0, false, false
}

func (d *Detector) begin(ev MotionEvent) {
	prev := d.seq.fingers
	d.seq = sequence{
		active:     true,
		startX:     ev.X,
		startY:     ev.Y,
		startTime:  ev.Time,
		lastX:      ev.X,
		lastTime:   ev.Time,
		fingers:    prev,
		maxFingers: ev.PointerCount,
	}
	d.setFingers(ev.PointerCount)
}

func (d *Detector) end() {
	d.setFingers(0)
	d.seq = sequence{}
}

func (d *Detector) setFingers(n int) {
	if n < 0 {
		n = 0
	}
	prev := d.seq.fingers
	d.seq.fingers = n
	if prev != n && d.fingerListener != nil {
		d.fingerListener(prev, n)
	}
}

func (d *Detector) scroll(ev MotionEvent) bool {
	displacement := ev.X - d.seq.startX
	delta := ev.X - d.seq.lastX
	var velocity float64
	if dt := ev.Time - d.seq.lastTime; dt > 0 {
		velocity = delta / dt.Seconds()
	}
	d.seq.lastX = ev.X
	d.seq.lastTime = ev.Time

	handled := false
	if d.scrollListener != nil {
		handled = d.scrollListener(displacement, delta, velocity) || handled
	}
	switch ev.PointerCount {
	case 1:
		if d.oneFingerListener != nil {
			handled = d.oneFingerListener(displacement, delta, velocity) || handled
		}
	case 2:
		if d.twoFingerListener != nil {
			handled = d.twoFingerListener(displacement, delta, velocity) || handled
		}
	}
	return handled
}

// classify applies the swipe ranking, then falls back to taps
func (d *Detector) classify(ev MotionEvent) (Gesture, bool) {
	dx := ev.X - d.seq.startX
	dy := ev.Y - d.seq.startY
	fingers := d.seq.maxFingers
	t := d.threshold

	switch {
	case dx > t:
		return swipe(SwipeRight, TwoSwipeRight, fingers), true
	case dx < -t:
		return swipe(SwipeLeft, TwoSwipeLeft, fingers), true
	case dy > t:
		return swipe(SwipeDown, TwoSwipeDown, fingers), true
	case dy < -t:
		return swipe(SwipeUp, TwoSwipeUp, fingers), true
	}

	held := d.longPress > 0 && ev.Time-d.seq.startTime >= d.longPress
	switch fingers {
	case 1:
		if held {
			return LongPress, true
		}
		return Tap, true
	case 2:
		if held {
			return TwoLongPress, true
		}
		return TwoTap, true
	case 3:
		if held {
			return ThreeLongPress, true
		}
		return ThreeTap, true
	}
	return 0, false
}
