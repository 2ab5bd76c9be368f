package widget

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultGracePeriod is how long a grace period slider runs
	DefaultGracePeriod = 2000 * time.Millisecond
	// DefaultScrollerTimeout is how long a scroller stays visible without updates
	DefaultScrollerTimeout = 1500 * time.Millisecond
)

// SliderKind is the appearance currently drawn by a Slider
type SliderKind int

const (
	SliderNone SliderKind = iota
	SliderScroller
	SliderDeterminate
	SliderIndeterminate
	SliderGracePeriod
)

func (k SliderKind) String() string {
	switch k {
	case SliderNone:
		return "none"
	case SliderScroller:
		return "scroller"
	case SliderDeterminate:
		return "determinate"
	case SliderIndeterminate:
		return "indeterminate"
	case SliderGracePeriod:
		return "grace_period"
	default:
		return fmt.Sprintf("slider(%d)", int(k))
	}
}

// SliderState is a snapshot of what the slider shows
type SliderState struct {
	Kind     SliderKind
	Visible  bool
	Max      int
	Position float64
	Started  time.Time
	Duration time.Duration
}

// Fraction returns how far the bar is filled, in [0, 1]. Indeterminate sliders
// report 0.
func (s SliderState) Fraction(now time.Time) float64 {
	var f float64
	switch s.Kind {
	case SliderScroller, SliderDeterminate:
		if s.Max > 0 {
			f = s.Position / float64(s.Max)
		}
	case SliderGracePeriod:
		if s.Duration > 0 {
			f = float64(now.Sub(s.Started)) / float64(s.Duration)
		}
	}
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// GracePeriodListener is told how a grace period finished
type GracePeriodListener interface {
	OnGracePeriodEnd()
	OnGracePeriodCancel()
}

// GracePeriodFuncs adapts two functions to a GracePeriodListener. Nil fields are skipped.
type GracePeriodFuncs struct {
	End    func()
	Cancel func()
}

func (f GracePeriodFuncs) OnGracePeriodEnd() {
	if f.End != nil {
		f.End()
	}
}

func (f GracePeriodFuncs) OnGracePeriodCancel() {
	if f.Cancel != nil {
		f.Cancel()
	}
}

// SliderOption configures a Slider
type SliderOption func(*Slider)

// WithGracePeriod overrides DefaultGracePeriod
func WithGracePeriod(d time.Duration) SliderOption {
	return func(s *Slider) {
		if d > 0 {
			s.gracePeriod = d
		}
	}
}

// WithScrollerTimeout overrides DefaultScrollerTimeout
func WithScrollerTimeout(d time.Duration) SliderOption {
	return func(s *Slider) {
		if d > 0 {
			s.scrollerTimeout = d
		}
	}
}

// Slider is the single progress bar shared by every appearance drawn from it.
// Starting an appearance hides the previous one; a hidden appearance may take the
// bar back with Show.
//
// At most one timer is pending at any time. Each appearance owns a generation
// number and a timer only acts when its generation is still current, so once Hide
// or Cancel has returned no callback of the replaced timer runs.
type Slider struct {
	// cb serializes grace period callbacks with Cancel
	cb sync.Mutex

	mu              sync.Mutex
	gen             uint64
	state           SliderState
	timer           *time.Timer
	gracePeriod     time.Duration
	scrollerTimeout time.Duration
}

// NewSlider creates a hidden slider
func NewSlider(opts ...SliderOption) *Slider {
	s := &Slider{
		gracePeriod:     DefaultGracePeriod,
		scrollerTimeout: DefaultScrollerTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the bar
func (s *Slider) State() SliderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// GracePeriodDuration returns the configured grace period
func (s *Slider) GracePeriodDuration() time.Duration {
	return s.gracePeriod
}

// StartScroller shows a scroller that indicates position within a collection of
// maxPosition items. It hides after a short time without position updates.
func (s *Slider) StartScroller(maxPosition int, position float64) *Scroller {
	h := &Scroller{s: s, max: maxPosition, position: clampf(position, 0, float64(maxPosition))}
	h.Show()
	return h
}

// StartDeterminate shows a bar tracking position from 0 to maxPosition
func (s *Slider) StartDeterminate(maxPosition int, position float64) *Determinate {
	h := &Determinate{s: s, max: maxPosition, position: clampf(position, 0, float64(maxPosition))}
	h.Show()
	return h
}

// StartIndeterminate shows a bar for ongoing progress of unknown length
func (s *Slider) StartIndeterminate() *Indeterminate {
	h := &Indeterminate{s: s}
	h.Show()
	return h
}

// StartGracePeriod shows a bar that fills during the grace period and then hides
// itself, calling listener.OnGracePeriodEnd. listener may be nil.
func (s *Slider) StartGracePeriod(listener GracePeriodListener) *GracePeriod {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := &GracePeriod{s: s, listener: listener}
	h.gen = s.takeLocked(SliderState{
		Kind:     SliderGracePeriod,
		Visible:  true,
		Started:  time.Now(),
		Duration: s.gracePeriod,
	})
	gen := h.gen
	s.timer = time.AfterFunc(s.gracePeriod, func() { s.expire(gen, listener) })
	return h
}

// takeLocked gives the bar to a new appearance and returns its generation
func (s *Slider) takeLocked(state SliderState) uint64 {
	s.stopLocked()
	s.gen++
	s.state = state
	return s.gen
}

func (s *Slider) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// hideLocked hides the appearance of generation gen, if it still owns the bar
func (s *Slider) hideLocked(gen uint64) bool {
	if s.gen != gen || !s.state.Visible {
		return false
	}
	s.stopLocked()
	s.gen++
	s.state.Visible = false
	return true
}

// expire runs when a timer fires
func (s *Slider) expire(gen uint64, listener GracePeriodListener) {
	s.cb.Lock()
	defer s.cb.Unlock()

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.gen++
	s.state.Visible = false
	s.mu.Unlock()

	if listener != nil {
		listener.OnGracePeriodEnd()
	}
}

// Scroller indicates the current position within a fixed-size collection
type Scroller struct {
	s        *Slider
	gen      uint64
	max      int
	position float64
}

func (h *Scroller) Max() int {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.max
}

func (h *Scroller) Position() float64 {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.position
}

// SetPosition moves the scroller, clamped to [0, Max], and keeps it visible for
// another timeout if it owns the bar
func (h *Scroller) SetPosition(position float64) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	h.position = clampf(position, 0, float64(h.max))
	if s.gen != h.gen || !s.state.Visible {
		return
	}
	s.state.Position = h.position
	s.armIdleLocked()
}

func (h *Scroller) Show() {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == h.gen && s.state.Visible {
		s.armIdleLocked()
		return
	}
	h.gen = s.takeLocked(SliderState{Kind: SliderScroller, Visible: true, Max: h.max, Position: h.position})
	s.armIdleLocked()
}

func (h *Scroller) Hide() {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	h.s.hideLocked(h.gen)
}

func (s *Slider) armIdleLocked() {
	s.stopLocked()
	gen := s.gen
	s.timer = time.AfterFunc(s.scrollerTimeout, func() { s.expire(gen, nil) })
}

// Determinate tracks a position from left to right until hidden
type Determinate struct {
	s        *Slider
	gen      uint64
	max      int
	position float64
}

func (h *Determinate) Max() int {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.max
}

func (h *Determinate) Position() float64 {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.position
}

// SetPosition moves the bar, clamped to [0, Max]
func (h *Determinate) SetPosition(position float64) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	h.position = clampf(position, 0, float64(h.max))
	if s.gen == h.gen && s.state.Visible {
		s.state.Position = h.position
	}
}

func (h *Determinate) Show() {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == h.gen && s.state.Visible {
		return
	}
	h.gen = s.takeLocked(SliderState{Kind: SliderDeterminate, Visible: true, Max: h.max, Position: h.position})
}

func (h *Determinate) Hide() {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	h.s.hideLocked(h.gen)
}

// Indeterminate animates continuously until hidden
type Indeterminate struct {
	s   *Slider
	gen uint64
}

func (h *Indeterminate) Show() {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == h.gen && s.state.Visible {
		return
	}
	h.gen = s.takeLocked(SliderState{Kind: SliderIndeterminate, Visible: true, Started: time.Now()})
}

func (h *Indeterminate) Hide() {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	h.s.hideLocked(h.gen)
}

// Shown reports whether this appearance currently owns a visible bar
func (h *Indeterminate) Shown() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.s.gen == h.gen && h.s.state.Visible
}

// GracePeriod fills the bar during a grace period and then dismisses itself
type GracePeriod struct {
	s        *Slider
	gen      uint64
	listener GracePeriodListener
}

// Cancel stops a running grace period and calls OnGracePeriodCancel. It does
// nothing once the grace period has ended or was replaced. After Cancel returns
// OnGracePeriodEnd is never called for this grace period.
func (h *GracePeriod) Cancel() bool {
	s := h.s
	s.cb.Lock()
	defer s.cb.Unlock()

	s.mu.Lock()
	cancelled := s.hideLocked(h.gen)
	s.mu.Unlock()

	if cancelled && h.listener != nil {
		h.listener.OnGracePeriodCancel()
	}
	return cancelled
}

// Running reports whether the grace period still owns the bar
func (h *GracePeriod) Running() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	return h.s.gen == h.gen && h.s.state.Visible
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
