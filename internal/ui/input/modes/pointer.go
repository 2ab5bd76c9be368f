package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"openprism/internal/touchpad"
)

// PointerTracker turns left-button mouse drags into touch sequences. Terminal
// cells are scaled to touchpad units. Holding Alt while pressing adds a second
// finger, Ctrl a third.
type PointerTracker struct {
	cellWidth  float64
	cellHeight float64
	clock      func() time.Duration
	fingers    int
}

// NewPointerTracker creates a tracker. A nil clock measures time since creation.
func NewPointerTracker(cellWidth, cellHeight float64, clock func() time.Duration) *PointerTracker {
	if clock == nil {
		start := time.Now()
		clock = func() time.Duration { return time.Since(start) }
	}
	return &PointerTracker{cellWidth: cellWidth, cellHeight: cellHeight, clock: clock}
}

// Pressed reports whether a sequence is in progress
func (p *PointerTracker) Pressed() bool {
	return p.fingers > 0
}

// Translate returns the motion events for msg, or nil when it is not part of a drag
func (p *PointerTracker) Translate(msg tea.MouseMsg) []touchpad.MotionEvent {
	x := float64(msg.X) * p.cellWidth
	y := float64(msg.Y) * p.cellHeight
	at := func(action touchpad.Action, index, count int) touchpad.MotionEvent {
		return touchpad.MotionEvent{
			Action:       action,
			PointerIndex: index,
			PointerCount: count,
			X:            x,
			Y:            y,
			Time:         p.clock(),
		}
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p.fingers = 1
		if msg.Ctrl {
			p.fingers = 3
		} else if msg.Alt {
			p.fingers = 2
		}
		events := []touchpad.MotionEvent{at(touchpad.ActionDown, 0, 1)}
		for i := 1; i < p.fingers; i++ {
			events = append(events, at(touchpad.ActionPointerDown, i, i+1))
		}
		return events

	case msg.Action == tea.MouseActionMotion && p.fingers > 0:
		return []touchpad.MotionEvent{at(touchpad.ActionMove, 0, p.fingers)}

	case msg.Action == tea.MouseActionRelease && p.fingers > 0:
		var events []touchpad.MotionEvent
		for i := p.fingers - 1; i > 0; i-- {
			events = append(events, at(touchpad.ActionPointerUp, i, i+1))
		}
		p.fingers = 0
		return append(events, at(touchpad.ActionUp, 0, 1))
	}
	return nil
}

// Cancel abandons a sequence in progress
func (p *PointerTracker) Cancel() []touchpad.MotionEvent {
	if p.fingers == 0 {
		return nil
	}
	n := p.fingers
	p.fingers = 0
	return []touchpad.MotionEvent{{Action: touchpad.ActionCancel, PointerCount: n, Time: p.clock()}}
}
