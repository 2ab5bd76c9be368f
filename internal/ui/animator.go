package ui

import (
	"openprism/internal/ui/views"
	"openprism/internal/widget"
)

// animationFrames is how many ticks a page change takes
const animationFrames = 5

// pageAnimator is the PageRenderer of a screen. It remembers which card is
// shown and slides between cards over a few ticks.
type pageAnimator struct {
	enabled bool
	shown   int
	from    int
	frame   int
}

func newPageAnimator(enabled bool) *pageAnimator {
	return &pageAnimator{enabled: enabled, shown: widget.InvalidPosition, frame: animationFrames}
}

// ScrollToPage implements widget.PageRenderer
func (a *pageAnimator) ScrollToPage(index int, animate bool) {
	if !animate || !a.enabled || a.shown < 0 || index == a.shown {
		a.shown = index
		a.frame = animationFrames
		return
	}
	a.from = a.shown
	a.shown = index
	a.frame = 0
}

// Shown returns the card the animator is showing or moving to
func (a *pageAnimator) Shown() int {
	return a.shown
}

// Animating reports whether a page change is in progress
func (a *pageAnimator) Animating() bool {
	return a.frame < animationFrames
}

// Step advances a page change by one frame
func (a *pageAnimator) Step() {
	if a.frame < animationFrames {
		a.frame++
	}
}

// Transition describes the page change in progress, or nil
func (a *pageAnimator) Transition(adapter *widget.CardListAdapter) *views.Transition {
	if !a.Animating() {
		return nil
	}
	from := adapter.Card(a.from)
	if from == nil {
		return nil
	}
	return &views.Transition{
		From:     from,
		Forward:  a.shown > a.from,
		Progress: float64(a.frame) / animationFrames,
	}
}
