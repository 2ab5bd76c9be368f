package views

import (
	"math"
	"strings"
	"time"

	"openprism/internal/widget"
)

// indeterminateStep is how long the indeterminate block takes to move one cell
const indeterminateStep = 40 * time.Millisecond

// SliderRenderer draws the one-line slider under the card
type SliderRenderer struct {
	styles *Styles
}

// NewSliderRenderer creates a new slider renderer
func NewSliderRenderer(styles *Styles) *SliderRenderer {
	return &SliderRenderer{styles: styles}
}

// Render draws state width cells wide at time now. A hidden slider is blank.
func (r *SliderRenderer) Render(state widget.SliderState, width int, now time.Time) string {
	if width <= 0 {
		return ""
	}
	if !state.Visible {
		return strings.Repeat(" ", width)
	}

	switch state.Kind {
	case widget.SliderScroller:
		// a thumb as wide as one item, placed at the current position
		thumb := max(width/(state.Max+1), 1)
		start := int(math.Round(state.Fraction(now) * float64(width-thumb)))
		return r.segment(width, start, thumb)

	case widget.SliderIndeterminate:
		block := max(width/5, 1)
		span := width + block
		start := int(now.UnixMilli()/indeterminateStep.Milliseconds())%span - block
		return r.segment(width, start, block)

	default:
		return r.segment(width, 0, int(math.Round(state.Fraction(now)*float64(width))))
	}
}

// segment fills cells [start, start+n) of a width-cell track, clipped to the track
func (r *SliderRenderer) segment(width, start, n int) string {
	lo := min(max(start, 0), width)
	hi := min(max(start+n, 0), width)
	return r.styles.SliderTrack.Render(strings.Repeat("━", lo)) +
		r.styles.SliderFill.Render(strings.Repeat("━", hi-lo)) +
		r.styles.SliderTrack.Render(strings.Repeat("━", width-hi))
}
