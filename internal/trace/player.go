package trace

import (
	"fmt"
	"strconv"
	"time"

	"openprism/internal/touchpad"
	"openprism/internal/widget"
)

// OutputKind is the kind of thing a replay reports
type OutputKind string

const (
	OutputGesture   OutputKind = "gesture"
	OutputFingers   OutputKind = "fingers"
	OutputSelected  OutputKind = "selected"
	OutputClicked   OutputKind = "clicked"
	OutputDismissed OutputKind = "dismissed"
)

// Output is one observation made while replaying
type Output struct {
	Kind     OutputKind `json:"kind"`
	Gesture  string     `json:"gesture,omitempty"`
	Position int        `json:"position"`
	Fingers  int        `json:"fingers,omitempty"`
}

func (o Output) String() string {
	switch o.Kind {
	case OutputGesture:
		return "gesture " + o.Gesture
	case OutputFingers:
		return "fingers " + strconv.Itoa(o.Fingers)
	case OutputSelected, OutputClicked:
		return fmt.Sprintf("%s %d", o.Kind, o.Position)
	default:
		return string(o.Kind)
	}
}

// PlayerOption configures a Player
type PlayerOption func(*playerConfig)

type playerConfig struct {
	cards     int
	threshold float64
	pageWidth float64
	longPress time.Duration
}

// WithCards sets the number of cards on the timeline
func WithCards(n int) PlayerOption {
	return func(c *playerConfig) { c.cards = n }
}

// WithThreshold sets the swipe threshold of the detector and the timeline
func WithThreshold(threshold float64) PlayerOption {
	return func(c *playerConfig) { c.threshold = threshold }
}

// WithPageWidth sets the card width of the timeline
func WithPageWidth(width float64) PlayerOption {
	return func(c *playerConfig) { c.pageWidth = width }
}

// WithLongPress turns taps held for at least timeout into long presses
func WithLongPress(timeout time.Duration) PlayerOption {
	return func(c *playerConfig) { c.longPress = timeout }
}

// Player feeds records through a gesture detector attached to a card timeline
// and reports what they did
type Player struct {
	view *widget.CardScrollView
	pad  *touchpad.Detector
	out  []Output
}

// NewPlayer creates a player over an activated timeline
func NewPlayer(opts ...PlayerOption) *Player {
	cfg := playerConfig{
		cards:     5,
		threshold: touchpad.DefaultSwipeThreshold,
		pageWidth: widget.DefaultPageWidth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.cards = max(cfg.cards, 0)

	p := &Player{}
	p.pad = touchpad.NewDetector(
		touchpad.WithSwipeThreshold(cfg.threshold),
		touchpad.WithLongPressTimeout(cfg.longPress),
	)
	p.pad.SetBaseListener(func(g touchpad.Gesture) bool {
		p.out = append(p.out, Output{Kind: OutputGesture, Gesture: g.String()})
		return true
	})
	p.pad.SetFingerListener(func(_, current int) {
		p.out = append(p.out, Output{Kind: OutputFingers, Fingers: current})
	})

	cards := make([]*widget.CardBuilder, cfg.cards)
	for i := range cards {
		cards[i] = widget.NewCardBuilder(widget.LayoutText).SetText(fmt.Sprintf("Card %d", i+1))
	}
	p.view = widget.NewCardScrollView(nil,
		widget.WithPageWidth(cfg.pageWidth),
		widget.WithSwipeThreshold(cfg.threshold),
	)
	p.view.SetAdapter(widget.NewCardListAdapter(cards...))
	p.view.SetGesturePad(p.pad)
	p.view.SetOnItemSelectedListener(func(position int, _ int64) {
		p.out = append(p.out, Output{Kind: OutputSelected, Position: position})
	})
	p.view.SetOnItemClickListener(func(position int, _ int64) {
		p.out = append(p.out, Output{Kind: OutputClicked, Position: position})
	})
	p.view.SetOnDismissRequestedListener(func() {
		p.out = append(p.out, Output{Kind: OutputDismissed})
	})
	p.view.Activate()
	return p
}

// Feed replays one record and returns what it caused
func (p *Player) Feed(r Record) ([]Output, error) {
	p.out = nil
	if r.IsKey() {
		p.view.OnKeyEvent(r.KeyCode())
		return p.out, nil
	}
	ev, err := r.MotionEvent()
	if err != nil {
		return nil, err
	}
	p.view.OnMotionEvent(ev)
	return p.out, nil
}

// Play replays records in order
func (p *Player) Play(records []Record) ([]Output, error) {
	var all []Output
	for i, r := range records {
		out, err := p.Feed(r)
		if err != nil {
			return all, fmt.Errorf("record %d: %w", i+1, err)
		}
		all = append(all, out...)
	}
	return all, nil
}

// Position returns the selected card
func (p *Player) Position() int {
	return p.view.SelectedItemPosition()
}
