package widget

import (
	"fmt"

	"openprism/internal/touchpad"
)

// DefaultPageWidth is the width of a card in input coordinates
const DefaultPageWidth = 400.0

// Animation tells Animate what kind of change to present
type Animation int

const (
	AnimationNavigation Animation = iota
	AnimationInsertion
	AnimationDeletion
)

func (a Animation) String() string {
	switch a {
	case AnimationNavigation:
		return "navigation"
	case AnimationInsertion:
		return "insertion"
	case AnimationDeletion:
		return "deletion"
	default:
		return fmt.Sprintf("animation(%d)", int(a))
	}
}

// PageRenderer is implemented by the view layer that draws the cards
type PageRenderer interface {
	// ScrollToPage brings the card at index into view
	ScrollToPage(index int, animate bool)
}

// ViewOption configures a CardScrollView
type ViewOption func(*CardScrollView)

// WithPageWidth sets the card width used to turn swipes into pages
func WithPageWidth(width float64) ViewOption {
	return func(v *CardScrollView) {
		v.pageWidth = width
	}
}

// WithSwipeThreshold sets the displacement a swipe must exceed
func WithSwipeThreshold(threshold float64) ViewOption {
	return func(v *CardScrollView) {
		v.router.SetThreshold(threshold)
	}
}

// CardScrollView is a horizontally paged timeline of cards. It composes a
// SelectionModel and an InputRouter and tells its PageRenderer which card to show.
// The view ignores input until it is activated.
type CardScrollView struct {
	model      *SelectionModel
	router     *InputRouter
	renderer   PageRenderer
	pageWidth  float64
	activated  bool
	unobserve  func()
	onSelected ItemListener
}

// NewCardScrollView creates an inactive view without an adapter. renderer may be nil.
func NewCardScrollView(renderer PageRenderer, opts ...ViewOption) *CardScrollView {
	v := &CardScrollView{
		model:     NewSelectionModel(nil),
		renderer:  renderer,
		pageWidth: DefaultPageWidth,
	}
	v.router = NewInputRouter(v.model, v)
	v.model.SetOnItemSelected(v.selected)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetAdapter attaches adapter, or detaches the current one when nil
func (v *CardScrollView) SetAdapter(adapter CardScrollAdapter) {
	if v.unobserve != nil {
		v.unobserve()
		v.unobserve = nil
	}
	v.model.SetAdapter(adapter)
	if adapter != nil {
		v.unobserve = adapter.RegisterObserver(v.dataSetChanged)
	}
	v.render(false)
}

// Adapter returns the attached adapter
func (v *CardScrollView) Adapter() CardScrollAdapter {
	return v.model.Adapter()
}

// SetRenderer replaces the renderer
func (v *CardScrollView) SetRenderer(renderer PageRenderer) {
	v.renderer = renderer
}

// Activate lets the view receive input
func (v *CardScrollView) Activate() {
	v.activated = true
}

// Deactivate makes the view ignore input
func (v *CardScrollView) Deactivate() {
	v.activated = false
}

// IsActivated reports whether the view handles input
func (v *CardScrollView) IsActivated() bool {
	return v.activated
}

// SetOnItemSelectedListener sets the listener fired when input or navigation
// selects another card
func (v *CardScrollView) SetOnItemSelectedListener(l ItemListener) {
	v.onSelected = l
}

// SetOnItemClickListener sets the listener fired when the selected card is activated
func (v *CardScrollView) SetOnItemClickListener(l ItemListener) {
	v.model.SetOnItemClicked(l)
}

// SetOnDismissRequestedListener sets the listener fired by a downward swipe or a
// back key
func (v *CardScrollView) SetOnDismissRequestedListener(l func()) {
	v.router.SetOnDismissRequested(l)
}

// SetGesturePad hands every input event to d as well
func (v *CardScrollView) SetGesturePad(d *touchpad.Detector) {
	v.router.SetGesturePad(d)
}

// OnMotionEvent routes a touch event while the view is activated
func (v *CardScrollView) OnMotionEvent(ev touchpad.MotionEvent) Outcome {
	if !v.activated {
		return OutcomeNone
	}
	return v.router.OnMotionEvent(ev)
}

// OnKeyEvent routes a key while the view is activated
func (v *CardScrollView) OnKeyEvent(code touchpad.KeyCode) Outcome {
	if !v.activated {
		return OutcomeNone
	}
	return v.router.OnKeyEvent(code)
}

// NextCard selects the following card
func (v *CardScrollView) NextCard() bool {
	return v.model.Next()
}

// PrevCard selects the preceding card
func (v *CardScrollView) PrevCard() bool {
	return v.model.Prev()
}

// SetSelection jumps to position without notifying the selected listener
func (v *CardScrollView) SetSelection(position int) bool {
	if !v.model.SetSelection(position) {
		return false
	}
	v.render(false)
	return true
}

// Animate presents a change. Navigation moves to position and reports whether
// the selection changed; insertions and deletions reconcile the selection with
// the adapter.
func (v *CardScrollView) Animate(position int, animation Animation) bool {
	switch animation {
	case AnimationNavigation:
		return v.model.Goto(position)
	case AnimationInsertion, AnimationDeletion:
		v.model.Rebuild()
		v.render(true)
	}
	return false
}

// SelectedItemPosition returns the selected position, or InvalidPosition
func (v *CardScrollView) SelectedItemPosition() int {
	if !v.model.Active() {
		return InvalidPosition
	}
	return v.model.Index()
}

// SelectedItemID returns the id of the selected card, or InvalidID
func (v *CardScrollView) SelectedItemID() int64 {
	return v.model.ItemID()
}

// SelectedItem returns the selected card, or nil
func (v *CardScrollView) SelectedItem() any {
	if !v.model.Active() {
		return nil
	}
	return v.model.Adapter().Item(v.model.Index())
}

// Count returns the number of cards
func (v *CardScrollView) Count() int {
	return v.model.Count()
}

// SetPageWidth updates the card width
func (v *CardScrollView) SetPageWidth(width float64) {
	v.pageWidth = width
}

// PageWidth implements Viewport
func (v *CardScrollView) PageWidth() float64 {
	return v.pageWidth
}

// ScrollOffset implements Viewport. The view rests on card boundaries.
func (v *CardScrollView) ScrollOffset() float64 {
	if !v.model.Active() {
		return 0
	}
	return float64(v.model.Index()) * v.pageWidth
}

func (v *CardScrollView) selected(position int, id int64) {
	v.render(true)
	if v.onSelected != nil {
		v.onSelected(position, id)
	}
}

func (v *CardScrollView) dataSetChanged() {
	v.model.Rebuild()
	v.render(false)
}

func (v *CardScrollView) render(animate bool) {
	if v.renderer == nil || !v.model.Active() {
		return
	}
	v.renderer.ScrollToPage(v.model.Index(), animate)
}
