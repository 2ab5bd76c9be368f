package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openprism/internal/touchpad"
)

type scrollCall struct {
	index   int
	animate bool
}

type recordingRenderer struct {
	calls []scrollCall
}

func (r *recordingRenderer) ScrollToPage(index int, animate bool) {
	r.calls = append(r.calls, scrollCall{index, animate})
}

func (r *recordingRenderer) last() scrollCall {
	return r.calls[len(r.calls)-1]
}

func textCards(texts ...string) []*CardBuilder {
	cards := make([]*CardBuilder, len(texts))
	for i, text := range texts {
		cards[i] = NewCardBuilder(LayoutText).SetText(text)
	}
	return cards
}

func newActiveView(texts ...string) (*CardScrollView, *CardListAdapter, *recordingRenderer) {
	renderer := &recordingRenderer{}
	view := NewCardScrollView(renderer, WithPageWidth(100))
	adapter := NewCardListAdapter(textCards(texts...)...)
	view.SetAdapter(adapter)
	view.Activate()
	return view, adapter, renderer
}

func TestViewIgnoresInputUntilActivated(t *testing.T) {
	view := NewCardScrollView(nil)
	view.SetAdapter(NewCardListAdapter(textCards("a", "b")...))
	assert.False(t, view.IsActivated())
	assert.Equal(t, OutcomeNone, view.OnKeyEvent(touchpad.KeyDpadRight))
	assert.Equal(t, 0, view.SelectedItemPosition())

	view.Activate()
	assert.Equal(t, OutcomeNavigated, view.OnKeyEvent(touchpad.KeyDpadRight))
	assert.Equal(t, 1, view.SelectedItemPosition())

	view.Deactivate()
	assert.Equal(t, OutcomeNone, view.OnKeyEvent(touchpad.KeyDpadLeft))
	assert.Equal(t, 1, view.SelectedItemPosition())
}

func TestViewRendersSelection(t *testing.T) {
	view, _, renderer := newActiveView("a", "b", "c")
	require.NotEmpty(t, renderer.calls)
	assert.Equal(t, scrollCall{0, false}, renderer.last())

	var selected []int
	view.SetOnItemSelectedListener(func(p int, _ int64) { selected = append(selected, p) })

	view.NextCard()
	assert.Equal(t, scrollCall{1, true}, renderer.last())
	assert.Equal(t, 100.0, view.ScrollOffset())

	view.SetSelection(2)
	assert.Equal(t, scrollCall{2, false}, renderer.last())
	assert.Equal(t, []int{1}, selected, "SetSelection does not notify")

	view.PrevCard()
	assert.Equal(t, []int{1, 1}, selected)
}

func TestViewSwipesUseScrollOffset(t *testing.T) {
	view, _, _ := newActiveView("a", "b", "c", "d")
	view.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionDown, PointerCount: 1, X: 300})
	out := view.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 1, X: 180})
	assert.Equal(t, OutcomeNavigated, out)
	assert.Equal(t, 1, view.SelectedItemPosition())

	view.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionDown, PointerCount: 1, X: 300})
	view.OnMotionEvent(touchpad.MotionEvent{Action: touchpad.ActionUp, PointerCount: 1, X: 110})
	assert.Equal(t, 3, view.SelectedItemPosition())
}

func TestViewFollowsDataSetChanges(t *testing.T) {
	view, adapter, renderer := newActiveView("a", "b", "c", "d", "e")
	view.SetSelection(4)

	adapter.Remove(4)
	assert.Equal(t, 3, view.SelectedItemPosition())
	assert.Equal(t, scrollCall{3, false}, renderer.last())

	adapter.SetCards(nil)
	assert.Equal(t, InvalidPosition, view.SelectedItemPosition())
	assert.Equal(t, InvalidID, view.SelectedItemID())
	assert.Nil(t, view.SelectedItem())

	adapter.Insert(0, NewCardBuilder(LayoutMenu).SetText("menu"))
	assert.Equal(t, 0, view.SelectedItemPosition())
	card, ok := view.SelectedItem().(*CardBuilder)
	require.True(t, ok)
	assert.Equal(t, "menu", card.Text())
}

func TestViewAnimate(t *testing.T) {
	view, adapter, renderer := newActiveView("a", "b", "c")
	var selected []int
	view.SetOnItemSelectedListener(func(p int, _ int64) { selected = append(selected, p) })

	assert.True(t, view.Animate(2, AnimationNavigation))
	assert.False(t, view.Animate(2, AnimationNavigation))
	assert.False(t, view.Animate(9, AnimationNavigation))
	assert.Equal(t, []int{2}, selected)

	// Insert without notifying, then present it
	adapter.cards = append(adapter.cards, NewCardBuilder(LayoutText))
	assert.False(t, view.Animate(3, AnimationInsertion))
	assert.Equal(t, scrollCall{2, true}, renderer.last())
	assert.Equal(t, 4, view.Count())
}

func TestViewSetAdapterSwapsObserver(t *testing.T) {
	view, first, _ := newActiveView("a", "b")
	assert.Equal(t, 1, first.ObserverCount())

	second := NewCardListAdapter(textCards("x")...)
	view.SetAdapter(second)
	assert.Zero(t, first.ObserverCount())
	assert.Equal(t, 1, second.ObserverCount())
	assert.Same(t, second, view.Adapter())

	view.SetAdapter(nil)
	assert.Zero(t, second.ObserverCount())
	assert.Equal(t, InvalidPosition, view.SelectedItemPosition())
}

func TestViewClickAndDismiss(t *testing.T) {
	view, _, _ := newActiveView("a", "b")
	var clicked []int64
	dismissed := 0
	view.SetOnItemClickListener(func(_ int, id int64) { clicked = append(clicked, id) })
	view.SetOnDismissRequestedListener(func() { dismissed++ })

	view.OnKeyEvent(touchpad.KeyDpadRight)
	assert.Equal(t, OutcomeClicked, view.OnKeyEvent(touchpad.KeyEnter))
	assert.Equal(t, OutcomeDismissed, view.OnKeyEvent(touchpad.KeyBack))
	assert.Equal(t, []int64{1}, clicked)
	assert.Equal(t, 1, dismissed)
}
