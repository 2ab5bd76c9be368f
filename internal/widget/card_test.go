package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardBuilderChaining(t *testing.T) {
	card := NewCardBuilder(LayoutAuthor).
		SetHeading("Joe Lennon").
		SetSubheading("San Francisco, California").
		SetText("I'm sitting in the car, waiting for you.").
		SetFootnote("Reply by saying \"ok glass\"").
		SetTimestamp("just now").
		SetIcon("avatar").
		SetAttributionIcon("app").
		ShowStackIndicator(true)

	assert.Equal(t, LayoutAuthor, card.Layout())
	assert.Equal(t, "Joe Lennon", card.Heading())
	assert.Equal(t, "San Francisco, California", card.Subheading())
	assert.Equal(t, "just now", card.Timestamp())
	assert.Equal(t, "avatar", card.Icon())
	assert.Equal(t, "app", card.AttributionIcon())
	assert.True(t, card.StackIndicatorShown())
	assert.NoError(t, card.Validate())
}

func TestCardImagesAreCapped(t *testing.T) {
	card := NewCardBuilder(LayoutColumns)
	for _, img := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		card.AddImage(img)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, card.Images())

	card.ClearImages()
	assert.Empty(t, card.Images())
}

func TestEmbedInsideNeedsContent(t *testing.T) {
	card := NewCardBuilder(LayoutEmbedInside)
	require.Error(t, card.Validate())
	_, ok := card.EmbeddedContent()
	assert.False(t, ok)

	card.SetEmbeddedContent(Embed{Headers: []string{"Food", "Calories"}, Rows: [][]string{{"Apple", "95"}}})
	assert.NoError(t, card.Validate())
	embed, ok := card.EmbeddedContent()
	require.True(t, ok)
	assert.Equal(t, "Apple", embed.Rows[0][0])
}

func TestLayoutNames(t *testing.T) {
	for l := LayoutAlert; l <= LayoutTitle; l++ {
		parsed, err := ParseLayout(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	parsed, err := ParseLayout("columns_fixed")
	require.NoError(t, err)
	assert.Equal(t, LayoutColumnsFixed, parsed)

	_, err = ParseLayout("GRID")
	assert.Error(t, err)
	assert.Error(t, NewCardBuilder(Layout(42)).Validate())
}

func TestCardListAdapter(t *testing.T) {
	cards := textCards("a", "b", "c")
	adapter := NewCardListAdapter(cards...)
	notified := 0
	unregister := adapter.RegisterObserver(func() { notified++ })

	assert.Equal(t, 3, adapter.Count())
	assert.Equal(t, int64(2), adapter.ItemID(2))
	assert.Zero(t, adapter.HomePosition())
	assert.Equal(t, 1, adapter.Position(cards[1]))
	assert.Equal(t, InvalidPosition, adapter.Position(NewCardBuilder(LayoutText)))
	assert.Equal(t, InvalidPosition, adapter.Position("b"))
	assert.Nil(t, adapter.Card(3))

	adapter.Insert(-5, NewCardBuilder(LayoutMenu).SetText("first"))
	adapter.Insert(99, NewCardBuilder(LayoutMenu).SetText("last"))
	assert.Equal(t, "first", adapter.Card(0).Text())
	assert.Equal(t, "last", adapter.Card(4).Text())
	assert.False(t, adapter.Remove(5))
	assert.True(t, adapter.Remove(0))
	assert.Equal(t, "a", adapter.Card(0).Text())
	assert.Equal(t, 3, notified)

	unregister()
	adapter.SetCards(nil)
	assert.Equal(t, 3, notified)
	assert.Zero(t, adapter.Count())
}

func TestObserversCanUnregisterWhileNotified(t *testing.T) {
	var obs DataSetObservable
	calls := 0
	var unregister func()
	unregister = obs.RegisterObserver(func() {
		calls++
		unregister()
	})
	obs.RegisterObserver(func() { calls++ })

	obs.NotifyDataSetChanged()
	obs.NotifyDataSetChanged()
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, obs.ObserverCount())
}
