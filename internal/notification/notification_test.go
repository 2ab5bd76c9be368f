package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openprism/internal/domain"
	"openprism/internal/eventbus"
	"openprism/internal/widget"
)

func TestSetMenuValidates(t *testing.T) {
	style := NewContextualNotification()
	assert.ErrorIs(t, style.SetMenu(0, &Intent{Action: "open"}), ErrInvalidMenu)
	assert.ErrorIs(t, style.SetMenu(7, nil), ErrNilIntent)

	r := NewReader(NewBuilder().SetStyle(style).Build())
	assert.False(t, r.HasMenu())
	assert.Nil(t, r.MenuIntent())

	require.NoError(t, style.SetMenu(7, &Intent{Action: "open"}))
	r = NewReader(NewBuilder().SetStyle(style).Build())
	assert.True(t, r.HasMenu())
	assert.Equal(t, 7, r.MenuResourceID())
	assert.Equal(t, "open", r.MenuIntent().Action)
}

func TestReaderProperties(t *testing.T) {
	style := NewContextualNotification().
		SetRenderer(Component{Package: "com.example", Class: "Renderer"}, map[string]any{"theme": "dark"}).
		SetReveal(true)
	n := NewBuilder().SetContentTitle("Title").SetContentText("Body").SetStyle(style).Build()

	r := NewReader(n)
	require.True(t, r.HasRenderer())
	renderer, _ := r.Renderer()
	assert.Equal(t, "com.example/Renderer", renderer.String())
	assert.True(t, r.HasRendererParams())
	assert.Equal(t, "dark", r.RendererParams()["theme"])
	assert.True(t, r.ShouldReveal())

	plain := NewReader(NewBuilder().Build())
	assert.False(t, plain.HasRenderer())
	assert.False(t, plain.HasRendererParams())
	assert.False(t, plain.ShouldReveal())
	assert.False(t, plain.HasMenu())
}

func TestRendererWithoutParams(t *testing.T) {
	style := NewContextualNotification().SetRenderer(Component{Package: "p", Class: "c"}, nil)
	r := NewReader(NewBuilder().SetStyle(style).Build())
	assert.True(t, r.HasRenderer())
	assert.False(t, r.HasRendererParams())
}

func TestToCard(t *testing.T) {
	text := NewReader(NewBuilder().SetContentTitle("Hello").SetContentText("World").Build()).ToCard()
	assert.Equal(t, widget.LayoutText, text.Layout())
	assert.Equal(t, "Hello", text.Text())
	assert.Equal(t, "World", text.Footnote())

	cols := NewReader(NewBuilder().
		SetContentTitle("Hello").
		SetLargeIcon("photo").
		SetSmallIcon("bell").
		Build()).ToCard()
	assert.Equal(t, widget.LayoutColumns, cols.Layout())
	assert.Equal(t, []string{"photo"}, cols.Images())
	assert.Equal(t, "bell", cols.Icon())

	// the small icon is only used next to a large one
	small := NewReader(NewBuilder().SetSmallIcon("bell").Build()).ToCard()
	assert.Equal(t, widget.LayoutText, small.Layout())
	assert.Empty(t, small.Icon())
}

func TestIntentWithMenuItem(t *testing.T) {
	base := Intent{Action: "open", Extras: map[string]any{"k": "v"}}
	picked := base.WithMenuItem(3)
	assert.Equal(t, 3, picked.Extras[ExtraMenuItemID])
	assert.Equal(t, "v", picked.Extras["k"])
	assert.NotContains(t, base.Extras, ExtraMenuItemID)
}

func TestManagerPublishesPostedNotifications(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	posted := make(chan domain.Notification, 1)
	bus.Subscribe(eventbus.EventNotificationPosted, func(e eventbus.DomainEvent) {
		posted <- e.(eventbus.NotificationPostedEvent).Notification
	})

	m := NewManager(bus)
	id := m.Notify(NewBuilder().SetContentTitle("Hi").Build())
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	select {
	case n := <-posted:
		assert.Equal(t, id, n.ID)
		assert.Equal(t, "Hi", n.Title())
		assert.False(t, n.When.IsZero())
	case <-time.After(time.Second):
		t.Fatal("notification not published")
	}
}

func TestManagerKeepsActiveNotifications(t *testing.T) {
	m := NewManager(nil)
	first := m.Notify(NewBuilder().SetContentTitle("one").Build())
	second := m.Notify(domain.Notification{ID: "fixed"})
	assert.Equal(t, "fixed", second)

	got, ok := m.Get(first)
	require.True(t, ok)
	assert.Equal(t, "one", got.Title())

	m.Notify(domain.Notification{ID: "fixed", Extras: map[string]any{domain.ExtraTitle: "updated"}})
	active := m.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "updated", active[1].Title())

	assert.True(t, m.Cancel(first))
	assert.False(t, m.Cancel(first))
	_, ok = m.Get(first)
	assert.False(t, ok)
	assert.Len(t, m.Active(), 1)
}
