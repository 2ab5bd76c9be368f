package notification

import (
	"openprism/internal/domain"
	"openprism/internal/widget"
)

// Reader reads the contextual properties of a posted notification
type Reader struct {
	n domain.Notification
}

// NewReader creates a reader over n
func NewReader(n domain.Notification) Reader {
	return Reader{n: n}
}

func (r Reader) HasRenderer() bool {
	_, ok := r.Renderer()
	return ok
}

func (r Reader) Renderer() (Component, bool) {
	c, ok := r.n.Extras[keyRenderer].(Component)
	return c, ok
}

func (r Reader) HasRendererParams() bool {
	return r.RendererParams() != nil
}

func (r Reader) RendererParams() map[string]any {
	p, _ := r.n.Extras[keyRendererParams].(map[string]any)
	return p
}

func (r Reader) HasMenu() bool {
	return r.MenuResourceID() != 0
}

// MenuResourceID returns the menu id, or 0 without a menu
func (r Reader) MenuResourceID() int {
	id, _ := r.n.Extras[keyMenu].(int)
	return id
}

// MenuIntent returns the menu intent, or nil without a menu
func (r Reader) MenuIntent() *Intent {
	i, _ := r.n.Extras[keyMenuIntent].(*Intent)
	return i
}

func (r Reader) ShouldReveal() bool {
	reveal, _ := r.n.Extras[keyReveal].(bool)
	return reveal
}

// ToCard builds the card shown for the notification: a columns card with the
// large icon when there is one, a plain text card otherwise.
func (r Reader) ToCard() *widget.CardBuilder {
	var card *widget.CardBuilder
	if large := r.n.Extra(domain.ExtraLargeIcon); large != "" {
		card = widget.NewCardBuilder(widget.LayoutColumns).AddImage(large)
		if small := r.n.Extra(domain.ExtraSmallIcon); small != "" {
			card.SetIcon(small)
		}
	} else {
		card = widget.NewCardBuilder(widget.LayoutText)
	}
	return card.SetText(r.n.Title()).SetFootnote(r.n.Text())
}
