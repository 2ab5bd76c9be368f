// Package notification implements the contextual notification style: a
// notification that can carry its own renderer, an options menu and a request to
// be revealed on screen as soon as it is posted.
package notification

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"openprism/internal/domain"
)

// ExtraMenuItemID is the intent extra holding the id of the chosen menu item
const ExtraMenuItemID = "menu_item_id"

const (
	keyMenu           = "menu"
	keyMenuIntent     = "menu_intent"
	keyRenderer       = "renderer"
	keyRendererParams = "renderer_params"
	keyReveal         = "reveal"
)

var (
	// ErrInvalidMenu is returned for a zero menu resource id
	ErrInvalidMenu = errors.New("invalid menu resource id")
	// ErrNilIntent is returned when a menu is set without an intent
	ErrNilIntent = errors.New("nil menu intent")
)

// Component names the component that renders a notification
type Component struct {
	Package string
	Class   string
}

func (c Component) String() string {
	return c.Package + "/" + c.Class
}

// Intent is delivered when the user picks an item of a notification menu
type Intent struct {
	Action string
	Extras map[string]any
}

// WithMenuItem returns a copy of the intent carrying the chosen item id
func (i Intent) WithMenuItem(itemID int) Intent {
	extras := make(map[string]any, len(i.Extras)+1)
	maps.Copy(extras, i.Extras)
	extras[ExtraMenuItemID] = itemID
	return Intent{Action: i.Action, Extras: extras}
}

// ContextualNotification holds the properties the style adds to a notification
type ContextualNotification struct {
	props map[string]any
}

// NewContextualNotification creates an empty style
func NewContextualNotification() *ContextualNotification {
	return &ContextualNotification{props: make(map[string]any)}
}

// SetRenderer sets the component drawing the notification. params may be nil.
func (c *ContextualNotification) SetRenderer(renderer Component, params map[string]any) *ContextualNotification {
	c.props[keyRenderer] = renderer
	if params != nil {
		c.props[keyRendererParams] = params
	}
	return c
}

// SetMenu attaches the options menu menuID, delivering intent when an item is chosen
func (c *ContextualNotification) SetMenu(menuID int, intent *Intent) error {
	if menuID == 0 {
		return fmt.Errorf("set menu: %w", ErrInvalidMenu)
	}
	if intent == nil {
		return fmt.Errorf("set menu %d: %w", menuID, ErrNilIntent)
	}
	c.props[keyMenu] = menuID
	c.props[keyMenuIntent] = intent
	return nil
}

// SetReveal asks for the notification to be shown as soon as it is posted
func (c *ContextualNotification) SetReveal(reveal bool) *ContextualNotification {
	c.props[keyReveal] = reveal
	return c
}

// AddExtras copies the style properties into extras
func (c *ContextualNotification) AddExtras(extras map[string]any) {
	maps.Copy(extras, c.props)
}

// Builder assembles a notification
type Builder struct {
	when   time.Time
	extras map[string]any
	style  *ContextualNotification
}

// NewBuilder creates an empty notification builder
func NewBuilder() *Builder {
	return &Builder{extras: make(map[string]any)}
}

func (b *Builder) SetContentTitle(title string) *Builder {
	b.extras[domain.ExtraTitle] = title
	return b
}

func (b *Builder) SetContentText(text string) *Builder {
	b.extras[domain.ExtraText] = text
	return b
}

func (b *Builder) SetLargeIcon(icon string) *Builder {
	b.extras[domain.ExtraLargeIcon] = icon
	return b
}

func (b *Builder) SetSmallIcon(icon string) *Builder {
	b.extras[domain.ExtraSmallIcon] = icon
	return b
}

func (b *Builder) SetWhen(when time.Time) *Builder {
	b.when = when
	return b
}

// SetStyle applies a contextual style when the notification is built
func (b *Builder) SetStyle(style *ContextualNotification) *Builder {
	b.style = style
	return b
}

// Build returns the notification. Its ID is assigned when it is posted.
func (b *Builder) Build() domain.Notification {
	extras := make(map[string]any, len(b.extras))
	maps.Copy(extras, b.extras)
	if b.style != nil {
		b.style.AddExtras(extras)
	}
	return domain.Notification{When: b.when, Extras: extras}
}
