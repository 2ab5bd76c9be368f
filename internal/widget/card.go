package widget

import (
	"fmt"
	"strings"
)

// MaxImages is how many images a card displays; extra images are kept but not shown
const MaxImages = 5

// Layout selects how a card arranges its content
type Layout int

const (
	// LayoutAlert shows a large centered icon with a message and footnote underneath
	LayoutAlert Layout = iota
	// LayoutAuthor shows an avatar, heading, subheading and the message
	LayoutAuthor
	// LayoutCaption shows a background image with a short caption
	LayoutCaption
	// LayoutColumns shows a mosaic or icon on the left and text on the right
	LayoutColumns
	// LayoutColumnsFixed is LayoutColumns without text resizing
	LayoutColumnsFixed
	// LayoutEmbedInside embeds custom content between the footer and the header
	LayoutEmbedInside
	// LayoutMenu shows a centered icon and a single line of text
	LayoutMenu
	// LayoutText shows large text with optional background images
	LayoutText
	// LayoutTextFixed is LayoutText without text resizing
	LayoutTextFixed
	// LayoutTitle shows a background image with a title and an optional icon
	LayoutTitle
)

var layoutNames = [...]string{
	LayoutAlert:        "ALERT",
	LayoutAuthor:       "AUTHOR",
	LayoutCaption:      "CAPTION",
	LayoutColumns:      "COLUMNS",
	LayoutColumnsFixed: "COLUMNS_FIXED",
	LayoutEmbedInside:  "EMBED_INSIDE",
	LayoutMenu:         "MENU",
	LayoutText:         "TEXT",
	LayoutTextFixed:    "TEXT_FIXED",
	LayoutTitle:        "TITLE",
}

func (l Layout) String() string {
	if l < 0 || int(l) >= len(layoutNames) {
		return fmt.Sprintf("Layout(%d)", int(l))
	}
	return layoutNames[l]
}

// ParseLayout parses a layout name, case-insensitively
func ParseLayout(name string) (Layout, error) {
	for i, n := range layoutNames {
		if strings.EqualFold(n, name) {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("unknown card layout %q", name)
}

// Embed is custom tabular content shown by LayoutEmbedInside cards
type Embed struct {
	Headers []string
	Rows    [][]string
}

// CardBuilder describes the content of one card. Setters return the builder so
// calls can be chained; rendering is left to the view layer.
type CardBuilder struct {
	layout          Layout
	heading         string
	subheading      string
	text            string
	footnote        string
	timestamp       string
	icon            string
	attributionIcon string
	stackIndicator  bool
	images          []string
	embed           *Embed
}

// NewCardBuilder creates an empty card with the given layout
func NewCardBuilder(layout Layout) *CardBuilder {
	return &CardBuilder{layout: layout}
}

func (c *CardBuilder) SetText(text string) *CardBuilder {
	c.text = text
	return c
}

func (c *CardBuilder) SetFootnote(footnote string) *CardBuilder {
	c.footnote = footnote
	return c
}

func (c *CardBuilder) SetTimestamp(timestamp string) *CardBuilder {
	c.timestamp = timestamp
	return c
}

func (c *CardBuilder) SetHeading(heading string) *CardBuilder {
	c.heading = heading
	return c
}

func (c *CardBuilder) SetSubheading(subheading string) *CardBuilder {
	c.subheading = subheading
	return c
}

// AddImage appends an image. Images are referenced by name; the view decides how
// to draw them.
func (c *CardBuilder) AddImage(image string) *CardBuilder {
	c.images = append(c.images, image)
	return c
}

// ClearImages removes every image
func (c *CardBuilder) ClearImages() {
	c.images = nil
}

func (c *CardBuilder) SetIcon(icon string) *CardBuilder {
	c.icon = icon
	return c
}

func (c *CardBuilder) SetAttributionIcon(icon string) *CardBuilder {
	c.attributionIcon = icon
	return c
}

// ShowStackIndicator toggles the corner marker telling the card is a bundle
func (c *CardBuilder) ShowStackIndicator(visible bool) *CardBuilder {
	c.stackIndicator = visible
	return c
}

// SetEmbeddedContent sets the content of a LayoutEmbedInside card
func (c *CardBuilder) SetEmbeddedContent(embed Embed) *CardBuilder {
	c.embed = &embed
	return c
}

func (c *CardBuilder) Layout() Layout { return c.layout }
func (c *CardBuilder) Text() string { return c.text }
func (c *CardBuilder) Footnote() string { return c.footnote }
func (c *CardBuilder) Timestamp() string { return c.timestamp }
func (c *CardBuilder) Heading() string { return c.heading }
func (c *CardBuilder) Subheading() string { return c.subheading }
func (c *CardBuilder) Icon() string { return c.icon }
func (c *CardBuilder) AttributionIcon() string { return c.attributionIcon }
func (c *CardBuilder) StackIndicatorShown() bool { return c.stackIndicator }

// Images returns the images that are displayed, at most MaxImages
func (c *CardBuilder) Images() []string {
	if len(c.images) > MaxImages {
		return c.images[:MaxImages]
	}
	return c.images
}

// EmbeddedContent returns the embedded content, if any
func (c *CardBuilder) EmbeddedContent() (Embed, bool) {
	if c.embed == nil {
		return Embed{}, false
	}
	return *c.embed, true
}

// Validate reports configurations that cannot be rendered
func (c *CardBuilder) Validate() error {
	if c.layout == LayoutEmbedInside && c.embed == nil {
		return fmt.Errorf("card layout %s requires embedded content", c.layout)
	}
	if c.layout < 0 || int(c.layout) >= len(layoutNames) {
		return fmt.Errorf("unsupported card layout %s", c.layout)
	}
	return nil
}

// ItemViewType returns the view type of the card for adapters recycling views.
// All cards share one view type.
func (c *CardBuilder) ItemViewType() int {
	return 0
}

// ViewTypeCount returns the number of view types cards can take
func ViewTypeCount() int {
	return 1
}
