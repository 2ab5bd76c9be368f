package ui

import (
	"strings"

	"openprism/internal/touchpad"
	"openprism/internal/widget"
)

const (
	mainScreenName      = "OpenPrism"
	functionsScreenName = "Functions"
)

// Positions of the cards the functions screen updates
const (
	sendNotificationCard = iota
	eyeGestureCard
	gestureCard
	sliderCard
)

// menuResourceID identifies the options menu attached to test notifications
const menuResourceID = 1

type menuEntry struct {
	id    int
	title string
}

// menus holds the options menus notifications can refer to
var menus = map[int][]menuEntry{
	menuResourceID: {
		{id: 1, title: "Menu Item 1"},
		{id: 2, title: "Menu Item 2"},
	},
}

// screen is one card timeline of the sample application
type screen struct {
	name    string
	adapter *widget.CardListAdapter
	view    *widget.CardScrollView
	pad     *touchpad.Detector
	pager   *pageAnimator

	scroller *widget.Scroller
}

// card returns the selected card
func (s *screen) card() *widget.CardBuilder {
	return s.adapter.Card(s.view.SelectedItemPosition())
}

func mainCards() []*widget.CardBuilder {
	cats := func(c *widget.CardBuilder) *widget.CardBuilder {
		for _, img := range []string{"cat1", "cat2", "cat3", "cat4", "cat5"} {
			c.AddImage(img)
		}
		return c
	}

	return []*widget.CardBuilder{
		widget.NewCardBuilder(widget.LayoutMenu).
			SetText("Test functions").
			SetIcon("settings"),
		widget.NewCardBuilder(widget.LayoutText).
			SetText("A stack indicator can be added to the corner of a card to indicate that it represents a bundle of other items.").
			SetAttributionIcon("smile").
			ShowStackIndicator(true),
		widget.NewCardBuilder(widget.LayoutText).
			SetText("This is the TEXT layout. The text size will adjust dynamically.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now"),
		cats(widget.NewCardBuilder(widget.LayoutText).
			SetText("You can also add images to the background of a TEXT card.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now")),
		widget.NewCardBuilder(widget.LayoutTextFixed).
			SetText("This is the TEXT_FIXED layout. The text size is always the same.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now"),
		cats(widget.NewCardBuilder(widget.LayoutColumns).
			SetText("This is the COLUMNS layout with dynamic text.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now")),
		widget.NewCardBuilder(widget.LayoutColumns).
			SetText("You can even put a centered icon on a COLUMNS card instead of a mosaic.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now").
			SetIcon("wifi"),
		cats(widget.NewCardBuilder(widget.LayoutColumnsFixed).
			SetText("This is the COLUMNS_FIXED layout. The text size is always the same.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now")),
		widget.NewCardBuilder(widget.LayoutCaption).
			SetText("The CAPTION layout.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now").
			AddImage("beach").
			SetAttributionIcon("smile"),
		widget.NewCardBuilder(widget.LayoutCaption).
			SetText("The CAPTION layout with an icon.").
			SetFootnote("This is the footnote").
			SetTimestamp("just now").
			AddImage("beach").
			SetIcon("avatar").
			SetAttributionIcon("smile"),
		widget.NewCardBuilder(widget.LayoutTitle).
			SetText("TITLE Card").
			SetIcon("phone").
			AddImage("beach"),
		widget.NewCardBuilder(widget.LayoutAuthor).
			SetText("The AUTHOR layout lets you display a message or conversation with a focus on the author.").
			SetIcon("avatar").
			SetHeading("Joe Lastname").
			SetSubheading("Mountain View, California").
			SetFootnote("This is the footnote").
			SetTimestamp("just now").
			SetAttributionIcon("smile"),
		widget.NewCardBuilder(widget.LayoutMenu).
			SetText("MENU layout").
			SetIcon("phone").
			SetFootnote("Optional menu description"),
		widget.NewCardBuilder(widget.LayoutEmbedInside).
			SetEmbeddedContent(widget.Embed{
				Headers: []string{"Food", "Calories"},
				Rows: [][]string{
					{"Oatmeal", "150"},
					{"Banana", "105"},
					{"Salad", "320"},
					{"Coffee", "5"},
				},
			}).
			SetFootnote("Foods you tracked").
			SetTimestamp("today"),
	}
}

func functionsCards() []*widget.CardBuilder {
	return []*widget.CardBuilder{
		sendNotificationCard: widget.NewCardBuilder(widget.LayoutMenu).
			SetText("Send notification"),
		eyeGestureCard: widget.NewCardBuilder(widget.LayoutText).
			SetText("No eye gestures detected yet."),
		gestureCard: widget.NewCardBuilder(widget.LayoutText).
			SetText("No gestures detected yet."),
		sliderCard: widget.NewCardBuilder(widget.LayoutMenu).
			SetText("Slider").
			SetFootnote("Tap to start or stop a progress bar"),
	}
}

// describe turns an upper-case constant name into a sentence start:
// TWO_SWIPE_LEFT becomes "Two swipe left"
func describe(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
