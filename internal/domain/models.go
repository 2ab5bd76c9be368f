package domain

import "time"

// Well-known extras of a Notification
const (
	ExtraTitle     = "android.title"
	ExtraText      = "android.text"
	ExtraLargeIcon = "android.largeIcon"
	ExtraSmallIcon = "android.icon"
)

// Notification represents a posted notification. Styles attach their
// properties to Extras.
type Notification struct {
	ID     string
	When   time.Time
	Extras map[string]any
}

// Title returns the title extra
func (n Notification) Title() string {
	return n.Extra(ExtraTitle)
}

// Text returns the content text extra
func (n Notification) Text() string {
	return n.Extra(ExtraText)
}

// Extra returns the string extra under key, or ""
func (n Notification) Extra(key string) string {
	s, _ := n.Extras[key].(string)
	return s
}
