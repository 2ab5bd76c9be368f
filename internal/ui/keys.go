package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap describes the bindings shown in the help footer. Dispatch happens in
// the input package; these only document it.
type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Tap     key.Binding
	Dismiss key.Binding
	Swipe   key.Binding
	Fingers key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous card"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next card"),
		),
		Tap: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "tap"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "backspace", "down", "j"),
			key.WithHelp("esc/↓", "swipe down"),
		),
		Swipe: key.NewBinding(
			key.WithKeys("mouse"),
			key.WithHelp("drag", "swipe"),
		),
		Fingers: key.NewBinding(
			key.WithKeys("alt", "ctrl"),
			key.WithHelp("alt/ctrl+drag", "two/three fingers"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Tap, k.Dismiss, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Tap, k.Dismiss},
		{k.Swipe, k.Fingers},
		{k.Help, k.Quit},
	}
}
