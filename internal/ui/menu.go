package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"openprism/internal/notification"
)

var menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)

// menuItem implements list.Item
type menuItem struct {
	menuEntry
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.title }

type menuItemDelegate struct{}

func (d menuItemDelegate) Height() int  { return 1 }
func (d menuItemDelegate) Spacing() int { return 0 }
func (d menuItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d menuItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(menuItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = menuCursorStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s", prefix, entry.title)
}

// optionsMenu is the menu opened from a notification
type optionsMenu struct {
	list           list.Model
	intent         *notification.Intent
	notificationID string
}

func newOptionsMenu(notificationID, title string, entries []menuEntry, intent *notification.Intent) *optionsMenu {
	items := make([]list.Item, len(entries))
	width := lipgloss.Width(title)
	for i, e := range entries {
		items[i] = menuItem{e}
		width = max(width, lipgloss.Width(e.title)+2)
	}

	l := list.New(items, menuItemDelegate{}, width+2, len(entries)+4)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return &optionsMenu{list: l, intent: intent, notificationID: notificationID}
}

// chosen returns the highlighted entry
func (m *optionsMenu) chosen() (menuEntry, bool) {
	item, ok := m.list.SelectedItem().(menuItem)
	return item.menuEntry, ok
}

// deliver returns the intent sent for the highlighted entry
func (m *optionsMenu) deliver() (menuEntry, notification.Intent, bool) {
	entry, ok := m.chosen()
	if !ok || m.intent == nil {
		return entry, notification.Intent{}, false
	}
	return entry, m.intent.WithMenuItem(entry.id), true
}
