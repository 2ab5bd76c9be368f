package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Timeline", []helpEntry{
		{"←/h, shift+tab", "Previous card (DPAD_LEFT, NAVIGATE_PREVIOUS)"},
		{"→/l, tab", "Next card (DPAD_RIGHT, NAVIGATE_NEXT)"},
		{"enter, space", "Tap the selected card (ENTER, DPAD_CENTER)"},
		{"↑/k", "Swipe up (DPAD_UP)"},
		{"esc, ↓/j", "Swipe down: leave the screen (ESCAPE, DPAD_DOWN)"},
		{"backspace", "Back (BACK)"},
		{"wheel", "Previous/next card"},
	}},
	{"Touchpad", []helpEntry{
		{"drag", "One finger: drag left/right to page, down to dismiss, click to tap"},
		{"alt+drag", "Two fingers"},
		{"ctrl+drag", "Three fingers"},
	}},
	{"Notifications", []helpEntry{
		{"enter / click", "Open the menu while a notification is showing"},
		{"esc / swipe down", "Dismiss the notification"},
	}},
	{"Other", []helpEntry{
		{"?", "Show this help"},
		{"q, ctrl+c", "Quit"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	width := 0
	for _, s := range helpSections {
		for _, e := range s.entries {
			width = max(width, lipgloss.Width(e.keys))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("OpenPrism Help"))
	help.WriteString("\n")
	for i, s := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for _, e := range s.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys)+2)
			help.WriteString(fmt.Sprintf("  %s%s%s\n", keyStyle.Render(e.keys), pad, descStyle.Render(e.desc)))
		}
	}
	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
