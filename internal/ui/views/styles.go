package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Position    lipgloss.Style
	Card        lipgloss.Style
	CardText    lipgloss.Style
	CardLarge   lipgloss.Style
	Heading     lipgloss.Style
	Subheading  lipgloss.Style
	Footnote    lipgloss.Style
	Timestamp   lipgloss.Style
	Icon        lipgloss.Style
	Image       lipgloss.Style
	Stack       lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	SliderFill  lipgloss.Style
	SliderTrack lipgloss.Style
	Toast       lipgloss.Style
	Menu        lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Dim         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Position: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		CardText:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CardLarge:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Subheading: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Footnote:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Timestamp:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Icon:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Image: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Background(lipgloss.Color("236")),
		Stack:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		TableCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		SliderFill:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		SliderTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("78")).
			Padding(0, 1),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Dim:         lipgloss.NewStyle().Faint(true),
	}
}
