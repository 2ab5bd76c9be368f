package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"openprism/internal/widget"
)

const (
	maxCardWidth  = 72
	maxCardHeight = 20
	minCardHeight = 8
)

// Transition describes a page change in progress
type Transition struct {
	From     *widget.CardBuilder
	Forward  bool    // true when the new card comes in from the right
	Progress float64 // 0 shows From, 1 shows the new card
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Screen        string
	Card          *widget.CardBuilder
	Position      int
	Count         int
	Transition    *Transition
	Slider        widget.SliderState
	Now           time.Time
	Toast         *widget.CardBuilder
	Menu          string
	StatusMessage string
	StatusIsError bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	cardRender   *CardRenderer
	sliderRender *SliderRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		cardRender:   NewCardRenderer(styles),
		sliderRender: NewSliderRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// CardSize returns the card box size for a terminal of width x height
func CardSize(width, height int) (int, int) {
	if width <= 0 {
		width = 80 // Default terminal width
	}
	if height <= 0 {
		height = 24
	}
	w := min(max(width-4, 20), maxCardWidth)
	h := min(max(height-6, minCardHeight), maxCardHeight)
	return w, h
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	cw, ch := CardSize(state.Width, state.Height)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}

	content := &strings.Builder{}

	// Title line with the card position on the right
	title := r.styles.Title.Render(state.Screen)
	if state.Count > 0 {
		pos := r.styles.Position.Render(fmt.Sprintf("%d / %d", state.Position+1, state.Count))
		padding := max(cw-lipgloss.Width(title)-lipgloss.Width(pos), 1)
		title = title + strings.Repeat(" ", padding) + pos
	}
	content.WriteString(title)
	content.WriteString("\n")

	if state.Transition != nil {
		content.WriteString(r.renderTransition(state.Transition, state.Card, cw, ch))
	} else {
		content.WriteString(r.cardRender.Render(state.Card, cw, ch))
	}
	content.WriteString("\n")
	content.WriteString(r.sliderRender.Render(state.Slider, cw, state.Now))
	content.WriteString("\n")

	switch {
	case state.StatusMessage != "" && state.StatusIsError:
		content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
	case state.StatusMessage != "":
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}
	content.WriteString("\n")

	if state.Keys != nil {
		content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	frame := lipgloss.NewStyle().Padding(0, 2).MaxHeight(max(state.Height, 1)).Render(content.String())

	// Overlay popups on top of main content
	if state.Menu != "" {
		return r.popupRender.RenderPopupOverlay(frame, state.Menu, state.Height, termWidth, r.styles.Menu)
	}
	if state.Toast != nil {
		toast := r.cardRender.Render(state.Toast, min(cw-8, 56), min(ch-2, 10))
		return r.popupRender.RenderPopupOverlay(frame, toast, state.Height, termWidth, r.styles.Toast)
	}
	return frame
}

// renderTransition draws the outgoing and incoming cards side by side and shows
// the cw-wide window the animation has reached
func (r *Renderer) renderTransition(t *Transition, to *widget.CardBuilder, cw, ch int) string {
	from := r.cardRender.Render(t.From, cw, ch)
	next := r.cardRender.Render(to, cw, ch)

	progress := math.Min(math.Max(t.Progress, 0), 1)
	var strip string
	var offset int
	if t.Forward {
		strip = lipgloss.JoinHorizontal(lipgloss.Top, from, next)
		offset = int(math.Round(progress * float64(cw)))
	} else {
		strip = lipgloss.JoinHorizontal(lipgloss.Top, next, from)
		offset = int(math.Round((1 - progress) * float64(cw)))
	}

	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(ansi.TruncateLeft(line, offset, ""), cw, "")
	}
	return strings.Join(lines, "\n")
}
