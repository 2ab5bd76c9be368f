package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers popup over a dimmed copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := min(lipgloss.Width(styledPopup), max(width-2, 1))
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	return overlayAt(desaturate(mainContent), styledPopup, x, y, width, height)
}

// desaturate strips ANSI styles and redraws every line dim gray
func desaturate(s string) string {
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = gray.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// overlayAt composites overlay on top of base at cell position (x, y)
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(target, x+overlayWidth, "")
		baseLines[row] = left + ansi.Truncate(padRight(line, overlayWidth), max(width-x, 0), "") + right
	}
	return strings.Join(baseLines, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
