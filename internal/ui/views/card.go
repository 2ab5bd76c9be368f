package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"openprism/internal/widget"
)

// shortText is the length up to which dynamically sized text is drawn large
const shortText = 48

// CardRenderer draws a CardBuilder in a terminal cell grid
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// Render draws card in a width x height box. A nil card draws an empty box.
func (r *CardRenderer) Render(card *widget.CardBuilder, width, height int) string {
	box := r.styles.Card.Width(max(width-2, 1)).Height(max(height-2, 1)).MaxHeight(height)
	if card == nil {
		return box.Render("")
	}

	w := max(width-6, 8)
	h := max(height-4, 3)

	var body string
	switch card.Layout() {
	case widget.LayoutText, widget.LayoutTextFixed:
		body = r.text(card, w, h)
	case widget.LayoutColumns, widget.LayoutColumnsFixed:
		body = r.columns(card, w, h)
	case widget.LayoutCaption:
		body = r.caption(card, w, h)
	case widget.LayoutTitle:
		body = r.title(card, w, h)
	case widget.LayoutAuthor:
		body = r.author(card, w, h)
	case widget.LayoutMenu, widget.LayoutAlert:
		body = r.centered(card, w, h)
	case widget.LayoutEmbedInside:
		body = r.embed(card, w, h)
	default:
		body = r.styles.CardText.Width(w).Render(card.Text())
	}
	return box.Render(body)
}

func (r *CardRenderer) text(card *widget.CardBuilder, w, h int) string {
	var parts []string
	if images := card.Images(); len(images) > 0 {
		parts = append(parts, r.mosaic(images, w))
	}
	parts = append(parts, r.message(card, w))
	return r.withFooter(card, strings.Join(parts, "\n\n"), w, h)
}

func (r *CardRenderer) columns(card *widget.CardBuilder, w, h int) string {
	leftWidth := w / 3
	var left string
	if icon := card.Icon(); icon != "" {
		left = lipgloss.Place(leftWidth, h-1, lipgloss.Center, lipgloss.Center, r.styles.Icon.Render("("+icon+")"))
	} else {
		left = lipgloss.Place(leftWidth, h-1, lipgloss.Left, lipgloss.Top, r.mosaic(card.Images(), leftWidth))
	}
	right := r.message(card, w-leftWidth-2)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return r.withFooter(card, content, w, h)
}

func (r *CardRenderer) caption(card *widget.CardBuilder, w, h int) string {
	band := r.band(card.Images(), w, max(h/2, 1))
	line := r.styles.CardText.Width(w).Render(card.Text())
	if icon := card.Icon(); icon != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, r.styles.Icon.Render("("+icon+") "), r.styles.CardText.Render(card.Text()))
	}
	return r.withFooter(card, band+"\n"+line, w, h)
}

func (r *CardRenderer) title(card *widget.CardBuilder, w, h int) string {
	band := r.band(card.Images(), w, max(h-3, 1))
	title := r.styles.CardLarge.Render(card.Text())
	if icon := card.Icon(); icon != "" {
		title = r.styles.Icon.Render("("+icon+") ") + title
	}
	return band + "\n\n" + lipgloss.PlaceHorizontal(w, lipgloss.Center, title)
}

func (r *CardRenderer) author(card *widget.CardBuilder, w, h int) string {
	head := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Heading.Render(card.Heading()),
		r.styles.Subheading.Render(card.Subheading()),
	)
	if icon := card.Icon(); icon != "" {
		head = lipgloss.JoinHorizontal(lipgloss.Top, r.styles.Icon.Render("("+icon+")"), "  ", head)
	}
	content := head + "\n\n" + r.styles.CardText.Width(w).Render(card.Text())
	return r.withFooter(card, content, w, h)
}

// centered draws the MENU and ALERT layouts: an icon over one line of text
func (r *CardRenderer) centered(card *widget.CardBuilder, w, h int) string {
	var lines []string
	if icon := card.Icon(); icon != "" {
		lines = append(lines, r.styles.Icon.Render("("+icon+")"), "")
	}
	lines = append(lines, r.styles.CardLarge.Render(card.Text()))
	if fn := card.Footnote(); fn != "" {
		lines = append(lines, r.styles.Footnote.Render(fn))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

func (r *CardRenderer) embed(card *widget.CardBuilder, w, h int) string {
	embedded, ok := card.EmbeddedContent()
	if !ok {
		return r.withFooter(card, r.styles.Dim.Render("(no content)"), w, h)
	}

	header, cell := r.styles.TableHeader, r.styles.TableCell
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Dim).
		Headers(embedded.Headers...).
		Rows(embedded.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Width(w)
	return r.withFooter(card, t.String(), w, h)
}

// message draws the main text, large when a dynamic layout has little to say
func (r *CardRenderer) message(card *widget.CardBuilder, w int) string {
	style := r.styles.CardText
	switch card.Layout() {
	case widget.LayoutText, widget.LayoutColumns:
		if len(card.Text()) <= shortText {
			style = r.styles.CardLarge
		}
	}
	return style.Width(max(w, 1)).Render(card.Text())
}

// mosaic lays image placeholders out in rows that fit w
func (r *CardRenderer) mosaic(images []string, w int) string {
	var (
		rows []string
		row  []string
		used int
	)
	for _, img := range images {
		tile := r.styles.Image.Render(" " + img + " ")
		tw := lipgloss.Width(tile)
		if used > 0 && used+1+tw > w {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		row = append(row, tile)
		used += tw + 1
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

// band fills a block with the background images
func (r *CardRenderer) band(images []string, w, h int) string {
	label := strings.Join(images, " · ")
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
		r.styles.Image.Render(ansi.Truncate(label, w, "…")),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("236")))
}

// withFooter pins the footer line to the bottom of a w x h body
func (r *CardRenderer) withFooter(card *widget.CardBuilder, content string, w, h int) string {
	if card.StackIndicatorShown() {
		content = lipgloss.PlaceHorizontal(w, lipgloss.Right, r.styles.Stack.Render("◥")) + "\n" + content
	}
	footer := r.footer(card, w)
	if footer == "" {
		return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, content)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(w, max(h-1, 1), lipgloss.Left, lipgloss.Top, content),
		footer,
	)
}

func (r *CardRenderer) footer(card *widget.CardBuilder, w int) string {
	left := r.styles.Footnote.Render(card.Footnote())
	var right []string
	if ts := card.Timestamp(); ts != "" {
		right = append(right, r.styles.Timestamp.Render(ts))
	}
	if icon := card.AttributionIcon(); icon != "" {
		right = append(right, r.styles.Icon.Render("("+icon+")"))
	}
	rightText := strings.Join(right, " ")
	if card.Footnote() == "" && rightText == "" {
		return ""
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(rightText)
	if gap < 1 {
		left = ansi.Truncate(left, max(w-lipgloss.Width(rightText)-2, 0), "…")
		gap = max(w-lipgloss.Width(left)-lipgloss.Width(rightText), 1)
	}
	return left + strings.Repeat(" ", gap) + rightText
}
