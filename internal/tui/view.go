package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/carousel/internal/model"
	"github.com/nikbrunner/carousel/internal/tui/layout"
)

// renderView creates the complete carousel stack view.
func (a App) renderView() string {
	switch a.mode {
	case ModeHelp:
		return a.renderHelpOverlay()
	case ModeSearch:
		return a.renderSearchOverlay()
	}

	start, end := a.visibleRange()
	blocks := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		blocks = append(blocks, a.renderBlock(a.carousels[i], i == a.focus))
	}
	blocks = append(blocks, a.renderHelpBar())

	content := a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderBlock renders one carousel: title, details, card row, navigation
// and a spacer. The line count always equals layout.CalculateBlockHeight,
// which mouse hit testing relies on.
func (a App) renderBlock(c *Carousel, focused bool) string {
	width := c.Strip().Width()

	lines := []string{
		a.renderTitleLine(c, focused, width),
		a.renderDetailsLine(c, width),
	}
	lines = append(lines, a.renderStrip(c)...)
	lines = append(lines, a.renderNav(c))

	for len(lines) < layout.CalculateBlockHeight(a.layoutConfig.Block) {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// renderTitleLine renders "▸ Title  3/8  ◌ centering".
func (a App) renderTitleLine(c *Carousel, focused bool, width int) string {
	marker := "  "
	titleStyle := a.styles.Title
	if focused {
		marker = "▸ "
		titleStyle = a.styles.TitleFocused
	}

	line := marker + titleStyle.Render(c.Title()) +
		"  " + a.styles.Counter.Render(fmt.Sprintf("%d/%d", c.SelectedIndex()+1, c.Len()))
	if c.Busy() {
		line += "  " + a.styles.Busy.Render("◌ centering")
	}

	line, _ = layout.TruncateText(line, width, a.layoutConfig.Text)
	return line
}

// renderDetailsLine describes the selected item in full.
func (a App) renderDetailsLine(c *Carousel, width int) string {
	item := c.Selected()
	color := parseHex(item.Color, a.styles.Accent)

	line := lipgloss.NewStyle().Foreground(lipgloss.Color(color.Hex())).Render("●") +
		" " + a.styles.Details.Bold(true).Render(item.Title)
	if item.Subtitle != "" {
		line += a.styles.Subtle.Render(" · " + item.Subtitle)
	}
	if item.Badge != "" {
		line += "  " + a.styles.Badge.Render(item.Badge)
	}

	line, _ = layout.TruncateText(line, width, a.layoutConfig.Text)
	return line
}

// renderStrip renders the full card row, crops it to the strip viewport and
// fades the edges. Cards outside the viewport are left blank.
func (a App) renderStrip(c *Carousel) []string {
	s := c.Strip()
	rows := a.layoutConfig.Block.CardLines + 2
	cardWidth := a.cfg.CardWidth
	blank := strings.Repeat(" ", cardWidth)

	left := s.Column()
	right := left + s.Width()

	items := c.Catalog().Items()
	cards := make([][]string, len(items))
	for i, item := range items {
		if x := s.CardLeft(i); x+cardWidth <= left || x >= right {
			continue
		}
		selected := i == c.SelectedIndex()
		cards[i] = strings.Split(a.renderCard(item, selected, selected && c.Busy()), "\n")
	}

	pad := strings.Repeat(" ", a.cfg.StripPadding)
	gap := strings.Repeat(" ", a.cfg.CardGap)

	lines := make([]string, rows)
	for r := range rows {
		var b strings.Builder
		b.WriteString(pad)
		for i, card := range cards {
			if i > 0 {
				b.WriteString(gap)
			}
			if r < len(card) {
				b.WriteString(card[r])
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteString(pad)
		lines[r] = b.String()
	}

	cropped := strings.Split(s.Crop(strings.Join(lines, "\n")), "\n")

	foreground := parseHex(a.styles.FadeFrom, "#A0A0A0")
	background := parseHex(a.styles.FadeTo, "#1A1A1A")
	for i, line := range cropped {
		cropped[i] = fadeEdges(line, s.Width(), a.cfg.FadeWidth, foreground, background)
	}

	return cropped
}

// renderCard renders one card, exactly cfg.CardWidth cells wide and
// CardLines+2 rows tall.
func (a App) renderCard(item model.Item, selected, busy bool) string {
	style := a.styles.Card
	if selected {
		style = a.styles.CardSelected
	}
	if busy {
		style = a.styles.CardBusy
	}

	width := a.cfg.CardWidth
	inner := max(width-4, 1) // border and horizontal padding

	color := parseHex(item.Color, a.styles.Accent)
	bar := gradientBar(inner, color, parseHex(a.styles.FadeTo, "#1A1A1A"))

	title, _ := layout.TruncateText(item.Title, inner, a.layoutConfig.Text)
	subtitle, _ := layout.TruncateText(item.Subtitle, inner, a.layoutConfig.Text)

	content := strings.Join([]string{
		bar,
		a.styles.CardTitle.Render(title),
		a.styles.Subtle.Render(subtitle),
		a.renderCardFooter(item, selected, inner),
	}, "\n")

	return style.
		Width(width - 2).
		Height(a.layoutConfig.Block.CardLines).
		MaxHeight(a.layoutConfig.Block.CardLines + 2).
		Render(content)
}

// renderCardFooter puts the badge on the left and, on the selected card,
// the "Selected" tag on the right.
func (a App) renderCardFooter(item model.Item, selected bool, width int) string {
	badge, _ := layout.TruncateText(item.Badge, width, a.layoutConfig.Text)
	if !selected {
		return a.styles.Badge.Render(badge)
	}

	tag := a.styles.SelectedTag.Render("Selected")
	tagWidth := layout.VisibleWidth(tag)
	badgeWidth := layout.VisibleWidth(badge)

	if badge == "" || badgeWidth+1+tagWidth > width {
		if tagWidth > width {
			return a.styles.Badge.Render(badge)
		}
		return strings.Repeat(" ", width-tagWidth) + tag
	}

	return a.styles.Badge.Render(badge) + strings.Repeat(" ", width-badgeWidth-tagWidth) + tag
}

// renderNav renders "‹ ● ○ ○ ›" centered under the strip, or "‹  3/40  ›"
// when the dots do not fit.
func (a App) renderNav(c *Carousel) string {
	nav := a.navLayout(c)
	selected := c.SelectedIndex()

	prev := a.styles.ArrowDisabled
	if c.CanPrev() {
		prev = a.styles.Arrow
	}
	next := a.styles.ArrowDisabled
	if c.CanNext() {
		next = a.styles.Arrow
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nav.Start))
	b.WriteString(prev.Render("‹") + " ")

	if nav.Compact {
		counter := fmt.Sprintf("%d/%d", selected+1, c.Len())
		counter, _ = layout.TruncateText(counter, layout.CompactCounterWidth, a.layoutConfig.Text)
		b.WriteString(lipgloss.PlaceHorizontal(layout.CompactCounterWidth, lipgloss.Center, a.styles.Counter.Render(counter)))
		b.WriteString(" ")
	} else {
		for i := range nav.Dots {
			if i == selected {
				b.WriteString(a.styles.DotActive.Render("●"))
			} else {
				b.WriteString(a.styles.Dot.Render("○"))
			}
			b.WriteString(" ")
		}
	}

	b.WriteString(next.Render("›"))
	return b.String()
}

// renderHelpBar renders the message line and the contextual hints.
func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: message, hovered dot label, or an empty gap
	switch {
	case a.messageText != "":
		lines = append(lines, a.renderMessageLine())
	case a.hover != "":
		lines = append(lines, a.styles.Help.Render(a.hover))
	default:
		lines = append(lines, "")
	}

	// Line 2: keyboard hints
	lines = append(lines, a.renderHints(a.getContextualHints()))

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageWarning:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}).
			Bold(true)
		prefix = "⚠ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
		prefix = ""
	}

	return msgStyle.Render(prefix + a.messageText)
}

// renderHelpOverlay renders the key reference in two raw columns.
func (a App) renderHelpOverlay() string {
	modalStyle := lipgloss.NewStyle().
		Padding(1, 2)

	var left strings.Builder
	left.WriteString(a.styles.Title.Render("nav") + "\n")
	left.WriteString("h/l  prev/next\n")
	left.WriteString("g/G  first/last\n")
	left.WriteString("1-9  item by position\n")
	left.WriteString("j/k  carousel\n")
	left.WriteString("tab  cycle carousels\n")

	var right strings.Builder
	right.WriteString(a.styles.Title.Render("act") + "\n")
	right.WriteString("/    jump to item\n")
	right.WriteString("y    yank title\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Title.Render("mouse") + "\n")
	right.WriteString("click card/dot\n")
	right.WriteString("wheel prev/next\n")
	right.WriteString("\n")
	right.WriteString(a.styles.Help.Render("[?/esc] close  [q] quit"))

	leftCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpLeftColumnWidth).Render(left.String())
	rightCol := lipgloss.NewStyle().Width(a.layoutConfig.Modal.HelpRightColumnWidth).Render(right.String())
	cols := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol)

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		modalStyle.Render(cols),
	)
}

// renderSearchOverlay renders the jump-to-item finder for the focused carousel.
func (a App) renderSearchOverlay() string {
	width := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	itemWidth := max(width-2, 1) // inside the horizontal padding

	input := a.search.Input
	input.Width = max(itemWidth-3, 1) // prompt and cursor

	var results strings.Builder
	switch {
	case a.search.Input.Value() == "":
		results.WriteString(a.styles.Subtle.Render("Type to search"))
	case len(a.search.Results) == 0:
		results.WriteString(a.styles.Subtle.Render("No matches"))
	default:
		start, end := layout.CalculateVisibleListItems(a.layoutConfig.Modal.SearchMaxVisible, a.search.Cursor, len(a.search.Results))
		for i := start; i < end; i++ {
			result := a.search.Results[i]
			cursor := "  "
			style := a.styles.Details
			if i == a.search.Cursor {
				cursor = "> "
				style = a.styles.TitleFocused
			}
			line := cursor + style.Render(result.Item.Title)
			if result.Item.Badge != "" {
				line += "  " + a.styles.Badge.Render(result.Item.Badge)
			}
			line, _ = layout.TruncateText(line, itemWidth, a.layoutConfig.Text)
			results.WriteString(line + "\n")
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		a.styles.TitleFocused.Render("Jump")+"  "+a.styles.Subtle.Render(a.Focused().Title()),
		"",
		input.View(),
		"",
		strings.TrimRight(results.String(), "\n"),
		"",
		a.renderHintsInline(a.getContextualHints().All()),
	)

	modal := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(a.styles.Accent)).
		Padding(0, 1).
		Width(width).
		Render(content)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
