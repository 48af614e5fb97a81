package layout

// NavLayout holds the columns of the navigation row under a strip:
// a previous button, one dot per item and a next button.
type NavLayout struct {
	Start   int   // first column of the row
	Prev    int   // column of the previous button
	Dots    []int // column of each dot; nil when Compact
	Next    int   // column of the next button
	Width   int   // total width of the row
	Compact bool  // dots do not fit, a position counter is shown instead
}

// CompactCounterWidth is the space reserved between the buttons in compact mode.
const CompactCounterWidth = 9

// CalculateStripWidth computes the strip viewport width. Returns at least 1.
func CalculateStripWidth(terminalWidth int, cfg BlockConfig) int {
	return max(terminalWidth-cfg.HorizontalPadding, 1)
}

// CalculateBlockHeight computes the height of one carousel block.
// The card row adds two border lines to the card's inner height.
func CalculateBlockHeight(cfg BlockConfig) int {
	return cfg.HeaderLines + cfg.CardLines + 2 + cfg.FooterLines
}

// CalculateVisibleBlocks computes how many carousel blocks fit on screen.
// Returns at least 1.
func CalculateVisibleBlocks(terminalHeight int, cfg BlockConfig) int {
	available := terminalHeight - cfg.TopPadding - cfg.HelpBarLines
	return max(available/CalculateBlockHeight(cfg), 1)
}

// CalculateViewportOffset calculates the offset needed to keep the
// selected entry visible within a viewport of the given size.
func CalculateViewportOffset(selected, total, viewportSize int) int {
	if total <= viewportSize {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportSize/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportSize
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}

// CalculateNavLayout centers the navigation row for count items in width.
// Rendered as "‹ ● ● ● ›"; in compact mode as "‹ " + counter + " ›".
func CalculateNavLayout(width, count int) NavLayout {
	full := 2*count + 3
	if full <= width {
		start := (width - full) / 2
		dots := make([]int, count)
		for i := range dots {
			dots[i] = start + 2 + 2*i
		}
		return NavLayout{
			Start: start,
			Prev:  start,
			Dots:  dots,
			Next:  start + 2 + 2*count,
			Width: full,
		}
	}

	compact := CompactCounterWidth + 4
	start := max((width-compact)/2, 0)
	return NavLayout{
		Start:   start,
		Prev:    start,
		Next:    start + compact - 1,
		Width:   compact,
		Compact: true,
	}
}

// NavTarget is a clickable element of the navigation row.
type NavTarget int

const (
	NavNone NavTarget = iota
	NavPrev
	NavNext
	NavDot
)

// HitTest maps a column of the navigation row to a target.
// index is only meaningful for NavDot.
func (n NavLayout) HitTest(x int) (target NavTarget, index int) {
	switch x {
	case n.Prev:
		return NavPrev, 0
	case n.Next:
		return NavNext, 0
	}
	for i, col := range n.Dots {
		if x == col {
			return NavDot, i
		}
	}
	return NavNone, 0
}
