package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// parseHex parses "#RRGGBB", falling back to fallback (and then to gray).
func parseHex(hex, fallback string) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	if c, err := colorful.Hex(fallback); err == nil {
		return c
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}

// blendColors returns size colors blended between from and to in HCL space.
func blendColors(size int, from, to colorful.Color) []colorful.Color {
	if size < 2 {
		return []colorful.Color{from}
	}

	colors := make([]colorful.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = from.BlendHcl(to, t).Clamped()
	}
	return colors
}

// applyGradient renders text with a horizontal foreground gradient.
func applyGradient(text string, from, to colorful.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex()))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// gradientBar renders a solid bar of width cells fading from the item colour
// into the background.
func gradientBar(width int, color, background colorful.Color) string {
	if width <= 0 {
		return ""
	}
	return applyGradient(strings.Repeat("▀", width), color, color.BlendHcl(background, 0.6).Clamped())
}

// fadeEdges dims the first and last fade columns of a rendered line of the
// given width, blending from background at the edge toward foreground.
// Faded cells lose their original styling.
func fadeEdges(line string, width, fade int, foreground, background colorful.Color) string {
	if fade <= 0 || width < fade*2 {
		return line
	}

	left := ansi.Strip(ansi.Cut(line, 0, fade))
	middle := ansi.Cut(line, fade, width-fade)
	right := ansi.Strip(ansi.Cut(line, width-fade, width))

	weight := func(col int) float64 {
		return float64(col+1) / float64(fade+1)
	}

	var b strings.Builder
	fadeSegment(&b, left, func(col int) colorful.Color {
		return background.BlendHcl(foreground, weight(col)).Clamped()
	})
	b.WriteString(middle)
	fadeSegment(&b, right, func(col int) colorful.Color {
		return background.BlendHcl(foreground, weight(fade-1-col)).Clamped()
	})
	return b.String()
}

// fadeSegment writes plain text with each grapheme coloured by its column.
func fadeSegment(b *strings.Builder, plain string, colorAt func(col int) colorful.Color) {
	col := 0
	gr := uniseg.NewGraphemes(plain)
	for gr.Next() {
		cluster := gr.Str()
		if strings.TrimSpace(cluster) == "" {
			b.WriteString(cluster)
		} else {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAt(col).Hex()))
			b.WriteString(style.Render(cluster))
		}
		col += max(gr.Width(), 1)
	}
}
