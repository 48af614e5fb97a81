package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Title        lipgloss.Style // carousel title
	TitleFocused lipgloss.Style
	Counter      lipgloss.Style // "3/8" next to the title
	Busy         lipgloss.Style // shown while the scroll lock is held
	Details      lipgloss.Style
	Subtle       lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardBusy     lipgloss.Style // selected card while the lock is held
	CardTitle    lipgloss.Style
	Badge        lipgloss.Style
	SelectedTag  lipgloss.Style

	Dot           lipgloss.Style
	DotActive     lipgloss.Style
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style

	Help      lipgloss.Style
	HintKey   lipgloss.Style // Key portion of hints (e.g., "h/l")
	HintDesc  lipgloss.Style // Description portion of hints (e.g., "move")
	HintLabel lipgloss.Style

	// Fade mask endpoints, "#RRGGBB". Edge columns blend from FadeTo toward FadeFrom.
	FadeFrom string
	FadeTo   string

	// Accent is the fallback colour for items without their own, "#RRGGBB".
	Accent string
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // inactive borders
	warn := lipgloss.AdaptiveColor{Light: "#CC8800", Dark: "#FFAA00"}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Foreground(primary),

		TitleFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Counter: lipgloss.NewStyle().
			Foreground(subtle),

		Busy: lipgloss.NewStyle().
			Foreground(warn),

		Details: lipgloss.NewStyle().
			Foreground(primary),

		Subtle: lipgloss.NewStyle().
			Foreground(subtle),

		Card: card,

		CardSelected: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent),

		CardBusy: card.
			Border(lipgloss.ThickBorder()).
			BorderForeground(warn),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Badge: lipgloss.NewStyle().
			Foreground(accent),

		SelectedTag: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Dot: lipgloss.NewStyle().
			Foreground(subtle),

		DotActive: lipgloss.NewStyle().
			Foreground(accent),

		Arrow: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		ArrowDisabled: lipgloss.NewStyle().
			Foreground(border),

		Help: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		HintLabel: lipgloss.NewStyle().
			Foreground(subtle),

		FadeFrom: "#A0A0A0",
		FadeTo:   "#1A1A1A",
		Accent:   "#5F8787",
	}
}
