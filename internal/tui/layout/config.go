package layout

// LayoutConfig holds all layout-related configuration values.
// Card and strip sizes that users may change live in the config file instead.
type LayoutConfig struct {
	Block BlockConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// BlockConfig describes the vertical layout of one carousel block:
// title line, details line, card row, navigation row and a spacer.
type BlockConfig struct {
	// HeaderLines is the number of lines above the card row (title + details).
	HeaderLines int

	// CardLines is the inner height of a card, excluding its border.
	CardLines int

	// FooterLines is the number of lines below the card row (nav + spacer).
	FooterLines int

	// HorizontalPadding is subtracted from terminal width for the strip.
	// Accounts for app padding: left (2) + right (2) = 4
	HorizontalPadding int

	// TopPadding is the app padding above the first block.
	TopPadding int

	// HelpBarLines is reserved at the bottom for the message and hint lines.
	HelpBarLines int
}

// ModalConfig holds overlay configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the jump overlay width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum overlay width in characters.
	MinWidth int

	// MaxWidth is the maximum overlay width in characters.
	MaxWidth int

	// SearchMaxVisible: max results shown in the jump overlay.
	SearchMaxVisible int

	// HelpLeftColumnWidth: width for help overlay left column.
	HelpLeftColumnWidth int

	// HelpRightColumnWidth: width for help overlay right column.
	HelpRightColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	SearchCharLimit int
	StandardWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Block: BlockConfig{
			HeaderLines:       2,
			CardLines:         4,
			FooterLines:       2,
			HorizontalPadding: 4,
			TopPadding:        1,
			HelpBarLines:      2,
		},
		Modal: ModalConfig{
			DefaultWidthPercent:  50,
			MinWidth:             40,
			MaxWidth:             80,
			SearchMaxVisible:     8,
			HelpLeftColumnWidth:  22,
			HelpRightColumnWidth: 24,
		},
		Input: InputConfig{
			SearchCharLimit: 100,
			StandardWidth:   40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
