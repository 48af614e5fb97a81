package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/carousel/internal/model"
	"github.com/nikbrunner/carousel/internal/search"
	"github.com/nikbrunner/carousel/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F8787")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Underline(true)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5F8787")).
			Bold(true).
			MarginBottom(1)
)

// Rendered height of one result, and of the header and footer together.
const (
	linesPerResult = 2
	chromeLines    = 5
)

// Picker is a simple TUI for selecting one item from search results.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given search results.
func New(results []search.SearchResult, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.results) == 0 {
				p.cancelled = true
			} else {
				p.selected = true
			}
			return p, tea.Quit

		case tea.KeyDown:
			p.moveDown()
			return p, nil

		case tea.KeyUp:
			p.moveUp()
			return p, nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				p.moveDown()
			case "k":
				p.moveUp()
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

func (p *Picker) moveDown() {
	if p.cursor < len(p.results)-1 {
		p.cursor++
	}
}

func (p *Picker) moveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Pick: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	maxVisible := max((p.height-chromeLines)/linesPerResult, 1)
	start, end := layout.CalculateVisibleListItems(maxVisible, p.cursor, len(p.results))

	for i := start; i < end; i++ {
		result := p.results[i]
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := highlight(result.Item.Title, result.MatchedIndexes, style)
		detail := result.Catalog
		if result.Item.Subtitle != "" {
			detail += " · " + result.Item.Subtitle
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, title))
		b.WriteString(fmt.Sprintf("   %s\n", detailStyle.Render(detail)))
	}

	b.WriteString("\n")
	b.WriteString(detailStyle.Render("j/k: move  Enter: pick  q/Esc: cancel"))

	return b.String()
}

// highlight renders s with the fuzzy-matched runes underlined.
func highlight(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if hit[i] {
			b.WriteString(matchStyle.Inherit(base).Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Selected returns the picked result, or false if cancelled.
func (p Picker) Selected() (search.SearchResult, bool) {
	if p.cancelled || !p.selected || p.cursor >= len(p.results) {
		return search.SearchResult{}, false
	}
	return p.results[p.cursor], true
}

// SelectedItem returns the picked item, or nil if cancelled.
func (p Picker) SelectedItem() *model.Item {
	result, ok := p.Selected()
	if !ok {
		return nil
	}
	return &result.Item
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
