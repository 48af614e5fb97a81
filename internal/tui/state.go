package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/nikbrunner/carousel/internal/search"
	"github.com/nikbrunner/carousel/internal/tui/layout"
)

// Mode is the current input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch      // jump-to-item overlay
	ModeHelp
)

// MessageType determines the styling of status messages.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// SearchState holds state for the jump-to-item overlay.
type SearchState struct {
	Input   textinput.Model
	Results []search.SearchResult
	Cursor  int
}

// NewSearchState creates a new SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Jump to..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.StandardWidth

	return SearchState{
		Input: input,
	}
}

// Reset clears the search state for a new session.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Input.Blur()
	s.Results = nil
	s.Cursor = 0
}

// Current returns the highlighted result.
func (s *SearchState) Current() (search.SearchResult, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return search.SearchResult{}, false
	}
	return s.Results[s.Cursor], true
}
