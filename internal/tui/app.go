package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/carousel/internal/carousel"
	"github.com/nikbrunner/carousel/internal/config"
	"github.com/nikbrunner/carousel/internal/model"
	"github.com/nikbrunner/carousel/internal/search"
	"github.com/nikbrunner/carousel/internal/tui/layout"
	"github.com/nikbrunner/carousel/internal/tui/strip"
)

// ErrNoCarousels is returned when the library has nothing to show.
var ErrNoCarousels = errors.New("no catalogs to show")

// App is the main bubbletea model: a vertical stack of carousels, one per
// catalog, with keyboard focus on exactly one of them.
type App struct {
	carousels []*Carousel
	focus     int

	cfg          config.Config
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	clipboard    func(string) error

	mode   Mode
	search SearchState

	// Status message shown above the hints until the next key press.
	messageText string
	messageType MessageType

	// Label of the index dot under the pointer.
	hover string

	mounted bool
	width   int
	height  int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Library      *model.Library
	Config       *config.Config       // optional, uses default if nil
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Clipboard    func(string) error   // optional, uses the system clipboard if nil
}

// NewApp creates a new App with the given parameters.
// Every catalog record must be valid; the first invalid one is reported.
func NewApp(params AppParams) (App, error) {
	if params.Library == nil || len(params.Library.Catalogs) == 0 {
		return App{}, ErrNoCarousels
	}

	cfg := config.Default()
	if params.Config != nil {
		cfg = *params.Config
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutCfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutCfg = *params.LayoutConfig
	}

	clip := params.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	carousels := make([]*Carousel, 0, len(params.Library.Catalogs))
	for i, rec := range params.Library.Catalogs {
		c, err := NewCarousel(i, rec, cfg)
		if err != nil {
			return App{}, fmt.Errorf("catalog %d: %w", i, err)
		}
		carousels = append(carousels, c)
	}

	return App{
		carousels:    carousels,
		cfg:          cfg,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutCfg,
		clipboard:    clip,
		mode:         ModeNormal,
		search:       NewSearchState(layoutCfg),
		width:        80,
		height:       24,
	}, nil
}

// WithDimensions returns a copy of the App with the given terminal size,
// without mounting. Intended for tests.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Carousels returns the carousels in display order.
func (a App) Carousels() []*Carousel {
	return a.carousels
}

// Focus returns the index of the focused carousel.
func (a App) Focus() int {
	return a.focus
}

// Focused returns the focused carousel.
func (a App) Focused() *Carousel {
	return a.carousels[a.focus]
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Mounted reports whether the first layout pass has happened.
func (a App) Mounted() bool {
	return a.mounted
}

// Message returns the current status message.
func (a App) Message() (string, MessageType) {
	return a.messageText, a.messageType
}

// Hover returns the label of the index dot under the pointer, if any.
func (a App) Hover() string {
	return a.hover
}

// Search returns the jump overlay state.
func (a App) Search() SearchState {
	return a.search
}

// Init implements tea.Model.
// Carousels mount on the first WindowSizeMsg, when they can be measured.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case carousel.ReleaseMsg, strip.FrameMsg, strip.SettledMsg:
		return a, a.broadcast(msg)
	}

	// Cursor blink and other input internals.
	if a.mode == ModeSearch {
		var cmd tea.Cmd
		a.search.Input, cmd = a.search.Input.Update(msg)
		return a, cmd
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

func (a App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height

	stripWidth := layout.CalculateStripWidth(a.width, a.layoutConfig.Block)

	var cmds []tea.Cmd
	for _, c := range a.carousels {
		cmds = append(cmds, c.Resize(stripWidth))
	}

	if !a.mounted {
		a.mounted = true
		for _, c := range a.carousels {
			cmds = append(cmds, c.Mount())
		}
		log.Printf("mounted %d carousels at %dx%d", len(a.carousels), a.width, a.height)
	}

	return a, tea.Batch(cmds...)
}

// broadcast hands a message to every carousel. Each one ignores messages
// that carry another carousel's ID.
func (a App) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range a.carousels {
		cmds = append(cmds, c.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case ModeSearch:
		return a.handleSearchKey(msg)
	case ModeHelp:
		if key.Matches(msg, a.keys.Help, a.keys.Cancel, a.keys.Quit) {
			a.mode = ModeNormal
		}
		return a, nil
	}

	a.clearMessage()
	focused := a.Focused()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp

	case key.Matches(msg, a.keys.Prev):
		return a, focused.Prev()

	case key.Matches(msg, a.keys.Next):
		return a, focused.Next()

	case key.Matches(msg, a.keys.First):
		return a, focused.First()

	case key.Matches(msg, a.keys.Last):
		return a, focused.Last()

	case key.Matches(msg, a.keys.Up):
		a.setFocus(max(a.focus-1, 0))

	case key.Matches(msg, a.keys.Down):
		a.setFocus(min(a.focus+1, len(a.carousels)-1))

	case key.Matches(msg, a.keys.FocusNext):
		a.setFocus((a.focus + 1) % len(a.carousels))

	case key.Matches(msg, a.keys.FocusPrev):
		a.setFocus((a.focus - 1 + len(a.carousels)) % len(a.carousels))

	case key.Matches(msg, a.keys.Jump):
		a.mode = ModeSearch
		a.search.Reset()
		return a, a.search.Input.Focus()

	case key.Matches(msg, a.keys.Yank):
		a.yankSelected()

	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '9':
		return a, focused.ActivateIndex(int(msg.Runes[0] - '1'))
	}

	return a, nil
}

func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit

	case key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
		a.search.Reset()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		result, ok := a.search.Current()
		a.mode = ModeNormal
		a.search.Reset()
		if !ok {
			return a, nil
		}
		return a, a.Focused().Activate(result.Item.ID)

	case key.Matches(msg, a.keys.ResultUp):
		if a.search.Cursor > 0 {
			a.search.Cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.ResultDown):
		if a.search.Cursor < len(a.search.Results)-1 {
			a.search.Cursor++
		}
		return a, nil
	}

	before := a.search.Input.Value()
	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)

	if query := a.search.Input.Value(); query != before {
		a.search.Results = search.FuzzySearchItems(a.Focused().Catalog(), query)
		a.search.Cursor = 0
	}

	return a, cmd
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.mode != ModeNormal {
		return a, nil
	}

	index, row, col, ok := a.hitCarousel(msg.X, msg.Y)
	if !ok {
		a.hover = ""
		return a, nil
	}
	c := a.carousels[index]

	switch msg.Action {
	case tea.MouseActionMotion:
		a.hover = ""
		if row == a.navRow() {
			if target, i := a.navLayout(c).HitTest(col); target == layout.NavDot {
				a.hover = c.DotLabel(i)
			}
		}
		return a, nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			return a, c.Prev()

		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			return a, c.Next()

		case tea.MouseButtonLeft:
			a.clearMessage()
			a.setFocus(index)
			return a, a.click(c, row, col)
		}
	}

	return a, nil
}

// click handles a left click at block row and strip column col.
func (a App) click(c *Carousel, row, col int) tea.Cmd {
	cardTop := a.layoutConfig.Block.HeaderLines
	cardBottom := cardTop + a.layoutConfig.Block.CardLines + 2

	switch {
	case row >= cardTop && row < cardBottom:
		// Cards do not take clicks while the carousel is centering.
		if c.Busy() {
			return nil
		}
		i, ok := c.Strip().HitTest(col)
		if !ok {
			return nil
		}
		return c.ActivateIndex(i)

	case row == a.navRow():
		target, i := a.navLayout(c).HitTest(col)
		switch target {
		case layout.NavPrev:
			return c.Prev()
		case layout.NavNext:
			return c.Next()
		case layout.NavDot:
			return c.ActivateIndex(i)
		}
	}

	return nil
}

// hitCarousel maps a screen cell to a carousel, a row inside its block and
// a column inside its strip.
func (a App) hitCarousel(x, y int) (index, row, col int, ok bool) {
	rel := y - a.styles.App.GetPaddingTop()
	if rel < 0 {
		return 0, 0, 0, false
	}

	blockHeight := layout.CalculateBlockHeight(a.layoutConfig.Block)
	start, end := a.visibleRange()

	index = start + rel/blockHeight
	if index >= end {
		return 0, 0, 0, false
	}

	return index, rel % blockHeight, x - a.styles.App.GetPaddingLeft(), true
}

// visibleRange returns the carousels that fit on screen, keeping the focused
// one in view.
func (a App) visibleRange() (start, end int) {
	visible := layout.CalculateVisibleBlocks(a.height, a.layoutConfig.Block)
	start = layout.CalculateViewportOffset(a.focus, len(a.carousels), visible)
	end = min(start+visible, len(a.carousels))
	return start, end
}

// navRow is the block row holding the navigation buttons and dots.
func (a App) navRow() int {
	return a.layoutConfig.Block.HeaderLines + a.layoutConfig.Block.CardLines + 2
}

func (a App) navLayout(c *Carousel) layout.NavLayout {
	return layout.CalculateNavLayout(c.Strip().Width(), c.Len())
}

func (a *App) setFocus(index int) {
	if index != a.focus {
		log.Printf("focus %s -> %s", a.carousels[a.focus].ID(), a.carousels[index].ID())
	}
	a.focus = index
}

func (a *App) yankSelected() {
	item := a.Focused().Selected()
	if err := a.clipboard(item.Title); err != nil {
		log.Printf("clipboard: %v", err)
		a.setMessage(MessageError, "Could not copy: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Copied: "+item.Title)
}

func (a *App) setMessage(msgType MessageType, text string) {
	a.messageType = msgType
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageText = ""
	a.messageType = MessageInfo
}
