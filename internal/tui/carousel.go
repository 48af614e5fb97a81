package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/carousel/internal/carousel"
	"github.com/nikbrunner/carousel/internal/config"
	"github.com/nikbrunner/carousel/internal/model"
	"github.com/nikbrunner/carousel/internal/tui/strip"
)

// Carousel is one on-screen carousel: a catalog, its navigation controller
// and the strip that renders and scrolls it.
type Carousel struct {
	id      string
	record  model.CatalogRecord
	catalog *model.Catalog
	ctrl    *carousel.Controller
	strip   *strip.Strip
}

// NewCarousel builds the carousel for a catalog record. index keeps IDs
// unique when two records share a name.
func NewCarousel(index int, rec model.CatalogRecord, cfg config.Config) (*Carousel, error) {
	catalog, err := rec.Catalog()
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("%d:%s", index, rec.Name)
	c := &Carousel{
		id:      id,
		record:  rec,
		catalog: catalog,
		strip: strip.New(id, catalog.Len(), strip.Config{
			CardWidth:     cfg.CardWidth,
			CardGap:       cfg.CardGap,
			Padding:       cfg.StripPadding,
			FrameInterval: cfg.FrameInterval,
			Speed:         cfg.ScrollSpeed,
		}),
	}

	c.ctrl = carousel.New(carousel.Params{
		ID:              id,
		Catalog:         catalog,
		Geometry:        carousel.GeometryFunc(c.measure),
		Scroller:        c.strip,
		Locking:         rec.ScrollLock,
		LockDuration:    cfg.LockDuration,
		ReleaseOnSettle: cfg.ReleaseOnSettle(),
	})

	return c, nil
}

// measure maps an item ID to its card on the strip.
func (c *Carousel) measure(id string) (carousel.Geometry, bool) {
	return c.strip.Measure(c.catalog.IndexOf(id))
}

func (c *Carousel) ID() string                       { return c.id }
func (c *Carousel) Title() string                    { return c.record.DisplayTitle() }
func (c *Carousel) Catalog() *model.Catalog          { return c.catalog }
func (c *Carousel) Controller() *carousel.Controller { return c.ctrl }
func (c *Carousel) Strip() *strip.Strip              { return c.strip }
func (c *Carousel) Len() int                         { return c.catalog.Len() }
func (c *Carousel) Busy() bool                       { return c.ctrl.IsBusy() }
func (c *Carousel) SelectedIndex() int               { return c.ctrl.SelectedIndex() }

// Selected returns the selected item.
func (c *Carousel) Selected() model.Item {
	item, _ := c.catalog.Item(c.ctrl.CurrentSelection())
	return item
}

// DotLabel returns the label of the index indicator for item i.
func (c *Carousel) DotLabel(i int) string {
	item, ok := c.catalog.At(i)
	if !ok {
		return ""
	}
	return item.Label()
}

// CanPrev reports whether a previous item exists.
func (c *Carousel) CanPrev() bool {
	return c.ctrl.SelectedIndex() > 0
}

// CanNext reports whether a next item exists.
func (c *Carousel) CanNext() bool {
	return c.ctrl.SelectedIndex() < c.catalog.Len()-1
}

// Resize sets the strip width. A mounted carousel is re-centered on its
// selection without animation; the selection and lock are untouched.
func (c *Carousel) Resize(width int) tea.Cmd {
	c.strip.SetWidth(width)
	if !c.ctrl.Mounted() {
		return nil
	}
	g, ok := c.strip.Measure(c.ctrl.SelectedIndex())
	if !ok {
		return nil
	}
	return c.strip.ScrollTo(carousel.ComputeCenterOffset(g), false)
}

// Mount centers the first item. Runs once.
func (c *Carousel) Mount() tea.Cmd {
	return c.ctrl.OnMounted()
}

func (c *Carousel) Activate(id string) tea.Cmd { return c.ctrl.OnItemActivated(id) }
func (c *Carousel) Prev() tea.Cmd              { return c.ctrl.OnPreviousRequested() }
func (c *Carousel) Next() tea.Cmd              { return c.ctrl.OnNextRequested() }
func (c *Carousel) First() tea.Cmd             { return c.Activate(c.catalog.First()) }
func (c *Carousel) Last() tea.Cmd              { return c.Activate(c.catalog.Last()) }

// ActivateIndex activates the item at position i. Out of range is a no-op.
func (c *Carousel) ActivateIndex(i int) tea.Cmd {
	item, ok := c.catalog.At(i)
	if !ok {
		return nil
	}
	return c.Activate(item.ID)
}

// Update routes animation and lock messages. Messages for other carousels
// are ignored by the strip and controller themselves.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case strip.FrameMsg:
		return c.strip.Update(msg)
	case strip.SettledMsg:
		if c.strip.IsSettled(msg) {
			c.ctrl.ScrollSettled()
		}
	case carousel.ReleaseMsg:
		return c.ctrl.Update(msg)
	}
	return nil
}
