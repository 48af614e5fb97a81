// Package carousel implements the selection and centering controller for a
// horizontally scrolling row of items.
//
// The controller owns the selected item and the scroll lock. Layout and the
// scroll animation belong to the host, reached through GeometryProvider and
// Scroller. Every input is a no-op rather than an error when it cannot apply.
package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikbrunner/carousel/internal/model"
)

// DefaultLockDuration is how long the lock is held after a centering request
// when no completion signal arrives first.
const DefaultLockDuration = 500 * time.Millisecond

// ReleaseMsg is delivered when a lock release timer fires.
type ReleaseMsg struct {
	Carousel   string
	Generation uint64
}

// Params holds parameters for creating a new Controller.
type Params struct {
	ID       string // routes ReleaseMsg; must be unique per program
	Catalog  *model.Catalog
	Geometry GeometryProvider
	Scroller Scroller

	// Locking engages the scroll lock on every centering request.
	Locking bool

	// LockDuration overrides DefaultLockDuration when non-zero.
	LockDuration time.Duration

	// ReleaseOnSettle lets ScrollSettled clear the lock before the timer.
	ReleaseOnSettle bool
}

// Controller is the navigation state machine for one carousel.
type Controller struct {
	id       string
	catalog  *model.Catalog
	geometry GeometryProvider
	scroller Scroller

	selection Selection
	lock      Lock

	locking         bool
	lockDuration    time.Duration
	releaseOnSettle bool
	mounted         bool

	// settleGen is the lock generation whose scroll is in flight. Zero when the
	// latest centering request issued no scroll.
	settleGen uint64
}

// New creates a Controller with the selection on the catalog's first item.
func New(params Params) *Controller {
	duration := params.LockDuration
	if duration <= 0 {
		duration = DefaultLockDuration
	}

	return &Controller{
		id:              params.ID,
		catalog:         params.Catalog,
		geometry:        params.Geometry,
		scroller:        params.Scroller,
		selection:       NewSelection(params.Catalog),
		locking:         params.Locking,
		lockDuration:    duration,
		releaseOnSettle: params.ReleaseOnSettle,
	}
}

// ID returns the controller ID.
func (c *Controller) ID() string {
	return c.id
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() *model.Catalog {
	return c.catalog
}

// CurrentSelection returns the selected item ID.
func (c *Controller) CurrentSelection() string {
	return c.selection.Current()
}

// SelectedIndex returns the position of the selected item.
func (c *Controller) SelectedIndex() int {
	return c.selection.Index()
}

// IsBusy reports whether a centering animation is presumed in flight.
func (c *Controller) IsBusy() bool {
	return c.lock.IsLocked()
}

// Mounted reports whether OnMounted has run.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// OnItemActivated selects id and centers it. Re-activating the current item
// and unknown ids are no-ops.
func (c *Controller) OnItemActivated(id string) tea.Cmd {
	if id == c.selection.Current() {
		return nil
	}
	if !c.selection.Select(id) {
		return nil
	}
	return c.center(id)
}

// OnPreviousRequested moves to the previous item. No-op on the first item.
func (c *Controller) OnPreviousRequested() tea.Cmd {
	return c.OnItemActivated(c.catalog.Previous(c.selection.Current()))
}

// OnNextRequested moves to the next item. No-op on the last item.
func (c *Controller) OnNextRequested() tea.Cmd {
	return c.OnItemActivated(c.catalog.Next(c.selection.Current()))
}

// OnMounted centers the first item once layout can be measured.
// It runs once per controller; later calls do nothing.
func (c *Controller) OnMounted() tea.Cmd {
	if c.mounted {
		return nil
	}
	c.mounted = true

	first := c.catalog.First()
	c.selection.Select(first)
	return c.center(first)
}

// ScrollSettled is the completion signal from the scroller: the viewport has
// reached its latest target. It clears the lock when ReleaseOnSettle is set
// and the current lock generation issued that scroll.
func (c *Controller) ScrollSettled() {
	if !c.releaseOnSettle || c.settleGen == 0 {
		return
	}
	c.lock.Release(c.settleGen)
	c.settleGen = 0
}

// Update handles the controller's own messages and returns follow-up commands.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReleaseMsg:
		if msg.Carousel == c.id {
			c.lock.Release(msg.Generation)
		}
	}
	return nil
}

// center engages the lock, measures the item and requests the animated
// scroll. Without geometry the scroll is skipped; the lock still runs out on
// its timer and the next selection measures again.
func (c *Controller) center(id string) tea.Cmd {
	var cmds []tea.Cmd
	var generation uint64
	if c.locking {
		generation = c.lock.Engage()
		cmds = append(cmds, c.releaseAfter(generation))
	}

	c.settleGen = 0
	g, ok := c.geometry.Measure(id)
	if ok {
		offset := ComputeCenterOffset(g)
		cmds = append(cmds, c.scroller.ScrollTo(offset, true))
		c.settleGen = generation
	}

	return tea.Batch(cmds...)
}

func (c *Controller) releaseAfter(generation uint64) tea.Cmd {
	id := c.id
	return tea.Tick(c.lockDuration, func(time.Time) tea.Msg {
		return ReleaseMsg{Carousel: id, Generation: generation}
	})
}
