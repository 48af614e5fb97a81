package carousel

import tea "github.com/charmbracelet/bubbletea"

// Geometry is a snapshot of the viewport and one item's box, measured in the
// same coordinate space. It is read fresh for every centering request.
type Geometry struct {
	ContainerLeft  float64
	ContainerWidth float64
	ItemLeft       float64
	ItemWidth      float64
	ScrollLeft     float64 // current scroll offset of the container
}

// GeometryProvider measures the viewport and the rendered box of an item.
// ok is false when the item cannot be measured yet (e.g. not laid out).
type GeometryProvider interface {
	Measure(id string) (g Geometry, ok bool)
}

// GeometryFunc adapts a function to GeometryProvider.
type GeometryFunc func(id string) (Geometry, bool)

// Measure implements GeometryProvider.
func (f GeometryFunc) Measure(id string) (Geometry, bool) {
	return f(id)
}

// Scroller moves the viewport. Out-of-range offsets are clamped by the
// implementation, not by the caller.
type Scroller interface {
	ScrollTo(offset float64, animated bool) tea.Cmd
}

// ComputeCenterOffset returns the scroll offset that puts the item's center
// on the container's center. The result is not clamped.
func ComputeCenterOffset(g Geometry) float64 {
	containerCenter := g.ContainerWidth / 2
	itemCenter := (g.ItemLeft - g.ContainerLeft) + g.ItemWidth/2
	return g.ScrollLeft + itemCenter - containerCenter
}
