// Package strip provides a horizontally scrolling viewport over a row of
// fixed-width cards, with frame-based smooth scrolling.
package strip

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/nikbrunner/carousel/internal/carousel"
)

// settleThreshold is the distance in cells at which an animation snaps to its target.
const settleThreshold = 0.5

// FrameMsg advances the animation of one strip.
type FrameMsg struct {
	Strip string
	Seq   uint64
}

// SettledMsg reports that a strip reached the target of scroll request Seq.
type SettledMsg struct {
	Strip string
	Seq   uint64
}

// Config holds strip geometry and animation settings.
type Config struct {
	CardWidth int
	CardGap   int
	Padding   int // empty columns before the first and after the last card

	FrameInterval time.Duration // 0 = jump without animating
	Speed         float64       // fraction of the remaining distance covered per frame
}

// Strip is the scrollable viewport. Offsets are in terminal cells.
type Strip struct {
	id    string
	count int
	cfg   Config

	width     int
	offset    float64
	target    float64
	seq       uint64
	animating bool
}

// New creates a Strip for count cards. The width stays 0 (unmeasurable)
// until SetWidth is called.
func New(id string, count int, cfg Config) *Strip {
	if cfg.Speed <= 0 || cfg.Speed > 1 {
		cfg.Speed = 1
	}
	return &Strip{
		id:    id,
		count: count,
		cfg:   cfg,
	}
}

// ID returns the strip ID.
func (s *Strip) ID() string {
	return s.id
}

// SetWidth sets the viewport width and re-clamps the scroll position.
func (s *Strip) SetWidth(width int) {
	s.width = max(width, 0)
	s.offset = s.clamp(s.offset)
	s.target = s.clamp(s.target)
}

// Width returns the viewport width.
func (s *Strip) Width() int {
	return s.width
}

// ContentWidth returns the full width of the card row including padding.
func (s *Strip) ContentWidth() int {
	if s.count == 0 {
		return s.cfg.Padding * 2
	}
	return s.cfg.Padding*2 + s.count*s.cfg.CardWidth + (s.count-1)*s.cfg.CardGap
}

// MaxOffset returns the largest valid scroll offset.
func (s *Strip) MaxOffset() float64 {
	return float64(max(s.ContentWidth()-s.width, 0))
}

// Offset returns the current (possibly mid-animation) scroll offset.
func (s *Strip) Offset() float64 {
	return s.offset
}

// Target returns the offset the strip is moving toward.
func (s *Strip) Target() float64 {
	return s.target
}

// Column returns the first visible content column.
func (s *Strip) Column() int {
	return int(math.Round(s.offset))
}

// Animating reports whether a scroll animation is running.
func (s *Strip) Animating() bool {
	return s.animating
}

// Seq returns the sequence number of the latest scroll request.
func (s *Strip) Seq() uint64 {
	return s.seq
}

// CardLeft returns the content column where card i starts.
func (s *Strip) CardLeft(i int) int {
	return s.cfg.Padding + i*(s.cfg.CardWidth+s.cfg.CardGap)
}

// Measure returns the viewport-relative geometry of card i.
// Nothing can be measured before the strip has a width.
func (s *Strip) Measure(i int) (carousel.Geometry, bool) {
	if s.width <= 0 || i < 0 || i >= s.count {
		return carousel.Geometry{}, false
	}
	return carousel.Geometry{
		ContainerLeft:  0,
		ContainerWidth: float64(s.width),
		ItemLeft:       float64(s.CardLeft(i)) - s.offset,
		ItemWidth:      float64(s.cfg.CardWidth),
		ScrollLeft:     s.offset,
	}, true
}

// ScrollTo moves the viewport to offset, clamped to the content.
// Every call supersedes the previous request; its frames become stale.
func (s *Strip) ScrollTo(offset float64, animated bool) tea.Cmd {
	s.seq++
	s.target = s.clamp(offset)

	if !animated || s.cfg.FrameInterval <= 0 || math.Abs(s.target-s.offset) < settleThreshold {
		s.offset = s.target
		s.animating = false
		return s.settled()
	}

	s.animating = true
	return s.frame()
}

// Update advances the animation on this strip's frame messages.
func (s *Strip) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.Strip != s.id || frame.Seq != s.seq || !s.animating {
		return nil
	}

	s.offset = Lerp(s.offset, s.target, s.cfg.Speed)
	if math.Abs(s.target-s.offset) < settleThreshold {
		s.offset = s.target
		s.animating = false
		return s.settled()
	}
	return s.frame()
}

// IsSettled reports whether msg belongs to this strip's latest request and
// the strip is at rest.
func (s *Strip) IsSettled(msg SettledMsg) bool {
	return msg.Strip == s.id && msg.Seq == s.seq && !s.animating
}

// HitTest maps a viewport column to the card under it.
func (s *Strip) HitTest(x int) (int, bool) {
	if x < 0 || x >= s.width || s.count == 0 {
		return 0, false
	}
	contentX := x + s.Column() - s.cfg.Padding
	if contentX < 0 {
		return 0, false
	}
	stride := s.cfg.CardWidth + s.cfg.CardGap
	i := contentX / stride
	if i >= s.count || contentX%stride >= s.cfg.CardWidth {
		return 0, false
	}
	return i, true
}

// Crop cuts every line of a rendered content row down to the visible window.
func (s *Strip) Crop(row string) string {
	left := s.Column()
	right := left + s.width

	lines := strings.Split(row, "\n")
	for i, line := range lines {
		cut := ansi.Cut(line, left, right)
		if pad := s.width - ansi.StringWidth(cut); pad > 0 {
			cut += strings.Repeat(" ", pad)
		}
		lines[i] = cut
	}
	return strings.Join(lines, "\n")
}

func (s *Strip) clamp(offset float64) float64 {
	return math.Max(0, math.Min(offset, s.MaxOffset()))
}

func (s *Strip) frame() tea.Cmd {
	id, seq := s.id, s.seq
	return tea.Tick(s.cfg.FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Strip: id, Seq: seq}
	})
}

func (s *Strip) settled() tea.Cmd {
	id, seq := s.id, s.seq
	return func() tea.Msg {
		return SettledMsg{Strip: id, Seq: seq}
	}
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
