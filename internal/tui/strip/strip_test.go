package strip

import (
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/carousel/internal/carousel"
)

func testConfig() Config {
	return Config{
		CardWidth:     10,
		CardGap:       2,
		Padding:       4,
		FrameInterval: time.Millisecond,
		Speed:         0.5,
	}
}

func TestStrip_ContentAndMaxOffset(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		width       int
		wantContent int
		wantMax     float64
	}{
		{"five cards narrow view", 5, 30, 66, 36}, // 4*2 + 5*10 + 4*2
		{"content fits", 2, 40, 30, 0},
		{"single card", 1, 10, 18, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("s", tt.count, testConfig())
			s.SetWidth(tt.width)
			assert.Equal(t, s.ContentWidth(), tt.wantContent)
			assert.Equal(t, s.MaxOffset(), tt.wantMax)
		})
	}
}

func TestStrip_MeasureRequiresWidth(t *testing.T) {
	s := New("s", 3, testConfig())

	_, ok := s.Measure(0)
	assert.Assert(t, !ok, "unsized strip must not be measurable")

	s.SetWidth(30)
	g, ok := s.Measure(1)
	assert.Assert(t, ok)
	assert.DeepEqual(t, g, carousel.Geometry{
		ContainerWidth: 30,
		ItemLeft:       16,
		ItemWidth:      10,
	})

	_, ok = s.Measure(3)
	assert.Assert(t, !ok)
	_, ok = s.Measure(-1)
	assert.Assert(t, !ok)
}

func TestStrip_MeasureFollowsScroll(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)
	s.ScrollTo(12, false)

	g, ok := s.Measure(2)
	assert.Assert(t, ok)
	assert.Equal(t, g.ScrollLeft, float64(12))
	assert.Equal(t, g.ItemLeft, float64(28-12))

	// Centering card 2 from a scrolled position lands on the same offset as from 0.
	assert.Equal(t, carousel.ComputeCenterOffset(g), float64(18)) // 12 + 16 + 5 - 15
}

func TestStrip_ScrollToClamps(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)

	s.ScrollTo(-25, false)
	assert.Equal(t, s.Offset(), float64(0))

	s.ScrollTo(1000, false)
	assert.Equal(t, s.Offset(), s.MaxOffset())
}

func TestStrip_ImmediateScrollSettles(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)

	cmd := s.ScrollTo(10, false)
	assert.Assert(t, cmd != nil)
	assert.Assert(t, !s.Animating())

	msg, ok := cmd().(SettledMsg)
	assert.Assert(t, ok)
	assert.Assert(t, s.IsSettled(msg))
}

func TestStrip_AnimationConverges(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)

	cmd := s.ScrollTo(20, true)
	assert.Assert(t, s.Animating())
	assert.Equal(t, s.Offset(), float64(0))

	var settled SettledMsg
	for i := 0; i < 50 && cmd != nil; i++ {
		switch msg := cmd().(type) {
		case FrameMsg:
			cmd = s.Update(msg)
		case SettledMsg:
			settled = msg
			cmd = nil
		}
	}

	assert.Assert(t, !s.Animating())
	assert.Equal(t, s.Offset(), float64(20))
	assert.Assert(t, s.IsSettled(settled))
}

func TestStrip_NewRequestSupersedesFrames(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)

	first := s.ScrollTo(30, true)
	staleFrame := first().(FrameMsg)

	s.ScrollTo(6, true)
	offsetBefore := s.Offset()

	assert.Assert(t, s.Update(staleFrame) == nil, "stale frame must be dropped")
	assert.Equal(t, s.Offset(), offsetBefore)
	assert.Equal(t, s.Target(), float64(6))

	stale := SettledMsg{Strip: "s", Seq: staleFrame.Seq}
	assert.Assert(t, !s.IsSettled(stale))
}

func TestStrip_IgnoresOtherStrips(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)
	s.ScrollTo(20, true)

	cmd := s.Update(FrameMsg{Strip: "other", Seq: s.Seq()})

	assert.Assert(t, cmd == nil)
	assert.Equal(t, s.Offset(), float64(0))
}

func TestStrip_HitTest(t *testing.T) {
	s := New("s", 5, testConfig())
	s.SetWidth(30)

	tests := []struct {
		name      string
		offset    float64
		x         int
		wantIndex int
		wantOK    bool
	}{
		{"padding", 0, 2, 0, false},
		{"first card start", 0, 4, 0, true},
		{"first card end", 0, 13, 0, true},
		{"gap", 0, 14, 0, false},
		{"second card", 0, 16, 1, true},
		{"scrolled onto third card", 12, 16, 2, true},
		{"outside viewport", 0, 30, 0, false},
		{"negative", 0, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.ScrollTo(tt.offset, false)
			got, ok := s.HitTest(tt.x)
			assert.Equal(t, ok, tt.wantOK)
			if tt.wantOK {
				assert.Equal(t, got, tt.wantIndex)
			}
		})
	}
}

func TestStrip_Crop(t *testing.T) {
	s := New("s", 2, Config{CardWidth: 4, CardGap: 1, Padding: 1})
	s.SetWidth(5)

	row := " AAAA BBBB \n aaaa bbbb "
	s.ScrollTo(3, false)

	got := s.Crop(row)
	assert.Equal(t, got, "AA BB\naa bb")

	s.SetWidth(20)
	padded := s.Crop(row)
	for _, line := range strings.Split(padded, "\n") {
		assert.Equal(t, len(line), 20)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Lerp(0, 10, 0.5), float64(5))
	assert.Equal(t, Lerp(10, 0, 0.25), 7.5)
	assert.Equal(t, Lerp(3, 3, 0.9), float64(3))
}
