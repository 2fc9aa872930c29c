package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/looplist/pkg/animation"
	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 320
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 500
	// FrameDuration is how far the clock advances between pumped frames.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: view kept requesting frames")

// Host is a view the tester can lay out, draw and send pointers to.
type Host interface {
	gestures.PointerHandler
	Measure(constraints layout.Constraints) graphics.Size
	Layout(size graphics.Size)
	Draw(canvas graphics.Canvas)
	SetFrameRequester(fn func())
}

// ViewTester drives a Host frame by frame against a fake clock and a
// recording canvas.
type ViewTester struct {
	host      Host
	clock     *FakeClock
	prevClock animation.Clock
	size      graphics.Size
	canvas    *RecordingCanvas
	pending   bool
	frames    int
	pointers  map[int64]graphics.Offset
	nextID    int64
}

// NewViewTester creates a tester for host and installs its fake clock.
// Call Cleanup when done, or use NewViewTesterWithT instead.
func NewViewTester(host Host) *ViewTester {
	clk := NewFakeClock()
	t := &ViewTester{
		host:     host,
		clock:    clk,
		size:     graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		pointers: make(map[int64]graphics.Offset),
	}
	t.canvas = NewRecordingCanvas(t.size)
	t.prevClock = animation.SetClock(clk)
	host.SetFrameRequester(func() { t.pending = true })
	return t
}

// NewViewTesterWithT creates a tester that cleans up via t.Cleanup().
func NewViewTesterWithT(tb testing.TB, host Host) *ViewTester {
	tester := NewViewTester(host)
	tb.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock.
func (t *ViewTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// SetSize sets the surface size. Call Mount afterwards to apply it.
func (t *ViewTester) SetSize(size graphics.Size) {
	t.size = size
	t.canvas = NewRecordingCanvas(size)
}

// Size returns the surface size.
func (t *ViewTester) Size() graphics.Size {
	return t.size
}

// Clock returns the fake clock.
func (t *ViewTester) Clock() *FakeClock {
	return t.clock
}

// Canvas returns the canvas the last frame was drawn into.
func (t *ViewTester) Canvas() *RecordingCanvas {
	return t.canvas
}

// Mount measures and lays out the host with tight constraints at the
// surface size, then draws one frame.
func (t *ViewTester) Mount() {
	t.host.Measure(layout.Tight(t.size))
	t.host.Layout(t.size)
	t.Pump()
}

// FrameRequested reports whether the host asked for a frame since the
// last Pump.
func (t *ViewTester) FrameRequested() bool {
	return t.pending
}

// Frames returns how many frames have been pumped.
func (t *ViewTester) Frames() int {
	return t.frames
}

// Pump draws a single frame at the current clock time.
func (t *ViewTester) Pump() {
	t.pending = false
	t.canvas.Reset()
	t.host.Draw(t.canvas)
	t.frames++
}

// PumpFor advances the clock by d in FrameDuration steps, drawing a frame
// after each step whether or not one was requested.
func (t *ViewTester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		t.clock.Advance(FrameDuration)
		t.Pump()
	}
}

// PumpAndSettle pumps frames until the host stops requesting them or the
// timeout is reached. Each frame advances the fake clock by FrameDuration.
func (t *ViewTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.pending {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
