package loop

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/go-drift/looplist/pkg/animation"
	"github.com/go-drift/looplist/pkg/errors"
	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
	"github.com/go-drift/looplist/pkg/recycle"
)

// child is one realized slot in the window.
type child struct {
	handle recycle.Handle
	el     Element
	index  int
	bounds graphics.Rect
}

// state is the mutable bookkeeping the view carries between callbacks.
type state struct {
	// measure is the constraint received by the last Measure call.
	measure  layout.Constraints
	measured bool
	// flinging is set when a fling starts and cleared when it is cancelled
	// or when the snap that follows it has been started.
	flinging bool
}

// Child describes a realized child for inspection. Bounds are in content
// space; subtract ScrollOffset for viewport coordinates.
type Child struct {
	Element Element
	Index   int
	Bounds  graphics.Rect
}

// View is a looping vertical list.
type View struct {
	// OnItemClick is called when a tap is confirmed on a child.
	OnItemClick func(ItemClick)

	adapter  Adapter
	options  Options
	animator Animator
	detector *gestures.Detector
	pool     *recycle.Pool[Element]
	logger   zerolog.Logger

	window []child
	first  int
	last   int
	offset float64
	size   graphics.Size
	state  state

	requestFrame func()
}

// NewView returns a View with no adapter. Start from DefaultOptions and
// override fields as needed.
func NewView(options Options) *View {
	v := &View{
		options:  options.normalized(),
		animator: animation.NewScroller(),
		pool:     recycle.NewPool[Element](),
		logger:   zerolog.Nop(),
		first:    InvalidPosition,
		last:     InvalidPosition,
	}
	v.detector = v.newDetector()
	return v
}

// Options returns the view's configuration.
func (v *View) Options() Options {
	return v.options
}

// SetLogger installs a logger for realize, recycle and snap debug events.
func (v *View) SetLogger(logger zerolog.Logger) {
	v.logger = logger
}

// SetAnimator replaces the scroll animator. The current trajectory, if
// any, is abandoned.
func (v *View) SetAnimator(a Animator) {
	if a == nil {
		a = animation.NewScroller()
	}
	v.animator.ForceFinish()
	v.animator = a
	v.state.flinging = false
}

// SetFrameRequester installs the function the view calls when it needs
// another Draw.
func (v *View) SetFrameRequester(fn func()) {
	v.requestFrame = fn
}

// Adapter returns the current adapter.
func (v *View) Adapter() Adapter {
	return v.adapter
}

// SetAdapter replaces the adapter. Realized children and the recycle pool
// are discarded and the next layout centers item 0 again.
func (v *View) SetAdapter(adapter Adapter) {
	v.adapter = adapter
	v.animator.ForceFinish()
	v.window = nil
	v.pool = recycle.NewPool[Element]()
	v.first = InvalidPosition
	v.last = InvalidPosition
	v.offset = 0
	v.state.flinging = false
	if !v.size.IsEmpty() {
		v.layoutChildren()
	}
}

// NotifyDataSetChanged rebinds every realized child after the adapter's
// data changed. The top child keeps its position; its index is wrapped
// into the new item count.
func (v *View) NotifyDataSetChanged() {
	if len(v.window) == 0 || v.adapter == nil {
		v.layoutChildren()
		return
	}
	top := v.window[0].bounds.Top
	anchor := v.first
	v.recycleAll()
	n := v.adapter.ItemCount()
	if n <= 0 {
		return
	}
	c, ok := v.realize(Wrap(anchor, n), top, true)
	if !ok {
		return
	}
	v.window = append(v.window, c)
	v.first, v.last = c.index, c.index
	v.layoutChildren()
}

// SetSelection is not supported by a looping list.
func (v *View) SetSelection(int) error {
	return errors.New("loop.SetSelection", errors.KindUnsupported, errors.ErrUnsupported)
}

// SelectedElement is not supported by a looping list.
func (v *View) SelectedElement() (Element, error) {
	return nil, errors.New("loop.SelectedElement", errors.KindUnsupported, errors.ErrUnsupported)
}

// Measure records the width constraint children are measured against and
// returns the view's size: the maximum on a bounded axis, the minimum on an
// unbounded one.
func (v *View) Measure(constraints layout.Constraints) graphics.Size {
	v.state.measure = constraints
	v.state.measured = true
	return constraints.Biggest()
}

// Layout sets the viewport size and brings the window up to date.
func (v *View) Layout(size graphics.Size) {
	v.size = size
	if !v.state.measured {
		v.state.measure = layout.Tight(size)
		v.state.measured = true
	}
	v.layoutChildren()
}

// Size returns the size passed to the last Layout.
func (v *View) Size() graphics.Size {
	return v.size
}

// ScrollOffset returns the content-space offset of the viewport top.
func (v *View) ScrollOffset() float64 {
	return v.offset
}

// ScrollTo moves the viewport top to offset and updates the window.
func (v *View) ScrollTo(offset float64) {
	if offset == v.offset {
		return
	}
	v.offset = offset
	v.layoutChildren()
}

// ScrollBy moves the viewport by delta.
func (v *View) ScrollBy(delta float64) {
	v.ScrollTo(v.offset + delta)
}

// FirstVisiblePosition returns the data index of the top realized child.
func (v *View) FirstVisiblePosition() int {
	return v.first
}

// LastVisiblePosition returns the data index of the bottom realized child.
func (v *View) LastVisiblePosition() int {
	return v.last
}

// Children returns the realized children from top to bottom.
func (v *View) Children() []Child {
	out := make([]Child, len(v.window))
	for i, c := range v.window {
		out[i] = Child{Element: c.el, Index: c.index, Bounds: c.bounds}
	}
	return out
}

// ChildCount returns the number of realized children.
func (v *View) ChildCount() int {
	return len(v.window)
}

// RecycledCount returns the number of pooled elements awaiting reuse.
func (v *View) RecycledCount() int {
	return v.pool.Free()
}

// IsAnimating reports whether a fling or snap is running.
func (v *View) IsAnimating() bool {
	return !v.animator.IsFinished()
}

// Tick advances animations and pending tap confirmation to the current
// clock time. Draw calls it; headless hosts call it directly.
func (v *View) Tick() {
	if v.detector.Poll(animation.Now()) {
		v.scheduleFrame()
	}
	v.computeScroll()
}

// Draw advances the view by one frame and paints every visible child that
// implements layout.Painter, clipped to the viewport.
func (v *View) Draw(canvas graphics.Canvas) {
	v.Tick()
	canvas.Save()
	defer canvas.Restore()
	canvas.ClipRect(graphics.RectFromLTWH(0, 0, v.size.Width, v.size.Height))
	canvas.Translate(0, -v.offset)
	for _, c := range v.window {
		if !layout.IsVisible(c.el) {
			continue
		}
		if p, ok := c.el.(layout.Painter); ok {
			p.Paint(canvas, c.bounds)
		}
	}
}

func (v *View) computeScroll() {
	offset, running := v.animator.ComputeOffset()
	if running {
		v.ScrollTo(offset)
		v.scheduleFrame()
		return
	}
	if v.animator.IsFinished() && v.state.flinging {
		v.state.flinging = false
		v.snap()
	}
}

// snap starts a timed scroll that centers the child straddling the
// viewport center. Nothing happens when no child straddles it.
func (v *View) snap() {
	i := v.centerIndex()
	if i < 0 {
		return
	}
	c := v.window[i]
	delta := c.bounds.Center().Y - (v.offset + v.size.Height/2)
	v.logger.Debug().
		Int("index", c.index).
		Float64("offset", v.offset).
		Float64("delta", delta).
		Msg("snap")
	v.animator.StartScroll(v.offset, delta, v.options.SnapDuration)
	v.scheduleFrame()
}

// centerIndex returns the window slot of the first child whose bounds
// include the viewport center line, or -1.
func (v *View) centerIndex() int {
	center := v.offset + v.size.Height/2
	for i, c := range v.window {
		if c.bounds.Top <= center && c.bounds.Bottom >= center {
			return i
		}
	}
	return -1
}

// CenterChild returns the child the next snap would center.
func (v *View) CenterChild() (Child, bool) {
	i := v.centerIndex()
	if i < 0 {
		return Child{}, false
	}
	c := v.window[i]
	return Child{Element: c.el, Index: c.index, Bounds: c.bounds}, true
}

// SmoothScrollBy animates the offset by delta over duration, replacing any
// running fling or snap. No snap follows it.
func (v *View) SmoothScrollBy(delta float64, duration time.Duration) {
	v.animator.ForceFinish()
	v.state.flinging = false
	v.animator.StartScroll(v.offset, delta, duration)
	v.scheduleFrame()
}

func (v *View) scheduleFrame() {
	if v.requestFrame != nil {
		v.requestFrame()
	}
}
