package loop

import (
	"math"

	"github.com/go-drift/looplist/pkg/errors"
	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
)

func (v *View) newDetector() *gestures.Detector {
	d := gestures.NewDetector(v.options.Gestures)
	d.OnDown = v.onDown
	d.OnScroll = v.onScroll
	d.OnFling = v.onFling
	d.OnUp = v.onRelease
	d.OnCancel = v.onCancel
	d.OnSingleTapConfirmed = v.onTap
	return d
}

// HandlePointer routes a pointer event in viewport coordinates through
// gesture recognition.
func (v *View) HandlePointer(event gestures.PointerEvent) {
	v.detector.HandlePointer(event)
	if v.detector.HasPendingTap() {
		v.scheduleFrame()
	}
}

func (v *View) onDown(gestures.PointerEvent) {
	v.animator.ForceFinish()
	v.state.flinging = false
}

func (v *View) onScroll(details gestures.ScrollDetails) {
	v.ScrollBy(details.Distance.Y)
}

func (v *View) onRelease(gestures.PointerEvent) {
	if v.options.SnapOnRelease {
		v.snap()
	}
}

func (v *View) onCancel() {
	v.onRelease(gestures.PointerEvent{})
}

// onFling replaces whatever trajectory is running, including a snap started
// by the same release, with an unbounded fling.
func (v *View) onFling(details gestures.FlingDetails) {
	v.animator.ForceFinish()
	v.animator.Fling(v.offset, -details.Velocity.Y, -math.MaxFloat64, math.MaxFloat64)
	v.state.flinging = true
	ev := v.logger.Debug().Float64("velocity", -details.Velocity.Y)
	if tr, ok := v.animator.(Trajectory); ok {
		ev = ev.Stringer("mode", tr.Mode()).Float64("rest", tr.FinalOffset())
	}
	ev.Msg("fling")
	v.scheduleFrame()
}

func (v *View) onTap(details gestures.TapDetails) {
	i := v.childIndexAt(details.Position)
	if i < 0 {
		return
	}
	c := v.window[i]
	v.performItemClick(ItemClick{
		Element: c.el,
		Index:   c.index,
		ID:      itemID(v.adapter, c.index),
	})
}

// childIndexAt returns the window slot under a viewport point, searching
// from the last child so that later children win, or -1.
func (v *View) childIndexAt(point graphics.Offset) int {
	p := point.Translate(0, v.offset)
	for i := len(v.window) - 1; i >= 0; i-- {
		c := v.window[i]
		if !layout.IsVisible(c.el) {
			continue
		}
		if c.bounds.Contains(p) {
			return i
		}
	}
	return -1
}

// ChildAt returns the realized child under a viewport point.
func (v *View) ChildAt(point graphics.Offset) (Child, bool) {
	i := v.childIndexAt(point)
	if i < 0 {
		return Child{}, false
	}
	c := v.window[i]
	return Child{Element: c.el, Index: c.index, Bounds: c.bounds}, true
}

func (v *View) performItemClick(click ItemClick) {
	if v.OnItemClick == nil {
		return
	}
	defer errors.Recover("loop.OnItemClick")
	v.OnItemClick(click)
}
