package loop

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/looplist/pkg/animation"
	"github.com/go-drift/looplist/pkg/errors"
	looptest "github.com/go-drift/looplist/pkg/testing"
)

type recordingHandler struct {
	errs   []*errors.LoopError
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.LoopError)  { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func useRecordingHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

type snapCall struct {
	start    float64
	delta    float64
	duration time.Duration
}

// recordingAnimator wraps a Scroller and logs the calls the view makes.
type recordingAnimator struct {
	*animation.Scroller
	calls []string
	snaps []snapCall
}

func (a *recordingAnimator) ForceFinish() {
	a.calls = append(a.calls, "finish")
	a.Scroller.ForceFinish()
}

func (a *recordingAnimator) Fling(start, velocity, min, max float64) {
	a.calls = append(a.calls, "fling")
	a.Scroller.Fling(start, velocity, min, max)
}

func (a *recordingAnimator) StartScroll(start, delta float64, duration time.Duration) {
	a.calls = append(a.calls, "snap")
	a.snaps = append(a.snaps, snapCall{start: start, delta: delta, duration: duration})
	a.Scroller.StartScroll(start, delta, duration)
}

// callsSince returns the calls recorded after the last occurrence of name.
func (a *recordingAnimator) callsSince(name string) []string {
	for i := len(a.calls) - 1; i >= 0; i-- {
		if a.calls[i] == name {
			return a.calls[i+1:]
		}
	}
	return nil
}

func count(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

type fixture struct {
	view     *View
	adapter  *looptest.FixtureAdapter
	tester   *looptest.ViewTester
	animator *recordingAnimator
}

// newFixture mounts a view over count items of the given height in a
// 320x500 viewport.
func newFixture(t *testing.T, options Options, heights ...float64) *fixture {
	t.Helper()
	adapter := &looptest.FixtureAdapter{Heights: heights}
	view := NewView(options)
	animator := &recordingAnimator{Scroller: animation.NewScroller()}
	view.SetAnimator(animator)
	view.SetAdapter(adapter)
	tester := looptest.NewViewTesterWithT(t, view)
	tester.Mount()
	return &fixture{view: view, adapter: adapter, tester: tester, animator: animator}
}

func uniform(count int, height float64) []float64 {
	heights := make([]float64, count)
	for i := range heights {
		heights[i] = height
	}
	return heights
}

func indices(v *View) []int {
	var out []int
	for _, c := range v.Children() {
		out = append(out, c.Index)
	}
	return out
}

// checkWindow asserts the window is contiguous, consecutively indexed and
// exactly covers the viewport.
func checkWindow(t *testing.T, v *View) {
	t.Helper()
	children := v.Children()
	if len(children) == 0 {
		t.Fatal("window is empty")
	}
	n := v.Adapter().ItemCount()
	top, bottom := v.ScrollOffset(), v.ScrollOffset()+v.Size().Height
	for i, c := range children {
		if !c.Bounds.OverlapsVertically(top, bottom) {
			t.Errorf("child %d (index %d, %v) does not intersect viewport [%v, %v]", i, c.Index, c.Bounds, top, bottom)
		}
		if i == 0 {
			continue
		}
		prev := children[i-1]
		if math.Abs(prev.Bounds.Bottom-c.Bounds.Top) > 1e-9 {
			t.Errorf("gap between children %d and %d: %v then %v", i-1, i, prev.Bounds, c.Bounds)
		}
		if c.Index != Wrap(prev.Index+1, n) {
			t.Errorf("index %d follows %d, want %d", c.Index, prev.Index, Wrap(prev.Index+1, n))
		}
	}
	if children[0].Bounds.Top > top {
		t.Errorf("window top %v below viewport top %v", children[0].Bounds.Top, top)
	}
	if last := children[len(children)-1]; last.Bounds.Bottom < bottom {
		t.Errorf("window bottom %v above viewport bottom %v", last.Bounds.Bottom, bottom)
	}
	if v.FirstVisiblePosition() != children[0].Index || v.LastVisiblePosition() != children[len(children)-1].Index {
		t.Errorf("positions = (%d, %d), window ends = (%d, %d)",
			v.FirstVisiblePosition(), v.LastVisiblePosition(), children[0].Index, children[len(children)-1].Index)
	}
}
