package loop

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/go-drift/looplist/pkg/errors"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
	looptest "github.com/go-drift/looplist/pkg/testing"
)

func TestView_BootstrapCentersFirstItem(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)

	if got := f.view.ScrollOffset(); got != -200 {
		t.Errorf("ScrollOffset() = %v, want -200", got)
	}
	if got, want := indices(f.view), []int{3, 4, 0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("window = %v, want %v", got, want)
	}
	if f.view.FirstVisiblePosition() != 3 || f.view.LastVisiblePosition() != 2 {
		t.Errorf("positions = (%d, %d), want (3, 2)", f.view.FirstVisiblePosition(), f.view.LastVisiblePosition())
	}
	checkWindow(t, f.view)

	center := f.view.Children()[2]
	if center.Index != 0 || !center.Bounds.Equal(graphics.RectFromLTWH(0, 0, 320, 100)) {
		t.Errorf("item 0 at %v, want [0,0 320x100]", center.Bounds)
	}
	if box := center.Element.(*looptest.Box); !box.Bounds.Equal(center.Bounds) {
		t.Errorf("Positioner got %v, want %v", box.Bounds, center.Bounds)
	}
}

func TestView_BeforeLayout(t *testing.T) {
	v := NewView(DefaultOptions())
	v.SetAdapter(looptest.NewFixtureAdapter(5, 100))
	if v.FirstVisiblePosition() != InvalidPosition || v.LastVisiblePosition() != InvalidPosition {
		t.Errorf("positions before layout = (%d, %d), want invalid", v.FirstVisiblePosition(), v.LastVisiblePosition())
	}
	if v.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", v.ChildCount())
	}
}

func TestView_FillBeforeWrapsPastZero(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	f.view.ScrollBy(300)
	if got, want := indices(f.view), []int{1, 2, 3, 4, 0}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after scrolling down window = %v, want %v", got, want)
	}
	checkWindow(t, f.view)

	f.view.ScrollBy(-200)
	if got := f.view.FirstVisiblePosition(); got != 4 {
		t.Errorf("FirstVisiblePosition() = %d, want 4", got)
	}
	if got, want := indices(f.view), []int{4, 0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("window = %v, want %v", got, want)
	}
	checkWindow(t, f.view)
}

func TestView_WindowCoversViewportWhileScrolling(t *testing.T) {
	f := newFixture(t, DefaultOptions(), 90, 130, 40, 210, 75, 60, 100)
	for _, step := range []float64{37, 37, 120, 500, -13, -999, 1, 0.5, 2500, -3000} {
		f.view.ScrollBy(step)
		checkWindow(t, f.view)
		if t.Failed() {
			t.Fatalf("window broke after scrolling by %v to %v", step, f.view.ScrollOffset())
		}
	}
}

func TestView_RecyclesElements(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	for i := 0; i < 300; i++ {
		f.view.ScrollBy(37)
	}
	for i := 0; i < 300; i++ {
		f.view.ScrollBy(-41)
	}
	checkWindow(t, f.view)

	// A 500px viewport over 100px items never shows more than 6 at once.
	if f.adapter.Created > 6 {
		t.Errorf("Created = %d elements, want at most 6", f.adapter.Created)
	}
	if got := f.view.ChildCount() + f.view.RecycledCount(); got != f.adapter.Created {
		t.Errorf("window (%d) + pool (%d) = %d, want every created element (%d) in exactly one",
			f.view.ChildCount(), f.view.RecycledCount(), got, f.adapter.Created)
	}
	seen := map[*looptest.Box]bool{}
	for _, c := range f.view.Children() {
		box := c.Element.(*looptest.Box)
		if seen[box] {
			t.Fatalf("element for index %d realized twice in the window", c.Index)
		}
		seen[box] = true
		if box.Index != c.Index {
			t.Errorf("element bound to %d sits in slot for %d", box.Index, c.Index)
		}
	}
}

func TestView_LargeJumpFillsInOnePass(t *testing.T) {
	tests := []struct {
		name    string
		heights []float64
		jump    func(v *View)
	}{
		{"forward", uniform(5, 100), func(v *View) { v.ScrollBy(100_000) }},
		{"backward", uniform(5, 100), func(v *View) { v.ScrollBy(-100_000) }},
		{"small rows", uniform(12, 16), func(v *View) { v.ScrollBy(5000) }},
		{"mixed heights", []float64{40, 100, 70}, func(v *View) { v.ScrollBy(123_457) }},
		{"absolute", []float64{40, 100, 70, 25}, func(v *View) { v.ScrollTo(-987_654.5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := useRecordingHandler(t)
			f := newFixture(t, DefaultOptions(), tt.heights...)
			created := f.adapter.Created

			tt.jump(f.view)
			checkWindow(t, f.view)
			if len(h.errs) != 0 {
				t.Errorf("reported %v, want no errors", h.errs)
			}
			if f.adapter.Created > created+1 {
				t.Errorf("Created = %d after jump, want pooled reuse (had %d)", f.adapter.Created, created)
			}
		})
	}
}

func TestView_LargeJumpKeepsItemPositions(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	f.view.ScrollBy(100_000)

	// Content repeats every 500px, and item 0 starts at 0.
	for _, c := range f.view.Children() {
		if got := math.Mod(c.Bounds.Top, 500); got != float64(c.Index)*100 {
			t.Errorf("index %d at top %v, want %v mod 500", c.Index, c.Bounds.Top, c.Index*100)
		}
	}
}

func TestView_NilElementOnReuseReturnsHandle(t *testing.T) {
	h := useRecordingHandler(t)
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	f.adapter.NilAt = map[int]bool{0: true, 1: true, 2: true, 3: true, 4: true}

	f.view.ScrollBy(130)
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindAdapter {
		t.Fatalf("reported %v, want one adapter error", h.errs)
	}
	if f.view.RecycledCount() != 1 {
		t.Errorf("RecycledCount() = %d, want the offered element back in the pool", f.view.RecycledCount())
	}
	if got := f.view.ChildCount() + f.view.RecycledCount(); got != f.adapter.Created {
		t.Errorf("window + pool = %d, want %d", got, f.adapter.Created)
	}
}

func TestView_ZeroHeightItemsStopAtFillLimit(t *testing.T) {
	h := useRecordingHandler(t)
	options := DefaultOptions()
	options.MaxFillPerPass = 16
	f := newFixture(t, options, 0, 0, 0)

	if f.view.ChildCount() > 16 {
		t.Errorf("ChildCount() = %d, want at most 16", f.view.ChildCount())
	}
	if len(h.errs) == 0 {
		t.Fatal("expected a layout error")
	}
	err := h.errs[0]
	if err.Kind != errors.KindLayout || !errors.Is(err, errors.ErrFillLimit) {
		t.Errorf("reported %v, want layout fill limit", err)
	}
}

func TestView_NilAdapterIsNoOp(t *testing.T) {
	v := NewView(DefaultOptions())
	tester := looptest.NewViewTesterWithT(t, v)
	tester.Mount()
	tester.DragFrom(graphics.Offset{X: 10, Y: 200}, graphics.Offset{Y: -100})
	if err := tester.PumpAndSettle(looptest.FrameDuration * 200); err != nil {
		t.Fatal(err)
	}
	if v.ChildCount() != 0 || v.FirstVisiblePosition() != InvalidPosition {
		t.Errorf("nil adapter realized %d children", v.ChildCount())
	}
}

func TestView_EmptyAdapterIsNoOp(t *testing.T) {
	f := newFixture(t, DefaultOptions())
	if f.view.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d, want 0", f.view.ChildCount())
	}
	f.view.ScrollBy(250)
	if f.view.ChildCount() != 0 || f.view.FirstVisiblePosition() != InvalidPosition {
		t.Error("empty adapter should keep the window empty")
	}
}

func TestView_NilElementReported(t *testing.T) {
	h := useRecordingHandler(t)
	adapter := looptest.NewFixtureAdapter(5, 100)
	adapter.NilAt = map[int]bool{4: true}
	v := NewView(DefaultOptions())
	v.SetAdapter(adapter)
	tester := looptest.NewViewTesterWithT(t, v)
	tester.Mount()

	if len(h.errs) == 0 {
		t.Fatal("expected an adapter error")
	}
	err := h.errs[0]
	if err.Kind != errors.KindAdapter || err.Index != 4 || !errors.Is(err, errors.ErrNilElement) {
		t.Errorf("reported %v, want adapter error at index 4", err)
	}
	if got := indices(v); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("window = %v, want only the anchor", got)
	}
}

func TestView_SetAdapterResets(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	f.view.ScrollBy(730)

	next := looptest.NewFixtureAdapter(3, 50)
	f.view.SetAdapter(next)
	if f.view.Adapter() != Adapter(next) {
		t.Error("Adapter() did not return the new adapter")
	}
	if got := f.view.ScrollOffset(); got != -225 {
		t.Errorf("ScrollOffset() = %v, want -225 after re-centering item 0", got)
	}
	if f.view.RecycledCount() != 0 {
		t.Errorf("RecycledCount() = %d, want a fresh pool", f.view.RecycledCount())
	}
	for _, c := range f.view.Children() {
		if c.Element.(*looptest.Box).Height != 50 {
			t.Fatal("old adapter's elements leaked into the new window")
		}
	}
	checkWindow(t, f.view)
}

func TestView_NotifyDataSetChanged(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	f.view.ScrollBy(250)
	top := f.view.Children()[0].Bounds.Top

	f.adapter.Heights = uniform(3, 100)
	f.view.NotifyDataSetChanged()
	checkWindow(t, f.view)
	if got := f.view.Children()[0].Bounds.Top; got != top {
		t.Errorf("top child moved from %v to %v", top, got)
	}
	for _, c := range f.view.Children() {
		if c.Index >= 3 {
			t.Errorf("stale index %d after shrinking to 3 items", c.Index)
		}
	}

	f.adapter.Heights = nil
	f.view.NotifyDataSetChanged()
	if f.view.ChildCount() != 0 || f.view.FirstVisiblePosition() != InvalidPosition {
		t.Error("emptied adapter should clear the window")
	}
}

func TestView_OverscanRealizesExtraChildren(t *testing.T) {
	options := DefaultOptions()
	options.Overscan = 150
	f := newFixture(t, options, uniform(10, 100)...)
	children := f.view.Children()
	if children[0].Bounds.Top > f.view.ScrollOffset()-150 {
		t.Errorf("top child at %v, want at or above %v", children[0].Bounds.Top, f.view.ScrollOffset()-150)
	}
	if len(children) != 9 {
		t.Errorf("ChildCount() = %d, want 9 with 150px overscan", len(children))
	}
}

func TestView_MeasureDrivesChildWidth(t *testing.T) {
	adapter := looptest.NewFixtureAdapter(4, 60)
	v := NewView(DefaultOptions())
	v.SetAdapter(adapter)

	size := v.Measure(layout.Loose(graphics.Size{Width: 240, Height: 300}))
	if size != (graphics.Size{Width: 240, Height: 300}) {
		t.Errorf("Measure() = %v, want the loose maximum", size)
	}
	v.Layout(size)
	for _, c := range v.Children() {
		if c.Bounds.Width() != 240 {
			t.Errorf("child %d width = %v, want 240", c.Index, c.Bounds.Width())
		}
	}
}

func TestView_DrawPaintsWindowInViewportSpace(t *testing.T) {
	f := newFixture(t, DefaultOptions(), uniform(5, 100)...)
	f.tester.Pump()

	canvas := f.tester.Canvas()
	want := []string{"item 3", "item 4", "item 0", "item 1", "item 2"}
	if got := canvas.Texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("painted %v, want %v", got, want)
	}
	for _, op := range canvas.Ops {
		if op.Kind == looptest.OpText && op.Text == "item 0" && op.Position.Y != 200 {
			t.Errorf("item 0 painted at y=%v, want 200", op.Position.Y)
		}
	}

	f.view.Children()[1].Element.(*looptest.Box).Hidden = true
	f.tester.Pump()
	for _, text := range f.tester.Canvas().Texts() {
		if text == "item 4" {
			t.Error("hidden child was painted")
		}
	}
}

func TestView_UnsupportedSelection(t *testing.T) {
	v := NewView(DefaultOptions())
	err := v.SetSelection(2)
	if !errors.IsKind(err, errors.KindUnsupported) || !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("SetSelection() = %v, want unsupported", err)
	}
	el, err := v.SelectedElement()
	if el != nil || !errors.IsKind(err, errors.KindUnsupported) {
		t.Errorf("SelectedElement() = (%v, %v), want unsupported", el, err)
	}
}

func TestView_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(DefaultOptions())
	v.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	v.SetAdapter(looptest.NewFixtureAdapter(5, 100))
	v.Layout(graphics.Size{Width: 320, Height: 500})
	v.ScrollBy(150)
	v.ScrollBy(10_000)

	out := buf.String()
	for _, msg := range []string{`"message":"bootstrap"`, `"message":"realize"`, `"message":"recycle"`, `"message":"reseat"`} {
		if !strings.Contains(out, msg) {
			t.Errorf("log missing %s:\n%s", msg, out)
		}
	}
}

func TestOptions_Normalized(t *testing.T) {
	got := Options{SnapDuration: -1, Overscan: -5}.normalized()
	if got.SnapDuration != DefaultSnapDuration || got.Overscan != 0 || got.MaxFillPerPass != DefaultMaxFillPerPass {
		t.Errorf("normalized() = %+v", got)
	}
	if v := NewView(Options{}); v.Options().SnapDuration != 0 {
		t.Error("zero SnapDuration should be kept")
	}
}
