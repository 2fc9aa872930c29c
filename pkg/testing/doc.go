// Package testing provides helpers for testing looping list views without a
// host toolkit.
//
// # Quick Start
//
// Create a tester around a view, mount it and drive gestures:
//
//	func TestMyList(t *testing.T) {
//	    view := loop.NewView(loop.DefaultOptions())
//	    view.SetAdapter(looptest.NewFixtureAdapter(5, 100))
//
//	    tester := looptest.NewViewTesterWithT(t, view)
//	    tester.Mount()
//
//	    tester.Fling(graphics.Offset{X: 10, Y: 400}, graphics.Offset{Y: -300}, 100*time.Millisecond)
//	    if err := tester.PumpAndSettle(5 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Time
//
// The tester installs a [FakeClock] as the animation clock. Gestures stamp
// their events with it and every pumped frame advances it by
// [FrameDuration], so flings, snaps and tap confirmation are deterministic.
//
// # Drawing
//
// Frames are drawn into a [RecordingCanvas], which keeps the rectangles and
// text that survived clipping in surface coordinates.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import looptest "github.com/go-drift/looplist/pkg/testing"
package testing
