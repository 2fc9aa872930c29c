// Package loop implements a vertically scrolling list that wraps around its
// data: scrolling past the last item shows the first one again.
//
// A [View] keeps a window of realized child elements that exactly covers its
// viewport. As the scroll offset changes, children that leave the viewport
// are returned to a recycle pool and newly exposed positions are realized
// through the [Adapter], reusing pooled elements where possible. Data
// positions are wrapped modulo the adapter's item count, so the window can
// extend in either direction forever.
//
// # Driving a View
//
// Hosts call Measure and Layout from their layout pass, route pointer events
// to HandlePointer and call Draw once per frame. The view asks for further
// frames through the function installed with SetFrameRequester while a fling,
// a snap or a pending tap needs them:
//
//	view := loop.NewView(loop.DefaultOptions())
//	view.SetAdapter(adapter)
//	view.SetFrameRequester(host.ScheduleFrame)
//	view.OnItemClick = func(click loop.ItemClick) { ... }
//
//	view.Measure(layout.Tight(size))
//	view.Layout(size)
//
// # Snapping
//
// When a fling comes to rest, and by default when the pointer is released,
// the child straddling the viewport center is animated so its center lines
// up with the viewport center over [Options.SnapDuration].
//
// A View is not safe for concurrent use; call it from the host's UI
// goroutine.
package loop
