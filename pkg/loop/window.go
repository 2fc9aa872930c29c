package loop

import (
	stderrors "errors"
	"math"
	"slices"

	"github.com/go-drift/looplist/pkg/errors"
	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
	"github.com/go-drift/looplist/pkg/recycle"
)

// errNoProgress reports that walking the content does not move the edge.
var errNoProgress = stderrors.New("content has no height")

// layoutChildren brings the window in line with the current offset: it
// recycles children that left the viewport and realizes the positions that
// entered it. An empty window is seeded with item 0 centered vertically.
func (v *View) layoutChildren() {
	if v.adapter == nil {
		return
	}
	n := v.adapter.ItemCount()
	if n <= 0 {
		v.recycleAll()
		return
	}
	if v.size.Height <= 0 {
		return
	}
	budget := v.options.MaxFillPerPass
	if len(v.window) == 0 {
		v.bootstrap(n, &budget)
		return
	}
	v.pruneLeading(n)
	v.pruneTrailing(n)
	if !v.reseat(n) {
		return
	}
	if !v.fillBefore(n, &budget) {
		return
	}
	v.fillAfter(n, &budget)
}

// bootstrap realizes item 0, centers it in the viewport and fills around it.
func (v *View) bootstrap(n int, budget *int) {
	c, ok := v.realize(0, 0, true)
	if !ok {
		return
	}
	v.spend(c, budget)
	v.window = append(v.window, c)
	v.first, v.last = 0, 0
	v.offset = -v.size.Height/2 + c.bounds.Height()/2
	v.logger.Debug().Float64("offset", v.offset).Msg("bootstrap")
	if !v.fillBefore(n, budget) {
		return
	}
	v.fillAfter(n, budget)
}

func (v *View) viewportTop() float64 {
	return v.offset - v.options.Overscan
}

func (v *View) viewportBottom() float64 {
	return v.offset + v.size.Height + v.options.Overscan
}

// intersects reports whether c overlaps the open viewport span.
func (v *View) intersects(c child) bool {
	return c.bounds.OverlapsVertically(v.viewportTop(), v.viewportBottom())
}

// pruneLeading recycles children off the top. The last remaining child is
// kept as the anchor the fill passes grow from.
func (v *View) pruneLeading(n int) {
	for len(v.window) > 1 && !v.intersects(v.window[0]) {
		v.recycle(v.window[0])
		v.window = v.window[1:]
		v.first = Wrap(v.first+1, n)
	}
}

// pruneTrailing recycles children off the bottom, keeping one anchor.
func (v *View) pruneTrailing(n int) {
	for len(v.window) > 1 && !v.intersects(v.window[len(v.window)-1]) {
		v.recycle(v.window[len(v.window)-1])
		v.window = v.window[:len(v.window)-1]
		v.last = Wrap(v.last-1, n)
	}
}

// fillBefore realizes positions above the window until its top edge reaches
// the viewport top. It returns false when the pass had to stop early.
func (v *View) fillBefore(n int, budget *int) bool {
	edge := v.window[0].bounds.Top
	for edge > v.viewportTop() {
		if *budget <= 0 {
			v.reportFillLimit(Wrap(v.first-1, n))
			return false
		}
		c, ok := v.realize(Wrap(v.first-1, n), edge, false)
		if !ok {
			return false
		}
		v.spend(c, budget)
		v.window = slices.Insert(v.window, 0, c)
		v.first = c.index
		edge = c.bounds.Top
		v.pruneTrailing(n)
	}
	return true
}

// fillAfter realizes positions below the window until its bottom edge
// reaches the viewport bottom.
func (v *View) fillAfter(n int, budget *int) bool {
	edge := v.window[len(v.window)-1].bounds.Bottom
	for edge < v.viewportBottom() {
		if *budget <= 0 {
			v.reportFillLimit(Wrap(v.last+1, n))
			return false
		}
		c, ok := v.realize(Wrap(v.last+1, n), edge, true)
		if !ok {
			return false
		}
		v.spend(c, budget)
		v.window = append(v.window, c)
		v.last = c.index
		edge = c.bounds.Bottom
		v.pruneLeading(n)
	}
	return true
}

// spend charges a realized child against the pass budget. Only children
// that do not advance the fill edge are charged; any progress restores it.
func (v *View) spend(c child, budget *int) {
	if c.bounds.Height() > 0 {
		*budget = v.options.MaxFillPerPass
		return
	}
	*budget--
}

// reseat moves a lone anchor that lies wholly outside the viewport onto the
// position overlapping the near viewport edge, so a jump of any distance is
// filled in one pass. Whole cycles of content are skipped at once since the
// list repeats every n items. It returns false when the pass must stop.
func (v *View) reseat(n int) bool {
	if len(v.window) != 1 || v.intersects(v.window[0]) {
		return true
	}
	anchor := v.window[0]
	forward := anchor.bounds.Bottom <= v.viewportTop()
	index, edge, err := v.walk(n, anchor, forward)
	if err == errNoProgress {
		return true
	}
	if err != nil {
		return false
	}
	c, ok := v.realize(index, edge, forward)
	if !ok {
		return false
	}
	v.recycle(anchor)
	v.window[0] = c
	v.first, v.last = c.index, c.index
	v.logger.Debug().
		Int("from", anchor.index).
		Int("to", c.index).
		Float64("top", c.bounds.Top).
		Msg("reseat")
	return true
}

// walk measures positions from the anchor towards the viewport and returns
// the first one that overlaps it, together with the edge to place it
// against. errNoProgress means the content has no height to skip over and
// the fill passes must handle it.
func (v *View) walk(n int, anchor child, forward bool) (int, float64, error) {
	step, edge, target := -1, anchor.bounds.Top, v.viewportBottom()
	if forward {
		step, edge, target = 1, anchor.bounds.Bottom, v.viewportTop()
	}
	heights := make(map[int]float64)
	index := anchor.index
	start := edge
	for i := 1; i <= 3*n; i++ {
		index = Wrap(index+step, n)
		h, ok := heights[index]
		if !ok {
			if h, ok = v.measure(index); !ok {
				return 0, 0, errors.ErrNilElement
			}
			heights[index] = h
		}
		if forward && edge+h > target || !forward && edge-h < target {
			return index, edge, nil
		}
		edge += float64(step) * h
		if i == n {
			cycle := math.Abs(edge - start)
			if cycle <= 0 {
				return 0, 0, errNoProgress
			}
			edge += float64(step) * math.Floor(math.Abs(target-edge)/cycle) * cycle
		}
	}
	return 0, 0, errNoProgress
}

// bind obtains the element for index, reusing the oldest pooled element
// when one is free. The returned handle is in use.
func (v *View) bind(index int) (h recycle.Handle, el Element, reused, ok bool) {
	h, recycled, reused := v.pool.Acquire()
	var offered Element
	if reused {
		offered = recycled
	}
	el = v.adapter.ViewFor(index, offered)
	if el == nil {
		if reused {
			if err := v.pool.Release(h); err != nil {
				v.report(err)
			}
		}
		err := errors.New("loop.realize", errors.KindAdapter, errors.ErrNilElement)
		err.Index = index
		errors.Report(err)
		return 0, nil, false, false
	}
	if reused {
		if err := v.pool.Replace(h, el); err != nil {
			v.report(err)
		}
	} else {
		h = v.pool.Register(el)
	}
	return h, el, reused, true
}

// measure binds index only to learn its height and returns the element to
// the pool.
func (v *View) measure(index int) (float64, bool) {
	h, el, _, ok := v.bind(index)
	if !ok {
		return 0, false
	}
	size := el.Measure(layout.ChildConstraints(v.state.measure, el.Params()))
	if err := v.pool.Release(h); err != nil {
		v.report(err)
	}
	return size.Height, true
}

// realize obtains and measures the element for index and places it against
// edge: below it when forward, above it otherwise.
func (v *View) realize(index int, edge float64, forward bool) (child, bool) {
	h, el, reused, ok := v.bind(index)
	if !ok {
		return child{}, false
	}
	size := el.Measure(layout.ChildConstraints(v.state.measure, el.Params()))
	top := edge
	if !forward {
		top = edge - size.Height
	}
	bounds := graphics.RectFromLTWH(0, top, size.Width, size.Height)
	if p, ok := el.(layout.Positioner); ok {
		p.SetBounds(bounds)
	}
	v.logger.Debug().
		Int("index", index).
		Bool("reused", reused).
		Float64("top", bounds.Top).
		Float64("height", bounds.Height()).
		Msg("realize")
	return child{handle: h, el: el, index: index, bounds: bounds}, true
}

func (v *View) recycle(c child) {
	if err := v.pool.Release(c.handle); err != nil {
		v.report(err)
		return
	}
	v.logger.Debug().Int("index", c.index).Msg("recycle")
}

// recycleAll returns every realized child to the pool.
func (v *View) recycleAll() {
	for _, c := range v.window {
		v.recycle(c)
	}
	v.window = v.window[:0]
	v.first = InvalidPosition
	v.last = InvalidPosition
}

func (v *View) reportFillLimit(index int) {
	err := errors.New("loop.layoutChildren", errors.KindLayout, errors.ErrFillLimit)
	err.Index = index
	errors.Report(err)
}

func (v *View) report(err error) {
	var loopErr *errors.LoopError
	if errors.As(err, &loopErr) {
		errors.Report(loopErr)
		return
	}
	errors.Report(errors.New("loop", errors.KindUnknown, err))
}
