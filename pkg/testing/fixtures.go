package testing

import (
	"fmt"

	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
)

// Box is a solid element with a fixed natural height. It records how it was
// bound and where it was placed.
type Box struct {
	Label  string
	Index  int
	Height float64
	Width  layout.Dimension
	Color  graphics.Color
	Hidden bool

	// Bounds is the last placement received through SetBounds.
	Bounds graphics.Rect
	// Binds counts how many times the box was bound to an index.
	Binds int
}

// Measure reports the natural height and fills the width the constraints
// allow.
func (b *Box) Measure(c layout.Constraints) graphics.Size {
	width := c.MaxWidth
	if !c.HasBoundedWidth() {
		width = 100
	}
	return c.Constrain(graphics.Size{Width: width, Height: b.Height})
}

// Params returns the box's size preferences.
func (b *Box) Params() layout.Params {
	width := b.Width
	if width == 0 {
		width = layout.MatchParent
	}
	return layout.Params{Width: width, Height: layout.WrapContent}
}

// SetBounds records the placement.
func (b *Box) SetBounds(bounds graphics.Rect) {
	b.Bounds = bounds
}

// Visible reports whether the box is shown.
func (b *Box) Visible() bool {
	return !b.Hidden
}

// Paint fills the bounds and draws the label at the top-left corner.
func (b *Box) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	canvas.DrawRect(bounds, b.Color)
	canvas.DrawText(b.Label, graphics.Offset{X: bounds.Left, Y: bounds.Top}, graphics.ColorBlack)
}

// FixtureAdapter serves Boxes with per-index heights and records every bind.
type FixtureAdapter struct {
	Heights []float64
	// NilAt lists indices for which ViewFor returns nil.
	NilAt map[int]bool

	// Created counts Boxes allocated because nothing was offered for reuse.
	Created int
	// Bound lists the indices bound, in order.
	Bound []int
}

// NewFixtureAdapter returns an adapter of count items of equal height.
func NewFixtureAdapter(count int, height float64) *FixtureAdapter {
	heights := make([]float64, count)
	for i := range heights {
		heights[i] = height
	}
	return &FixtureAdapter{Heights: heights}
}

// ItemCount returns len(Heights).
func (a *FixtureAdapter) ItemCount() int {
	return len(a.Heights)
}

// ViewFor binds a Box to index, reusing recycled when it is a Box.
func (a *FixtureAdapter) ViewFor(index int, recycled layout.Element) layout.Element {
	if a.NilAt[index] {
		return nil
	}
	box, ok := recycled.(*Box)
	if !ok {
		box = &Box{}
		a.Created++
	}
	box.Index = index
	box.Label = fmt.Sprintf("item %d", index)
	box.Height = a.Heights[index]
	box.Color = graphics.RGB(uint8(40*index%256), 120, 200)
	box.Binds++
	a.Bound = append(a.Bound, index)
	return box
}

// ItemID returns 1000 + index.
func (a *FixtureAdapter) ItemID(index int) int64 {
	return int64(1000 + index)
}
