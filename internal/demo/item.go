package demo

import (
	"fmt"

	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
	"github.com/go-drift/looplist/pkg/loop"
)

// Palette colors for alternating rows.
var (
	rowEven   = graphics.RGB(0x1F, 0x2A, 0x44)
	rowOdd    = graphics.RGB(0x2B, 0x3A, 0x5C)
	textColor = graphics.RGB(0xE6, 0xE9, 0xF0)
)

// TextItem is a padded block of wrapped text.
type TextItem struct {
	Text    string
	Index   int
	Padding float64
	Style   graphics.TextStyle

	layout *graphics.TextLayout
	bounds graphics.Rect
}

// Measure wraps the text to the available width and reports the padded
// block size. Without a width bound the text is not wrapped.
func (t *TextItem) Measure(c layout.Constraints) graphics.Size {
	wrapWidth := 0.0
	if c.HasBoundedWidth() {
		wrapWidth = c.MaxWidth - 2*t.Padding
	}
	t.layout = graphics.LayoutText(t.Text, t.Style, wrapWidth)
	size := graphics.Size{
		Width:  t.layout.Width + 2*t.Padding,
		Height: t.layout.Height + 2*t.Padding,
	}
	if c.HasBoundedWidth() {
		size.Width = c.MaxWidth
	}
	return c.Constrain(size)
}

// Params fills the parent width and wraps the content height.
func (t *TextItem) Params() layout.Params {
	return layout.Params{Width: layout.MatchParent, Height: layout.WrapContent}
}

func (t *TextItem) SetBounds(bounds graphics.Rect) {
	t.bounds = bounds
}

// Bounds returns the placement received from the list.
func (t *TextItem) Bounds() graphics.Rect {
	return t.bounds
}

// Paint fills the row background and draws each line.
func (t *TextItem) Paint(canvas graphics.Canvas, bounds graphics.Rect) {
	bg := rowEven
	if t.Index%2 == 1 {
		bg = rowOdd
	}
	canvas.DrawRect(bounds, bg)
	if t.layout == nil {
		return
	}
	color := t.Style.Color
	if color == 0 {
		color = textColor
	}
	y := bounds.Top + t.Padding
	for _, line := range t.layout.Lines {
		canvas.DrawText(line.Text, graphics.Offset{X: bounds.Left + t.Padding, Y: y}, color)
		y += t.layout.LineHeight
	}
}

// Items returns count generated labels. Every third label spans two lines
// so that rows differ in height.
func Items(count int) []string {
	items := make([]string, count)
	for i := range items {
		items[i] = fmt.Sprintf("Item %d", i)
		if i%3 == 2 {
			items[i] += "\nthis row is taller"
		}
	}
	return items
}

// NewAdapter returns an adapter binding items to TextItems, reusing
// recycled elements.
func NewAdapter(items []string, padding float64) *loop.SliceAdapter[string] {
	return &loop.SliceAdapter[string]{
		Items: items,
		Bind: func(text string, index int, recycled loop.Element) loop.Element {
			item, ok := recycled.(*TextItem)
			if !ok {
				item = &TextItem{Padding: padding}
			}
			item.Text = text
			item.Index = index
			item.layout = nil
			return item
		},
	}
}
