package layout

import "github.com/go-drift/looplist/pkg/graphics"

// Element is a measurable child a container lays out.
type Element interface {
	// Measure returns the element's size under the given constraints.
	Measure(constraints Constraints) graphics.Size
	// Params returns the element's size preferences.
	Params() Params
}

// Positioner is implemented by elements that want to know where their
// container placed them. Bounds are in the container's content space.
type Positioner interface {
	SetBounds(bounds graphics.Rect)
}

// Painter is implemented by elements that draw themselves.
type Painter interface {
	Paint(canvas graphics.Canvas, bounds graphics.Rect)
}

// Visibility is implemented by elements that can be hidden. Hidden elements
// keep their slot in layout but are neither painted nor hit.
type Visibility interface {
	Visible() bool
}

// IsVisible reports whether el should be painted and hit-tested.
// Elements without a Visibility implementation are always visible.
func IsVisible(el Element) bool {
	if v, ok := el.(Visibility); ok {
		return v.Visible()
	}
	return true
}
