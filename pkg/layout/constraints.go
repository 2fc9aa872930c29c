// Package layout holds measurement constraints and the element contract.
package layout

import (
	"math"

	"github.com/go-drift/looplist/pkg/graphics"
)

// Unbounded is the max extent of an axis that carries no upper limit.
var Unbounded = math.Inf(1)

// Constraints describe the sizes a box may take during measurement.
//
// A tight axis (min == max) dictates an exact size. A bounded loose axis
// caps it, and an unbounded axis lets the box pick its natural size.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unconstrained returns constraints with no upper bound on either axis.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// IsTight reports whether both axes are tight.
func (c Constraints) IsTight() bool {
	return c.HasTightWidth() && c.HasTightHeight()
}

// HasTightWidth reports whether the width is fixed.
func (c Constraints) HasTightWidth() bool {
	return c.MinWidth >= c.MaxWidth
}

// HasTightHeight reports whether the height is fixed.
func (c Constraints) HasTightHeight() bool {
	return c.MinHeight >= c.MaxHeight
}

// HasBoundedWidth reports whether the width has a finite upper bound.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether the height has a finite upper bound.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// WidthMode classifies the width axis.
func (c Constraints) WidthMode() Mode {
	return modeOf(c.MinWidth, c.MaxWidth)
}

// HeightMode classifies the height axis.
func (c Constraints) HeightMode() Mode {
	return modeOf(c.MinHeight, c.MaxHeight)
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Biggest returns the largest size the constraints allow, falling back to
// the minimum on an unbounded axis.
func (c Constraints) Biggest() graphics.Size {
	size := graphics.Size{Width: c.MaxWidth, Height: c.MaxHeight}
	if !c.HasBoundedWidth() {
		size.Width = c.MinWidth
	}
	if !c.HasBoundedHeight() {
		size.Height = c.MinHeight
	}
	return size
}

// Mode classifies one axis of a Constraints value.
type Mode int

const (
	// ModeUnspecified places no limit on the axis.
	ModeUnspecified Mode = iota
	// ModeAtMost caps the axis at the max extent.
	ModeAtMost
	// ModeExactly fixes the axis at the max extent.
	ModeExactly
)

func (m Mode) String() string {
	switch m {
	case ModeAtMost:
		return "at_most"
	case ModeExactly:
		return "exactly"
	default:
		return "unspecified"
	}
}

func modeOf(min, max float64) Mode {
	switch {
	case math.IsInf(max, 1):
		return ModeUnspecified
	case min >= max:
		return ModeExactly
	default:
		return ModeAtMost
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
