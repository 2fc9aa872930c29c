package layout

// Dimension is a child's size preference along one axis. Non-negative values
// are fixed extents in pixels; the negative sentinels select a policy.
type Dimension float64

const (
	// MatchParent asks for the parent's extent on the axis.
	MatchParent Dimension = -1
	// WrapContent asks for the child's natural extent on the axis.
	WrapContent Dimension = -2
)

// IsFixed reports whether d is an explicit pixel extent.
func (d Dimension) IsFixed() bool {
	return d >= 0
}

// Params are the size preferences a child element carries.
type Params struct {
	Width  Dimension
	Height Dimension
}

// DefaultParams wraps content on both axes.
func DefaultParams() Params {
	return Params{Width: WrapContent, Height: WrapContent}
}

// ChildWidthConstraints derives the width a child may take from the parent's
// width constraint and the child's preference:
//
//   - a fixed preference is always exact;
//   - MatchParent takes the parent's extent, keeping its mode;
//   - WrapContent is capped by a bounded parent, unconstrained otherwise.
func ChildWidthConstraints(parent Constraints, pref Dimension) (min, max float64) {
	if pref.IsFixed() {
		return float64(pref), float64(pref)
	}
	switch parent.WidthMode() {
	case ModeExactly:
		if pref == MatchParent {
			return parent.MaxWidth, parent.MaxWidth
		}
		return 0, parent.MaxWidth
	case ModeAtMost:
		return 0, parent.MaxWidth
	default:
		return 0, Unbounded
	}
}

// ChildHeightConstraints returns an exact height for a positive fixed
// preference and an unconstrained height otherwise, so the child reports
// its natural height.
func ChildHeightConstraints(pref Dimension) (min, max float64) {
	if pref > 0 {
		return float64(pref), float64(pref)
	}
	return 0, Unbounded
}

// ChildConstraints combines ChildWidthConstraints and ChildHeightConstraints.
func ChildConstraints(parent Constraints, params Params) Constraints {
	minW, maxW := ChildWidthConstraints(parent, params.Width)
	minH, maxH := ChildHeightConstraints(params.Height)
	return Constraints{MinWidth: minW, MaxWidth: maxW, MinHeight: minH, MaxHeight: maxH}
}
