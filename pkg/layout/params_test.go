package layout

import (
	"testing"

	"github.com/go-drift/looplist/pkg/graphics"
)

func TestChildConstraints(t *testing.T) {
	exact := Tight(graphics.Size{Width: 320, Height: 500})
	atMost := Loose(graphics.Size{Width: 320, Height: 500})
	free := Unconstrained()

	tests := []struct {
		name   string
		parent Constraints
		params Params
		want   Constraints
	}{
		{
			name:   "fixed width ignores parent",
			parent: free,
			params: Params{Width: 120, Height: 40},
			want:   Constraints{MinWidth: 120, MaxWidth: 120, MinHeight: 40, MaxHeight: 40},
		},
		{
			name:   "match parent under exact parent",
			parent: exact,
			params: Params{Width: MatchParent, Height: WrapContent},
			want:   Constraints{MinWidth: 320, MaxWidth: 320, MaxHeight: Unbounded},
		},
		{
			name:   "wrap content under exact parent",
			parent: exact,
			params: Params{Width: WrapContent, Height: WrapContent},
			want:   Constraints{MaxWidth: 320, MaxHeight: Unbounded},
		},
		{
			name:   "match parent under at-most parent",
			parent: atMost,
			params: Params{Width: MatchParent, Height: 0},
			want:   Constraints{MaxWidth: 320, MaxHeight: Unbounded},
		},
		{
			name:   "unspecified parent",
			parent: free,
			params: Params{Width: MatchParent, Height: MatchParent},
			want:   Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded},
		},
	}
	for _, tt := range tests {
		if got := ChildConstraints(tt.parent, tt.params); got != tt.want {
			t.Errorf("%s: ChildConstraints() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestConstraintsModes(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 10, MaxHeight: 50}
	if c.WidthMode() != ModeExactly {
		t.Errorf("WidthMode() = %v, want exactly", c.WidthMode())
	}
	if c.HeightMode() != ModeAtMost {
		t.Errorf("HeightMode() = %v, want at_most", c.HeightMode())
	}
	if Unconstrained().HeightMode() != ModeUnspecified {
		t.Error("unconstrained height should be unspecified")
	}
}

func TestConstraintsBiggestAndConstrain(t *testing.T) {
	c := Constraints{MinWidth: 0, MaxWidth: 300, MinHeight: 20, MaxHeight: Unbounded}
	if got := c.Biggest(); got != (graphics.Size{Width: 300, Height: 20}) {
		t.Errorf("Biggest() = %+v", got)
	}
	if got := c.Constrain(graphics.Size{Width: 500, Height: 5}); got != (graphics.Size{Width: 300, Height: 20}) {
		t.Errorf("Constrain() = %+v", got)
	}
}
