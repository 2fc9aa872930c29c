package graphics

import "testing"

func TestRectContains_HalfOpenEdges(t *testing.T) {
	upper := RectFromLTWH(0, 0, 100, 50)
	lower := RectFromLTWH(0, 50, 100, 50)
	boundary := Offset{X: 10, Y: 50}

	if upper.Contains(boundary) {
		t.Error("upper rect should not contain a point on its bottom edge")
	}
	if !lower.Contains(boundary) {
		t.Error("lower rect should contain a point on its top edge")
	}
}

func TestRectOverlapsVertically(t *testing.T) {
	r := RectFromLTWH(0, 100, 10, 100)
	tests := []struct {
		name        string
		top, bottom float64
		want        bool
	}{
		{"inside", 120, 180, true},
		{"covering", 0, 500, true},
		{"touching above", 0, 100, false},
		{"touching below", 200, 300, false},
		{"partial top", 50, 101, true},
		{"disjoint", 300, 400, false},
	}
	for _, tt := range tests {
		if got := r.OverlapsVertically(tt.top, tt.bottom); got != tt.want {
			t.Errorf("%s: OverlapsVertically(%v, %v) = %v, want %v", tt.name, tt.top, tt.bottom, got, tt.want)
		}
	}
}

func TestRectTranslateAndCenter(t *testing.T) {
	r := RectFromLTWH(0, 470, 200, 100).Translate(0, -250)
	if !r.Equal(Rect{Left: 0, Top: 220, Right: 200, Bottom: 320}) {
		t.Errorf("Translate = %+v", r)
	}
	if c := r.Center(); c.X != 100 || c.Y != 270 {
		t.Errorf("Center = %+v, want {100 270}", c)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(0x12, 0xAB, 0xEF).Hex(); got != "#12ABEF" {
		t.Errorf("Hex() = %q, want %q", got, "#12ABEF")
	}
	if got := RGBA(255, 0, 0, 0.5).Alpha(); got < 0.49 || got > 0.51 {
		t.Errorf("Alpha() = %v, want ~0.5", got)
	}
}
