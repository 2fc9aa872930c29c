package graphics

import (
	"reflect"
	"testing"
)

func lineTexts(l *TextLayout) []string {
	out := make([]string, len(l.Lines))
	for i, line := range l.Lines {
		out[i] = line.Text
	}
	return out
}

func TestMeasureText_FixedAdvance(t *testing.T) {
	if got := MeasureText(nil, "abcd"); got != 28 {
		t.Errorf("MeasureText(abcd) = %v, want 28", got)
	}
	if got := MeasureText(DefaultFace(), ""); got != 0 {
		t.Errorf("MeasureText(empty) = %v, want 0", got)
	}
}

func TestLayoutText_Unbounded(t *testing.T) {
	l := LayoutText("item 1\nsecond line", TextStyle{}, 0)
	if want := []string{"item 1", "second line"}; !reflect.DeepEqual(lineTexts(l), want) {
		t.Fatalf("lines = %q, want %q", lineTexts(l), want)
	}
	if l.LineHeight != 13 {
		t.Errorf("LineHeight = %v, want 13", l.LineHeight)
	}
	if l.Height != 26 {
		t.Errorf("Height = %v, want 26", l.Height)
	}
	if l.Width != 77 {
		t.Errorf("Width = %v, want 77", l.Width)
	}
}

func TestLayoutText_Wraps(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"fits", "one two", 49, []string{"one two"}},
		{"breaks at space", "one two three", 56, []string{"one two", "three"}},
		{"long word kept whole", "abcdefghij x", 35, []string{"abcdefghij", "x"}},
		{"blank paragraph", "a\n\nb", 70, []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		l := LayoutText(tt.text, TextStyle{}, tt.maxWidth)
		if got := lineTexts(l); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: lines = %q, want %q", tt.name, got, tt.want)
		}
	}
}
