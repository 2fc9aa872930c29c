package testing

import (
	"testing"

	"github.com/go-drift/looplist/pkg/graphics"
	"github.com/go-drift/looplist/pkg/layout"
)

func TestFixtureAdapter_ReusesBoxes(t *testing.T) {
	a := NewFixtureAdapter(3, 40)
	first := a.ViewFor(0, nil)
	second := a.ViewFor(2, first)

	if first != second {
		t.Error("offered Box should be rebound, not replaced")
	}
	box := second.(*Box)
	if box.Index != 2 || box.Label != "item 2" || box.Binds != 2 {
		t.Errorf("rebound box = %+v", box)
	}
	if a.Created != 1 {
		t.Errorf("Created = %d, want 1", a.Created)
	}
	if len(a.Bound) != 2 || a.Bound[1] != 2 {
		t.Errorf("Bound = %v", a.Bound)
	}
	if a.ItemID(2) != 1002 {
		t.Errorf("ItemID(2) = %d", a.ItemID(2))
	}
}

func TestFixtureAdapter_NilAt(t *testing.T) {
	a := NewFixtureAdapter(3, 40)
	a.NilAt = map[int]bool{1: true}
	if el := a.ViewFor(1, nil); el != nil {
		t.Errorf("ViewFor(1) = %v, want nil", el)
	}
}

func TestBox_Measure(t *testing.T) {
	b := &Box{Height: 70}
	parent := layout.Tight(graphics.Size{Width: 320, Height: 500})
	got := b.Measure(layout.ChildConstraints(parent, b.Params()))
	if got != (graphics.Size{Width: 320, Height: 70}) {
		t.Errorf("Measure = %v, want 320x70", got)
	}
}

func TestRecordingCanvas_ClipsAndTranslates(t *testing.T) {
	c := NewRecordingCanvas(graphics.Size{Width: 100, Height: 100})
	c.Save()
	c.ClipRect(graphics.RectFromLTWH(0, 0, 100, 100))
	c.Translate(0, -150)
	c.DrawRect(graphics.RectFromLTWH(0, 100, 100, 40), graphics.ColorRed)
	c.DrawRect(graphics.RectFromLTWH(0, 160, 100, 40), graphics.ColorBlue)
	c.DrawText("hidden", graphics.Offset{Y: 100}, graphics.ColorBlack)
	c.DrawText("shown", graphics.Offset{Y: 160}, graphics.ColorBlack)
	c.Restore()

	if len(c.Ops) != 2 {
		t.Fatalf("ops = %d, want 2", len(c.Ops))
	}
	if want := graphics.RectFromLTWH(0, 10, 100, 40); !c.Ops[0].Rect.Equal(want) {
		t.Errorf("rect = %v, want %v", c.Ops[0].Rect, want)
	}
	if got := c.Texts(); len(got) != 1 || got[0] != "shown" {
		t.Errorf("texts = %v", got)
	}
}
