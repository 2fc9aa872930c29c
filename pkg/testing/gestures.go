package testing

import (
	"time"

	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/graphics"
)

const (
	// gestureSteps is the number of move events a drag or fling emits.
	gestureSteps = 10
	// dragHold is how long a drag rests before release so that no fling
	// velocity remains.
	dragHold = 200 * time.Millisecond
)

func (t *ViewTester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// TapAt simulates a quick tap at pos. The tap is confirmed only after the
// double-tap timeout; follow with PumpAndSettle.
func (t *ViewTester) TapAt(pos graphics.Offset) {
	id := t.allocPointerID()
	t.SendPointerDown(pos, id)
	t.clock.Advance(50 * time.Millisecond)
	t.SendPointerUp(pos, id)
}

// DragFrom simulates a drag from start by delta that comes to rest before
// the pointer lifts, so it never flings.
func (t *ViewTester) DragFrom(start, delta graphics.Offset) {
	id := t.allocPointerID()
	t.SendPointerDown(start, id)
	t.moveTo(id, start, delta, 160*time.Millisecond)
	t.clock.Advance(dragHold)
	t.SendPointerUp(start.Translate(delta.X, delta.Y), id)
}

// Fling simulates a drag from start by delta over duration that releases
// while still moving. The release velocity is about delta/duration.
func (t *ViewTester) Fling(start, delta graphics.Offset, duration time.Duration) {
	id := t.allocPointerID()
	t.SendPointerDown(start, id)
	t.moveTo(id, start, delta, duration)
	t.SendPointerUp(start.Translate(delta.X, delta.Y), id)
}

func (t *ViewTester) moveTo(id int64, start, delta graphics.Offset, duration time.Duration) {
	step := duration / gestureSteps
	for i := 1; i <= gestureSteps; i++ {
		t.clock.Advance(step)
		frac := float64(i) / gestureSteps
		t.SendPointerMove(start.Translate(delta.X*frac, delta.Y*frac), id)
	}
}

// SendPointerDown sends a pointer-down event at pos.
func (t *ViewTester) SendPointerDown(pos graphics.Offset, pointerID int64) {
	t.pointers[pointerID] = pos
	t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
	})
}

// SendPointerMove sends a pointer-move event at pos.
func (t *ViewTester) SendPointerMove(pos graphics.Offset, pointerID int64) {
	t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     t.delta(pointerID, pos),
		Phase:     gestures.PointerPhaseMove,
	})
	t.pointers[pointerID] = pos
}

// SendPointerUp sends a pointer-up event at pos.
func (t *ViewTester) SendPointerUp(pos graphics.Offset, pointerID int64) {
	t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  pos,
		Delta:     t.delta(pointerID, pos),
		Phase:     gestures.PointerPhaseUp,
	})
	delete(t.pointers, pointerID)
}

// SendPointerCancel sends a pointer-cancel event at the pointer's last
// position.
func (t *ViewTester) SendPointerCancel(pointerID int64) {
	t.send(gestures.PointerEvent{
		PointerID: pointerID,
		Position:  t.pointers[pointerID],
		Phase:     gestures.PointerPhaseCancel,
	})
	delete(t.pointers, pointerID)
}

func (t *ViewTester) delta(pointerID int64, pos graphics.Offset) graphics.Offset {
	prev, ok := t.pointers[pointerID]
	if !ok {
		return graphics.Offset{}
	}
	return graphics.Offset{X: pos.X - prev.X, Y: pos.Y - prev.Y}
}

func (t *ViewTester) send(event gestures.PointerEvent) {
	event.Time = t.clock.Now()
	t.host.HandlePointer(event)
}
