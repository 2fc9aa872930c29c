// Package gestures turns raw pointer events into the high-level gestures a
// scrolling list reacts to: down, scroll, fling and confirmed single taps.
package gestures

import (
	"fmt"
	"time"

	"github.com/go-drift/looplist/pkg/graphics"
)

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is sent when a pointer touches the surface.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is sent while a pointer moves in contact.
	PointerPhaseMove
	// PointerPhaseUp is sent when a pointer leaves the surface.
	PointerPhaseUp
	// PointerPhaseCancel is sent when the host aborts the pointer sequence.
	PointerPhaseCancel
)

// String returns a human-readable representation of the pointer phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single raw pointer sample in view-local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	// Delta is the movement since the previous event of the same pointer.
	Delta graphics.Offset
	Phase PointerPhase
	// Time is when the sample was taken. A zero Time is stamped with the
	// animation clock when the event is handled.
	Time time.Time
}

// PointerHandler receives pointer events routed by the host.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}
