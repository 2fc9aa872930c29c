package gestures

import (
	"math"
	"time"

	"github.com/go-drift/looplist/pkg/animation"
	"github.com/go-drift/looplist/pkg/graphics"
)

// Config holds the thresholds a Detector classifies gestures with.
type Config struct {
	// TouchSlop is how far a pointer may travel before a tap becomes a scroll.
	TouchSlop float64 `yaml:"touch_slop"`
	// MinFlingVelocity is the release speed in px/s that counts as a fling.
	MinFlingVelocity float64 `yaml:"min_fling_velocity"`
	// MaxFlingVelocity caps the reported fling velocity in px/s.
	MaxFlingVelocity float64 `yaml:"max_fling_velocity"`
	// DoubleTapTimeout is how long a tap waits for a second tap before it is
	// confirmed as a single tap.
	DoubleTapTimeout time.Duration `yaml:"double_tap_timeout"`
}

// DefaultConfig returns thresholds suitable for a 1x density surface.
func DefaultConfig() Config {
	return Config{
		TouchSlop:        8,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		DoubleTapTimeout: 300 * time.Millisecond,
	}
}

// ScrollDetails describes one scroll step. Distance is the previous pointer
// position minus the current one, so dragging content upward yields a
// positive Y distance.
type ScrollDetails struct {
	Down     PointerEvent
	Current  PointerEvent
	Distance graphics.Offset
}

// FlingDetails describes a fling release. Velocity is the pointer velocity
// in px/s at release.
type FlingDetails struct {
	Down     PointerEvent
	Up       PointerEvent
	Velocity graphics.Offset
}

// TapDetails describes a tap.
type TapDetails struct {
	Position graphics.Offset
	Event    PointerEvent
}

// Detector recognizes down, scroll, fling, single-tap-confirmed and
// double-tap gestures from a single pointer.
//
// Only the first pointer of a sequence is tracked; additional pointers are
// ignored until it lifts. A single tap is confirmed once DoubleTapTimeout has
// passed since its down without a second down; hosts call Poll each frame so
// the confirmation fires even without further input.
type Detector struct {
	Config Config

	OnDown               func(PointerEvent)
	OnScroll             func(ScrollDetails)
	OnFling              func(FlingDetails)
	OnUp                 func(PointerEvent)
	OnCancel             func()
	OnSingleTapConfirmed func(TapDetails)
	OnDoubleTap          func(TapDetails)

	tracker VelocityTracker

	active      bool
	pointer     int64
	down        PointerEvent
	last        graphics.Offset
	inTapRegion bool
	doubleTap   bool

	pending         bool
	pendingTap      PointerEvent
	pendingDeadline time.Time
}

// NewDetector returns a Detector with the given configuration. Zero fields
// fall back to DefaultConfig.
func NewDetector(config Config) *Detector {
	defaults := DefaultConfig()
	if config.TouchSlop <= 0 {
		config.TouchSlop = defaults.TouchSlop
	}
	if config.MinFlingVelocity <= 0 {
		config.MinFlingVelocity = defaults.MinFlingVelocity
	}
	if config.MaxFlingVelocity <= 0 {
		config.MaxFlingVelocity = defaults.MaxFlingVelocity
	}
	if config.DoubleTapTimeout <= 0 {
		config.DoubleTapTimeout = defaults.DoubleTapTimeout
	}
	return &Detector{Config: config}
}

// IsTracking reports whether a pointer is currently down.
func (d *Detector) IsTracking() bool {
	return d.active
}

// HasPendingTap reports whether a tap is waiting for confirmation.
func (d *Detector) HasPendingTap() bool {
	return d.pending
}

// HandlePointer feeds one raw event into the detector.
func (d *Detector) HandlePointer(event PointerEvent) {
	if event.Time.IsZero() {
		event.Time = animation.Now()
	}
	switch event.Phase {
	case PointerPhaseDown:
		d.handleDown(event)
	case PointerPhaseMove:
		if d.tracks(event) {
			d.handleMove(event)
		}
	case PointerPhaseUp:
		if d.tracks(event) {
			d.handleUp(event)
		}
	case PointerPhaseCancel:
		if d.tracks(event) {
			d.handleCancel()
		}
	}
}

// Poll confirms a pending single tap whose timeout has elapsed at now.
// It returns true while a tap is still pending.
func (d *Detector) Poll(now time.Time) bool {
	if !d.pending {
		return false
	}
	if d.active || now.Before(d.pendingDeadline) {
		return true
	}
	d.pending = false
	if d.OnSingleTapConfirmed != nil {
		d.OnSingleTapConfirmed(TapDetails{Position: d.pendingTap.Position, Event: d.pendingTap})
	}
	return false
}

func (d *Detector) tracks(event PointerEvent) bool {
	return d.active && event.PointerID == d.pointer
}

func (d *Detector) handleDown(event PointerEvent) {
	if d.active {
		return
	}
	d.doubleTap = false
	if d.pending {
		d.pending = false
		if event.Time.Before(d.pendingDeadline) {
			d.doubleTap = true
		} else if d.OnSingleTapConfirmed != nil {
			// The timeout elapsed without a Poll; confirm before starting over.
			d.OnSingleTapConfirmed(TapDetails{Position: d.pendingTap.Position, Event: d.pendingTap})
		}
	}
	d.active = true
	d.pointer = event.PointerID
	d.down = event
	d.last = event.Position
	d.inTapRegion = true
	d.tracker.Reset()
	d.tracker.Add(event.Position, event.Time)
	if d.OnDown != nil {
		d.OnDown(event)
	}
}

func (d *Detector) handleMove(event PointerEvent) {
	d.tracker.Add(event.Position, event.Time)
	distance := graphics.Offset{
		X: d.last.X - event.Position.X,
		Y: d.last.Y - event.Position.Y,
	}
	if d.inTapRegion {
		dx := event.Position.X - d.down.Position.X
		dy := event.Position.Y - d.down.Position.Y
		if dx*dx+dy*dy <= d.Config.TouchSlop*d.Config.TouchSlop {
			return
		}
		d.inTapRegion = false
	}
	if distance.X == 0 && distance.Y == 0 {
		return
	}
	d.last = event.Position
	if d.OnScroll != nil {
		d.OnScroll(ScrollDetails{Down: d.down, Current: event, Distance: distance})
	}
}

func (d *Detector) handleUp(event PointerEvent) {
	d.tracker.Add(event.Position, event.Time)
	d.active = false
	if d.OnUp != nil {
		d.OnUp(event)
	}
	switch {
	case d.doubleTap:
		d.doubleTap = false
		if d.inTapRegion && d.OnDoubleTap != nil {
			d.OnDoubleTap(TapDetails{Position: event.Position, Event: event})
		}
	case d.inTapRegion:
		tap := d.down
		tap.Time = event.Time
		deadline := d.down.Time.Add(d.Config.DoubleTapTimeout)
		if !event.Time.Before(deadline) {
			if d.OnSingleTapConfirmed != nil {
				d.OnSingleTapConfirmed(TapDetails{Position: tap.Position, Event: tap})
			}
			return
		}
		d.pending = true
		d.pendingTap = tap
		d.pendingDeadline = deadline
	default:
		velocity := d.tracker.Velocity()
		if math.Abs(velocity.X) < d.Config.MinFlingVelocity && math.Abs(velocity.Y) < d.Config.MinFlingVelocity {
			return
		}
		velocity.X = clampMagnitude(velocity.X, d.Config.MaxFlingVelocity)
		velocity.Y = clampMagnitude(velocity.Y, d.Config.MaxFlingVelocity)
		if d.OnFling != nil {
			d.OnFling(FlingDetails{Down: d.down, Up: event, Velocity: velocity})
		}
	}
}

func (d *Detector) handleCancel() {
	d.active = false
	d.doubleTap = false
	d.pending = false
	d.tracker.Reset()
	if d.OnCancel != nil {
		d.OnCancel()
	}
}

func clampMagnitude(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
