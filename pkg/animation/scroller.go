package animation

import (
	"fmt"
	"math"
	"time"
)

// ScrollMode identifies the trajectory a Scroller is running.
type ScrollMode int

const (
	// ScrollModeIdle means no trajectory has been started.
	ScrollModeIdle ScrollMode = iota
	// ScrollModeTimed is a fixed-duration scroll by a known delta.
	ScrollModeTimed
	// ScrollModeFling is a decelerating scroll seeded with a velocity.
	ScrollModeFling
)

// String returns a human-readable representation of the scroll mode.
func (m ScrollMode) String() string {
	switch m {
	case ScrollModeIdle:
		return "idle"
	case ScrollModeTimed:
		return "timed"
	case ScrollModeFling:
		return "fling"
	default:
		return fmt.Sprintf("ScrollMode(%d)", int(m))
	}
}

// Friction tunes fling deceleration. The deceleration applied at velocity v
// is Base + Drag*|v| in px/s², so fast flings shed speed quicker than slow ones.
type Friction struct {
	// Base is the constant part of the deceleration in px/s².
	Base float64
	// Drag scales the velocity-proportional part of the deceleration.
	Drag float64
	// RestVelocity is the speed in px/s below which a fling stops.
	RestVelocity float64
}

// DefaultFriction matches the platform fling feel used by ScrollView.
func DefaultFriction() Friction {
	return Friction{Base: 2200, Drag: 0.385, RestVelocity: 5}
}

// maxStep bounds each integration step of a fling so the trajectory does
// not depend on frame pacing.
const maxStep = 16 * time.Millisecond

// Scroller computes scroll offsets over time for timed scrolls and flings.
//
// A Scroller does not move anything by itself: the owner calls
// ComputeOffset once per frame and applies the returned offset while the
// second result is true. The first call after a trajectory reaches its end
// still reports true with the final offset; the next call reports false.
//
// Scroller reads time from the package clock (see [SetClock]).
type Scroller struct {
	// Curve eases timed scrolls. Defaults to ViscousFluid when nil.
	Curve func(float64) float64

	// Friction controls fling deceleration.
	Friction Friction

	mode     ScrollMode
	finished bool

	start    float64
	final    float64
	current  float64
	delta    float64
	began    time.Time
	duration time.Duration

	velocity float64
	min      float64
	max      float64
	lastStep time.Time
}

// NewScroller returns a finished Scroller with default friction.
func NewScroller() *Scroller {
	return &Scroller{
		Friction: DefaultFriction(),
		finished: true,
	}
}

// IsFinished reports whether the current trajectory has completed.
func (s *Scroller) IsFinished() bool {
	return s.finished
}

// Mode returns the kind of trajectory last started.
func (s *Scroller) Mode() ScrollMode {
	return s.mode
}

// FinalOffset returns where a timed scroll ends. For a fling it returns the
// offset the fling will come to rest at under constant friction, estimated
// from the current velocity.
func (s *Scroller) FinalOffset() float64 {
	if s.mode == ScrollModeFling && !s.finished {
		return clampRange(s.current+s.restDistance(s.velocity), s.min, s.max)
	}
	return s.final
}

// Velocity returns the current fling velocity in px/s, or zero.
func (s *Scroller) Velocity() float64 {
	if s.mode != ScrollModeFling || s.finished {
		return 0
	}
	return s.velocity
}

// ForceFinish stops the trajectory where it is. The current offset is kept.
func (s *Scroller) ForceFinish() {
	s.finished = true
	s.velocity = 0
	s.final = s.current
}

// StartScroll begins a timed scroll from start by delta over duration.
// A non-positive duration jumps straight to the end on the next frame.
func (s *Scroller) StartScroll(start, delta float64, duration time.Duration) {
	s.mode = ScrollModeTimed
	s.finished = false
	s.start = start
	s.current = start
	s.delta = delta
	s.final = start + delta
	s.duration = duration
	s.began = Now()
}

// Fling begins a decelerating scroll from start with velocity in px/s.
// The offset is confined to [min, max]; pass ±math.MaxFloat64 for an
// unbounded fling.
func (s *Scroller) Fling(start, velocity, min, max float64) {
	if max < min {
		min, max = max, min
	}
	s.mode = ScrollModeFling
	s.finished = false
	s.start = start
	s.current = start
	s.velocity = sanitizeVelocity(velocity)
	s.min = min
	s.max = max
	s.began = Now()
	s.lastStep = s.began
	s.final = clampRange(start+s.restDistance(s.velocity), min, max)
	if math.Abs(s.velocity) < s.Friction.RestVelocity {
		s.finished = true
		s.final = start
	}
}

// ComputeOffset advances the trajectory to the current clock time and
// returns the offset and whether the caller should keep animating.
func (s *Scroller) ComputeOffset() (float64, bool) {
	if s.finished {
		return s.current, false
	}
	now := Now()
	switch s.mode {
	case ScrollModeTimed:
		s.stepTimed(now)
	case ScrollModeFling:
		s.stepFling(now)
	default:
		s.finished = true
	}
	return s.current, true
}

func (s *Scroller) stepTimed(now time.Time) {
	elapsed := now.Sub(s.began)
	if s.duration <= 0 || elapsed >= s.duration {
		s.current = s.final
		s.finished = true
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}
	curve := s.Curve
	if curve == nil {
		curve = ViscousFluid
	}
	progress := float64(elapsed) / float64(s.duration)
	s.current = s.start + s.delta*curve(progress)
}

func (s *Scroller) stepFling(now time.Time) {
	if now.Before(s.lastStep) {
		s.lastStep = now
		return
	}
	remaining := now.Sub(s.lastStep)
	s.lastStep = now
	for remaining > 0 && !s.finished {
		step := remaining
		if step > maxStep {
			step = maxStep
		}
		remaining -= step
		s.advance(step.Seconds())
	}
}

func (s *Scroller) advance(dt float64) {
	velocity := s.velocity
	decel := s.Friction.Base + s.Friction.Drag*math.Abs(velocity)
	if velocity > 0 {
		velocity -= decel * dt
		if velocity < 0 {
			velocity = 0
		}
	} else if velocity < 0 {
		velocity += decel * dt
		if velocity > 0 {
			velocity = 0
		}
	}
	offset := s.current + (s.velocity+velocity)*0.5*dt
	clamped := clampRange(offset, s.min, s.max)
	s.velocity = velocity
	s.current = clamped
	if clamped != offset || math.Abs(velocity) < s.Friction.RestVelocity {
		s.velocity = 0
		s.final = s.current
		s.finished = true
	}
}

// restDistance estimates how far a fling at velocity v travels before
// stopping, using only the constant part of the deceleration. The estimate
// overshoots the integrated trajectory and is only used for FinalOffset.
func (s *Scroller) restDistance(v float64) float64 {
	if s.Friction.Base <= 0 {
		return 0
	}
	d := v * v / (2 * s.Friction.Base)
	if v < 0 {
		return -d
	}
	return d
}

func sanitizeVelocity(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clampRange(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
