package loop

import (
	"time"

	"github.com/go-drift/looplist/pkg/animation"
)

// Animator produces scroll offsets over time for flings and snaps.
// [animation.Scroller] is the default implementation.
type Animator interface {
	// ForceFinish stops the current trajectory at its current offset.
	ForceFinish()
	// Fling starts a decelerating scroll from start with velocity in px/s,
	// confined to [min, max].
	Fling(start, velocity, min, max float64)
	// StartScroll starts a timed scroll from start by delta.
	StartScroll(start, delta float64, duration time.Duration)
	// ComputeOffset advances to the current time. running is false once
	// the trajectory has finished and its final offset was delivered.
	ComputeOffset() (offset float64, running bool)
	// IsFinished reports whether the trajectory has completed.
	IsFinished() bool
}

var _ Animator = (*animation.Scroller)(nil)

// Trajectory is implemented by animators that can describe the run in
// progress. The view adds it to its fling debug events.
type Trajectory interface {
	Mode() animation.ScrollMode
	FinalOffset() float64
}

var _ Trajectory = (*animation.Scroller)(nil)
