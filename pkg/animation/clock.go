// Package animation computes scroll trajectories over time: timed scrolls
// eased by a curve, and flings that decelerate under friction.
//
// Time is read from a replaceable package clock so tests can step
// animations frame by frame.
package animation

import (
	"sync"
	"time"
)

// Clock provides time for scroll animations. The default implementation
// uses system time. Tests can inject a fake clock via SetClock to step
// flings and timed scrolls deterministically.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var (
	clockMu sync.RWMutex
	// clock is the package-level time source, replaceable for testing.
	clock Clock = realClock{}
)

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	clockMu.Lock()
	defer clockMu.Unlock()
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	clockMu.RLock()
	c := clock
	clockMu.RUnlock()
	return c.Now()
}
