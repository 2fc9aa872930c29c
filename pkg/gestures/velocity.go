package gestures

import (
	"time"

	"github.com/go-drift/looplist/pkg/graphics"
)

const (
	// velocityHorizon is how far back samples contribute to the estimate.
	velocityHorizon = 100 * time.Millisecond
	// maxSamples bounds the ring of retained samples.
	maxSamples = 20
)

type sample struct {
	position graphics.Offset
	time     time.Time
}

// VelocityTracker estimates pointer velocity from recent samples with a
// least-squares line fit per axis.
type VelocityTracker struct {
	samples []sample
}

// Reset discards all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records a position at time t.
func (v *VelocityTracker) Add(position graphics.Offset, t time.Time) {
	if len(v.samples) == maxSamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:maxSamples-1]
	}
	v.samples = append(v.samples, sample{position: position, time: t})
}

// Velocity returns the estimated velocity in px/s. Fewer than two samples
// inside the horizon yield zero.
func (v *VelocityTracker) Velocity() graphics.Offset {
	if len(v.samples) < 2 {
		return graphics.Offset{}
	}
	newest := v.samples[len(v.samples)-1].time
	var n, sumT, sumX, sumY, sumTT, sumTX, sumTY float64
	for _, s := range v.samples {
		age := newest.Sub(s.time)
		if age > velocityHorizon {
			continue
		}
		t := -age.Seconds()
		n++
		sumT += t
		sumX += s.position.X
		sumY += s.position.Y
		sumTT += t * t
		sumTX += t * s.position.X
		sumTY += t * s.position.Y
	}
	if n < 2 {
		return graphics.Offset{}
	}
	denom := n*sumTT - sumT*sumT
	if denom == 0 {
		return graphics.Offset{}
	}
	return graphics.Offset{
		X: (n*sumTX - sumT*sumX) / denom,
		Y: (n*sumTY - sumT*sumY) / denom,
	}
}
