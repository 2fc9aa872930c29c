package loop

import (
	"time"

	"github.com/go-drift/looplist/pkg/gestures"
)

const (
	// DefaultSnapDuration is how long the snap-to-center animation runs.
	DefaultSnapDuration = time.Second
	// DefaultMaxFillPerPass bounds consecutive zero-height realizations in
	// one layout pass.
	DefaultMaxFillPerPass = 256
)

// Options configure a View.
type Options struct {
	// SnapDuration is the duration of the snap-to-center animation.
	// Zero snaps in a single frame.
	SnapDuration time.Duration
	// Overscan extends the viewport by this many pixels at both ends when
	// deciding which children to keep and realize.
	Overscan float64
	// SnapOnRelease snaps as soon as the pointer lifts, in addition to
	// after a fling settles.
	SnapOnRelease bool
	// MaxFillPerPass caps how many children in a row a layout pass may
	// realize without moving its fill edge. It only matters for
	// zero-height children.
	MaxFillPerPass int
	// Gestures configures tap, scroll and fling recognition.
	Gestures gestures.Config
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		SnapDuration:   DefaultSnapDuration,
		SnapOnRelease:  true,
		MaxFillPerPass: DefaultMaxFillPerPass,
		Gestures:       gestures.DefaultConfig(),
	}
}

func (o Options) normalized() Options {
	if o.SnapDuration < 0 {
		o.SnapDuration = DefaultSnapDuration
	}
	if o.Overscan < 0 {
		o.Overscan = 0
	}
	if o.MaxFillPerPass <= 0 {
		o.MaxFillPerPass = DefaultMaxFillPerPass
	}
	return o
}
