package animation

import "math"

// Easing curves map linear progress t in [0, 1] onto eased progress.
// A [Scroller] applies its Curve to timed scrolls such as snap-to-center.

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut starts quickly and decelerates.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1.0 / viscousFluid(1.0)
	viscousFluidOffset    = 1.0 - viscousFluidNormalize*viscousFluid(1.0)
)

// ViscousFluid is the default curve for timed scrolls: an exponential
// approach that moves quickly at first and settles gently, as if the
// content were dragged through a viscous fluid.
func ViscousFluid(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	v := viscousFluidNormalize * viscousFluid(t)
	if v > 0 {
		return v + viscousFluidOffset
	}
	return v
}

func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		return x - (1.0 - math.Exp(-x))
	}
	start := 0.36787944117 // 1/e == exp(-1)
	x = 1.0 - math.Exp(1.0-x)
	return start + x*(1.0-start)
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
