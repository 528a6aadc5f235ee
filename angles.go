package so3grid

import "math"

// Triple is a ZYZ intrinsic Euler angle triple in degrees: first rotate by
// Phi about Z, then by Theta about the new Y, then by Psi about the
// resulting Z. Angles may lie outside canonical ranges; consumers are
// expected to tolerate that.
type Triple struct {
	Phi   float64
	Theta float64
	Psi   float64
}

// SpherePoint is a point on the unit sphere, in degrees: Phi is the azimuth
// and Theta the polar angle (colatitude).
type SpherePoint struct {
	Phi   float64
	Theta float64
}

// sinEpsilon keeps the per-ring azimuth step finite at the poles, where
// sin(theta) vanishes.
const sinEpsilon = 1e-6

// boundEpsilon, added to an upper range bound in degrees, makes a closed
// interval survive the exclusive-upper-bound stepRange generation.
const boundEpsilon = 1e-6

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// stepRange returns lo + i*step for i in [0, ceil((hi-lo)/step)). The count
// is ceil((hi-lo)/step), so the last sample can land on or slightly past hi
// when (hi-lo)/step rounds up under floating point. Downstream row counts
// depend on this exact behavior.
func stepRange(lo, hi, step float64) []float64 {
	n := int(math.Ceil((hi - lo) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// wrapDegrees reduces an angle in degrees into [0, period).
func wrapDegrees(deg, period float64) float64 {
	m := math.Mod(deg, period)
	if m < 0 {
		m += period
	}
	return m
}
