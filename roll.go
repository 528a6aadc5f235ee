package so3grid

import "math"

// RollGridOptions configures a grid of rotations composed of an in-plane
// rotation and a roll about an axis lying in the equatorial plane. All
// values in degrees.
type RollGridOptions struct {
	PsiStep float64 // in-plane step
	PsiMin  float64
	PsiMax  float64

	ThetaStep float64 // roll amount step
	ThetaMin  float64
	ThetaMax  float64

	// Axis, when set, fixes the roll axis to the direction of this 2D
	// vector; its angle is normalized into [0, 180). When nil, candidate
	// axes are swept over [0, 180) at AxisStep.
	Axis     *[2]float64
	AxisStep float64
}

// DefaultRollGridOptions sweeps roll axes at 2 degree spacing, rolls up to
// +/-10 degrees and in-plane rotations up to +/-30 degrees.
func DefaultRollGridOptions() RollGridOptions {
	return RollGridOptions{
		PsiStep:   1.5,
		PsiMin:    -30,
		PsiMax:    30,
		ThetaStep: 0.5,
		ThetaMin:  -10,
		ThetaMax:  10,
		AxisStep:  2,
	}
}

// RollAngles enumerates Euler triples for every combination of roll axis r,
// roll amount theta and in-plane amount p. Each in-plane rotation by p is
// decomposed into two complementary rotations bracketing the roll about r:
// the output triple is (phi, theta, psi) = ((r+p) mod 360, theta, 360-r).
// Ordering: roll axis outermost, then theta, then psi innermost. The psi
// and theta sequences include both endpoints.
func RollAngles(o RollGridOptions) ([]Triple, error) {
	var axes []float64
	if o.Axis != nil {
		r := wrapDegrees(degrees(math.Atan2(o.Axis[1], o.Axis[0])), 180)
		axes = []float64{r}
	} else {
		if o.AxisStep <= 0 {
			return nil, ErrNonPositiveAxisStep
		}
		axes = stepRange(0, 180, o.AxisStep)
	}

	thetas := stepRange(o.ThetaMin, o.ThetaMax+o.ThetaStep, o.ThetaStep)
	psis := stepRange(o.PsiMin, o.PsiMax+o.PsiStep, o.PsiStep)

	angles := make([]Triple, 0, len(axes)*len(thetas)*len(psis))
	for _, r := range axes {
		for _, theta := range thetas {
			for _, p := range psis {
				angles = append(angles, Triple{
					Phi:   wrapDegrees(r+p, 360),
					Theta: theta,
					Psi:   360 - r,
				})
			}
		}
	}
	return angles, nil
}
