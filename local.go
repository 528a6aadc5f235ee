package so3grid

// LocalGridOptions configures a high-resolution refinement grid around the
// identity orientation (0, 0, 0). Coarse steps give the extent of the
// neighborhood to cover, fine steps its resolution. All values in degrees.
type LocalGridOptions struct {
	CoarsePhiStep   float64
	CoarseThetaStep float64
	CoarsePsiStep   float64
	FinePhiStep     float64
	FineThetaStep   float64
	FinePsiStep     float64

	Strategy Strategy
	Oracle   Pixelizer
	Warnf    func(format string, args ...any)
}

// DefaultLocalGridOptions refines a default coarse search (1.5/2.5/1.5) at
// 0.1 degree resolution.
func DefaultLocalGridOptions() LocalGridOptions {
	return LocalGridOptions{
		CoarsePhiStep:   1.5,
		CoarseThetaStep: 2.5,
		CoarsePsiStep:   1.5,
		FinePhiStep:     0.1,
		FineThetaStep:   0.1,
		FinePsiStep:     0.1,
		Strategy:        StrategyUniform,
	}
}

// LocalHighResolutionAngles generates a fine grid sampling a small angular
// disk around the pole plus a bounded in-plane range, for coarse-to-fine
// orientation refinement. The caller is expected to rigid-rotate the
// result onto a candidate orientation, typically via ComposeAll with the
// candidate's rotation matrix.
//
// Non-cartesian strategies sample the full azimuth around the pole, since
// their base grids already contract rings toward it; the cartesian
// strategy instead restricts the azimuth to a narrow band and extends
// theta symmetrically below the pole. The in-plane range carries a 1e-6
// degree upper pad so that +CoarsePsiStep itself is sampled despite the
// exclusive upper bound of the in-plane sequence.
func LocalHighResolutionAngles(o LocalGridOptions) ([]Triple, error) {
	u := UniformGridOptions{
		PsiStep:   o.FinePsiStep,
		ThetaStep: o.FineThetaStep,
		PhiMin:    0,
		PhiMax:    360,
		ThetaMin:  0,
		ThetaMax:  o.CoarseThetaStep,
		PsiMin:    -o.CoarsePsiStep,
		PsiMax:    o.CoarsePsiStep + boundEpsilon,
		Strategy:  o.Strategy,
		Oracle:    o.Oracle,
		Warnf:     o.Warnf,
	}
	if o.Strategy == StrategyCartesian {
		u.PhiStep = o.FinePhiStep
		u.PhiMin = -o.CoarsePhiStep
		u.PhiMax = o.CoarsePhiStep
		u.ThetaMin = -o.CoarseThetaStep
	}
	return UniformEulerAngles(u)
}

// refineEpsilon stands in for a zero-width azimuth span in
// IncreasedResolutionGrid; the base grid collapses it to a single sample.
const refineEpsilon = 1e-10

// IncreasedResolutionGrid is the older refinement sampler: it shrinks the
// coarse ranges by one fine step on each side, so refined samples do not
// repeat the coarse grid's own, and skips the azimuth sweep entirely.
func IncreasedResolutionGrid(coarsePsiStep, coarseThetaStep, finePsiStep, fineThetaStep float64) ([]Triple, error) {
	return UniformEulerAngles(UniformGridOptions{
		PsiStep:   finePsiStep,
		ThetaStep: fineThetaStep,
		PhiMin:    0,
		PhiMax:    refineEpsilon,
		ThetaMin:  -coarseThetaStep + fineThetaStep,
		ThetaMax:  coarseThetaStep - fineThetaStep,
		PsiMin:    -coarsePsiStep + finePsiStep,
		PsiMax:    coarsePsiStep - finePsiStep,
		Strategy:  StrategyUniform,
	})
}
