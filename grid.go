package so3grid

import "log"

// UniformGridOptions configures a full SO(3) search grid. All angles and
// steps are in degrees.
//
// PhiMin/PhiMax bound the azimuthal extent of the base sphere grid and
// PsiMin/PsiMax/PsiStep the independently stepped in-plane sequence. In the
// output triples the in-plane samples occupy the Phi slot and the sphere
// point azimuths the Psi slot; this mirrors the convention expected by
// downstream projection code and is fixed.
type UniformGridOptions struct {
	PsiStep   float64 // in-plane step; always required
	ThetaStep float64 // polar step; sizes the base grid
	PhiStep   float64 // explicit azimuth step; cartesian strategy only

	PhiMin   float64
	PhiMax   float64
	ThetaMin float64
	ThetaMax float64
	PsiMin   float64
	PsiMax   float64

	Strategy Strategy

	// Oracle overrides the pixelization oracle for the healpix strategy.
	// Nil selects the built-in RING pixelizer.
	Oracle Pixelizer

	// Warnf receives non-fatal warnings, e.g. an ignored PhiStep. Nil
	// routes them to log.Printf.
	Warnf func(format string, args ...any)
}

// DefaultUniformGridOptions covers the full sphere and the full in-plane
// circle at 2.5 degree polar and 1.5 degree in-plane resolution.
func DefaultUniformGridOptions() UniformGridOptions {
	return UniformGridOptions{
		PsiStep:   1.5,
		ThetaStep: 2.5,
		PhiMin:    0,
		PhiMax:    360,
		ThetaMin:  0,
		ThetaMax:  180,
		PsiMin:    0,
		PsiMax:    360,
		Strategy:  StrategyUniform,
	}
}

func (o UniformGridOptions) warnf(format string, args ...any) {
	if o.Warnf != nil {
		o.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// baseGridder resolves the strategy selector into a configured generator.
func (o UniformGridOptions) baseGridder() (BaseGridder, error) {
	switch o.Strategy {
	case StrategyUniform:
		return UniformGrid{ThetaStep: o.ThetaStep}, nil
	case StrategyHealpix:
		oracle := o.Oracle
		if oracle == nil {
			oracle = RingPixelizer{}
		}
		return HealpixGrid{ThetaStep: o.ThetaStep, Oracle: oracle}, nil
	case StrategyCartesian:
		return CartesianGrid{ThetaStep: o.ThetaStep, PhiStep: o.PhiStep}, nil
	default:
		return nil, NewUnknownStrategyError(o.Strategy)
	}
}

// UniformEulerAngles generates Euler angle triples approximately uniformly
// covering the requested region of SO(3). The base sphere grid is generated
// by the selected strategy; the in-plane sequence steps independently over
// [PsiMin, PsiMax), collapsing to a single sample at PsiMin when the range
// is degenerate. The in-plane sequence is the slow (outer) index: each of
// its values is paired with the entire sphere point set in order.
func UniformEulerAngles(o UniformGridOptions) ([]Triple, error) {
	gridder, err := o.baseGridder()
	if err != nil {
		return nil, err
	}
	if o.Strategy != StrategyCartesian && o.PhiStep != 0 {
		o.warnf("so3grid: phi step %g ignored by %s base grid, azimuth step is derived from theta step",
			o.PhiStep, gridder.Name())
	}

	base, err := gridder.Points(o.ThetaMin, o.ThetaMax, o.PhiMin, o.PhiMax)
	if err != nil {
		return nil, err
	}

	inPlane := stepRange(o.PsiMin, o.PsiMax, o.PsiStep)
	if len(inPlane) == 0 {
		inPlane = []float64{o.PsiMin}
	}

	angles := make([]Triple, 0, len(inPlane)*len(base))
	for _, p := range inPlane {
		for _, sp := range base {
			angles = append(angles, Triple{Phi: p, Theta: sp.Theta, Psi: sp.Phi})
		}
	}
	return angles, nil
}
