package so3grid

import "math"

// Strategy selects how the base grid on the 2-sphere is generated.
type Strategy int

const (
	// StrategyUniform modulates the per-ring azimuth step by sin(theta) so
	// point density stays approximately uniform in solid angle.
	StrategyUniform Strategy = iota
	// StrategyHealpix takes pixel centers from a HEALPix pixelization and
	// filters them to the requested domain.
	StrategyHealpix
	// StrategyCartesian steps phi and theta independently; cheap, but
	// oversamples near the poles.
	StrategyCartesian
)

func (s Strategy) String() string {
	switch s {
	case StrategyUniform:
		return "uniform"
	case StrategyHealpix:
		return "healpix"
	case StrategyCartesian:
		return "cartesian"
	default:
		return "unknown"
	}
}

// ParseStrategy resolves a strategy name as used in search plans.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "uniform":
		return StrategyUniform, nil
	case "healpix":
		return StrategyHealpix, nil
	case "cartesian":
		return StrategyCartesian, nil
	default:
		return 0, NewStrategyNameError(name)
	}
}

// BaseGridder produces sphere points approximately covering a rectangular
// (phi, theta) domain, given in degrees. Implementations carry their own
// step configuration.
type BaseGridder interface {
	Name() string
	Points(thetaMin, thetaMax, phiMin, phiMax float64) ([]SpherePoint, error)
}

// UniformGrid generates rings of sphere points whose azimuth step grows as
// the rings approach a pole, keeping density roughly uniform in solid
// angle. ThetaStep is the polar step in degrees.
type UniformGrid struct {
	ThetaStep float64
}

func (g UniformGrid) Name() string {
	return "uniform"
}

func (g UniformGrid) Points(thetaMin, thetaMax, phiMin, phiMax float64) ([]SpherePoint, error) {
	stepRad := radians(g.ThetaStep)
	phiMinRad := radians(phiMin)
	phiMaxRad := radians(phiMax)
	span := phiMaxRad - phiMinRad

	// The last ring may overshoot thetaMax by up to one step; callers
	// tolerate that, and downstream row counts depend on it.
	thetas := stepRange(thetaMin, thetaMax+g.ThetaStep, g.ThetaStep)

	points := make([]SpherePoint, 0, len(thetas))
	for _, theta := range thetas {
		if span <= 0 {
			points = append(points, SpherePoint{Phi: phiMin, Theta: theta})
			continue
		}
		step := math.Abs(stepRad / (math.Sin(radians(theta)) + sinEpsilon))
		if step > span {
			step = span
		}
		// Snap so an integer number of steps tiles the azimuth span.
		step = span / math.Round(span/step)
		for _, phi := range stepRange(phiMinRad, phiMaxRad, step) {
			points = append(points, SpherePoint{Phi: degrees(phi), Theta: theta})
		}
	}
	return points, nil
}

// CartesianGrid steps phi and theta independently over the requested
// rectangle. Both steps are in degrees and both are required.
type CartesianGrid struct {
	ThetaStep float64
	PhiStep   float64
}

func (g CartesianGrid) Name() string {
	return "cartesian"
}

func (g CartesianGrid) Points(thetaMin, thetaMax, phiMin, phiMax float64) ([]SpherePoint, error) {
	thetas := stepRange(thetaMin, thetaMax+g.ThetaStep, g.ThetaStep)
	phis := stepRange(radians(phiMin), radians(phiMax), radians(g.PhiStep))
	if len(phis) == 0 {
		phis = []float64{radians(phiMin)}
	}
	points := make([]SpherePoint, 0, len(thetas)*len(phis))
	for _, theta := range thetas {
		for _, phi := range phis {
			points = append(points, SpherePoint{Phi: degrees(phi), Theta: theta})
		}
	}
	return points, nil
}

// UniformBaseGrid generates a sin(theta)-modulated uniform base grid over
// the requested domain. All angles are degrees.
func UniformBaseGrid(thetaStep, thetaMin, thetaMax, phiMin, phiMax float64) []SpherePoint {
	points, _ := UniformGrid{ThetaStep: thetaStep}.Points(thetaMin, thetaMax, phiMin, phiMax)
	return points
}

// CartesianBaseGrid generates a plain rectangular base grid over the
// requested domain. All angles are degrees.
func CartesianBaseGrid(thetaStep, phiStep, thetaMin, thetaMax, phiMin, phiMax float64) []SpherePoint {
	points, _ := CartesianGrid{ThetaStep: thetaStep, PhiStep: phiStep}.Points(thetaMin, thetaMax, phiMin, phiMax)
	return points
}
