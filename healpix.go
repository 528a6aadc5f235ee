package so3grid

import "math"

// maxNside bounds the linear nside search. Steps fine enough to need more
// pixels than 12*36^2 are out of range for the healpix strategy.
const maxNside = 36

// filterBatch is the number of pixel centers requested from the oracle per
// call, capping transient memory on very large pixelizations.
const filterBatch = 256

// Pixelizer is the pixelization oracle behind the healpix base grid: given
// an nside resolution parameter and a list of RING-scheme pixel indices, it
// returns each pixel center as a (colatitude, azimuth) pair in radians.
type Pixelizer interface {
	Centers(nside int, pixels []int) ([][2]float64, error)
}

// RingPixelizer computes RING-scheme HEALPix pixel centers directly, for
// arbitrary nside (the resolutions needed here are not powers of two).
type RingPixelizer struct{}

func (RingPixelizer) Centers(nside int, pixels []int) ([][2]float64, error) {
	centers := make([][2]float64, len(pixels))
	for i, p := range pixels {
		theta, phi := ringPixelCenter(nside, p)
		centers[i] = [2]float64{theta, phi}
	}
	return centers, nil
}

// ringPixelCenter returns the (colatitude, azimuth) center of RING-scheme
// pixel p, in radians, following Gorski et al. (2005).
func ringPixelCenter(nside, p int) (float64, float64) {
	npix := 12 * nside * nside
	ncap := 2 * nside * (nside - 1)

	var z, phi float64
	switch {
	case p < ncap: // north polar cap
		hip := float64(p+1) / 2
		iring := int(math.Sqrt(hip-math.Sqrt(math.Floor(hip)))) + 1
		iphi := (p + 1) - 2*iring*(iring-1)
		z = 1 - float64(iring*iring)/(3*float64(nside*nside))
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))
	case p < npix-ncap: // equatorial belt
		ip := p - ncap
		iring := ip/(4*nside) + nside
		iphi := ip%(4*nside) + 1
		fodd := 0.5 * float64(1+(iring+nside)%2)
		z = float64(2*nside-iring) * 2 / (3 * float64(nside))
		phi = (float64(iphi) - fodd) * math.Pi / (2 * float64(nside))
	default: // south polar cap
		ip := npix - p
		hip := float64(ip) / 2
		iring := int(math.Sqrt(hip-math.Sqrt(math.Floor(hip)))) + 1
		iphi := 4*iring + 1 - (ip - 2*iring*(iring-1))
		z = -1 + float64(iring*iring)/(3*float64(nside*nside))
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(iring))
	}
	return math.Acos(math.Max(-1, math.Min(1, z))), phi
}

// HealpixGrid generates base grids from HEALPix pixel centers. ThetaStep
// sizes the pixelization; Oracle supplies pixel centers and must be
// non-nil for the strategy to be available.
type HealpixGrid struct {
	ThetaStep float64
	Oracle    Pixelizer
}

func (g HealpixGrid) Name() string {
	return "healpix"
}

// Available reports whether a pixelization oracle is configured.
func (g HealpixGrid) Available() bool {
	return g.Oracle != nil
}

func (g HealpixGrid) Points(thetaMin, thetaMax, phiMin, phiMax float64) ([]SpherePoint, error) {
	if g.Oracle == nil {
		return nil, ErrPixelizerUnavailable
	}

	stepRad := radians(g.ThetaStep)
	estimated := int(4 * math.Pi / (stepRad * stepRad))

	// Smallest nside whose pixel count covers the estimate, searched
	// linearly below the ceiling.
	nside := int(math.Ceil(math.Sqrt(float64(estimated) / 12)))
	exact := 0
	for ; nside < maxNside; nside++ {
		exact = 12 * nside * nside
		if exact >= estimated {
			break
		}
	}
	if exact < estimated {
		return nil, NewNoValidResolutionError(estimated, maxNside)
	}

	// Fetch and filter pixel centers in bounded batches.
	points := make([]SpherePoint, 0, exact)
	batch := make([]int, 0, filterBatch)
	for start := 0; start < exact; start += filterBatch {
		end := start + filterBatch
		if end > exact {
			end = exact
		}
		batch = batch[:0]
		for p := start; p < end; p++ {
			batch = append(batch, p)
		}
		centers, err := g.Oracle.Centers(nside, batch)
		if err != nil {
			return nil, err
		}
		for _, c := range centers {
			theta := degrees(c[0])
			phi := degrees(c[1])
			if theta >= thetaMin && theta <= thetaMax && phi >= phiMin && phi <= phiMax {
				points = append(points, SpherePoint{Phi: phi, Theta: theta})
			}
		}
	}
	return points, nil
}

// HealpixBaseGrid generates a HEALPix base grid over the requested domain
// using the built-in RING pixelizer. All angles are degrees.
func HealpixBaseGrid(thetaStep, thetaMin, thetaMax, phiMin, phiMax float64) ([]SpherePoint, error) {
	return HealpixGrid{ThetaStep: thetaStep, Oracle: RingPixelizer{}}.Points(thetaMin, thetaMax, phiMin, phiMax)
}
