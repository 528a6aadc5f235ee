package so3grid

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The matrix convention is intrinsic ZYZ with left-handed elementary
// rotations: R = Rz(phi) * Ry(theta) * Rz(psi), where
//
//	Rz(a) = [ cos a  sin a  0 ]      Ry(a) = [ cos a  0  -sin a ]
//	        [-sin a  cos a  0 ]              [   0    1     0   ]
//	        [   0      0    1 ]              [ sin a  0   cos a ]
//
// MatricesToEuler is the exact inverse of EulerToMatrices under this
// convention.

// EulerToMatrix converts a single Euler triple to a fresh 3x3 rotation
// matrix.
func EulerToMatrix(t Triple) *mat.Dense {
	c1, s1 := math.Cos(radians(t.Phi)), math.Sin(radians(t.Phi))
	c2, s2 := math.Cos(radians(t.Theta)), math.Sin(radians(t.Theta))
	c3, s3 := math.Cos(radians(t.Psi)), math.Sin(radians(t.Psi))
	return mat.NewDense(3, 3, []float64{
		c1*c2*c3 - s1*s3, c1*c2*s3 + s1*c3, -c1 * s2,
		-s1*c2*c3 - c1*s3, -s1*c2*s3 + c1*c3, s1 * s2,
		s2 * c3, s2 * s3, c2,
	})
}

// EulerToMatrices converts each Euler triple to a 3x3 rotation matrix.
// Every call produces a fresh, independent set.
func EulerToMatrices(angles []Triple) []*mat.Dense {
	matrices := make([]*mat.Dense, len(angles))
	for i, t := range angles {
		matrices[i] = EulerToMatrix(t)
	}
	return matrices
}

// gimbalEps bounds sin(theta) below which phi and psi degenerate into a
// single rotation about Z.
const gimbalEps = 1e-8

// MatrixToEuler recovers the Euler triple of a rotation matrix. At the
// gimbal singularities (theta near 0 or 180 degrees) the combined in-plane
// rotation is folded into phi and psi is set to zero.
func MatrixToEuler(m mat.Matrix) Triple {
	c2 := math.Max(-1, math.Min(1, m.At(2, 2)))
	theta := math.Acos(c2)
	if math.Sin(theta) > gimbalEps {
		return Triple{
			Phi:   degrees(math.Atan2(m.At(1, 2), -m.At(0, 2))),
			Theta: degrees(theta),
			Psi:   degrees(math.Atan2(m.At(2, 1), m.At(2, 0))),
		}
	}
	if c2 > 0 {
		return Triple{Phi: degrees(math.Atan2(m.At(0, 1), m.At(0, 0))), Theta: degrees(theta)}
	}
	return Triple{Phi: degrees(math.Atan2(m.At(0, 1), -m.At(0, 0))), Theta: degrees(theta)}
}

// MatricesToEuler recovers the Euler triple of each rotation matrix.
func MatricesToEuler(matrices []*mat.Dense) []Triple {
	angles := make([]Triple, len(matrices))
	for i, m := range matrices {
		angles[i] = MatrixToEuler(m)
	}
	return angles
}

// ComposeAll applies each of the m rotation matrices to each of the n base
// matrices, returning the full m-by-n set of pairwise products:
// result[i][j] = rotations[i] * base[j]. Inputs are never mutated.
func ComposeAll(base []*mat.Dense, rotations []*mat.Dense) [][]*mat.Dense {
	products := make([][]*mat.Dense, len(rotations))
	for i, r := range rotations {
		row := make([]*mat.Dense, len(base))
		for j, b := range base {
			p := mat.NewDense(3, 3, nil)
			p.Mul(r, b)
			row[j] = p
		}
		products[i] = row
	}
	return products
}
