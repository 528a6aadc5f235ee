package so3grid

import (
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// SymmetryRanges holds the Euler angle search ranges, in degrees, implied by
// a point-group symmetry. Every range is symmetric about zero.
type SymmetryRanges struct {
	PhiMin   float64
	PhiMax   float64
	ThetaMin float64
	ThetaMax float64
	PsiMin   float64
	PsiMax   float64
}

// halfRange is the phi/theta half-angle entry for one point group. A
// negative phi marks the cyclic groups, whose phi half-angle is 180/order.
type halfRange struct {
	phi   float64
	theta float64
}

var symmetryTable = map[string]halfRange{
	"C": {phi: -1, theta: 180},
	"D": {phi: -1, theta: 90},
	"T": {phi: 90, theta: 54.7356},
	"O": {phi: 45, theta: 54.7356},
	"I": {phi: 90, theta: 31.7},
}

// SupportedGroups lists the recognized point-group letters in sorted order.
func SupportedGroups() []string {
	groups := maps.Keys(symmetryTable)
	sort.Strings(groups)
	return groups
}

// GetSymmetryRanges maps a point-group symmetry to Euler angle search
// ranges. The group letter is case-insensitive and must be one of C, D, T,
// O or I; order is only meaningful for the cyclic and dihedral groups and
// is not validated. The in-plane range is never restricted by symmetry.
func GetSymmetryRanges(group string, order int) (SymmetryRanges, error) {
	entry, ok := symmetryTable[strings.ToUpper(group)]
	if !ok {
		return SymmetryRanges{}, NewSymmetryGroupError(group)
	}
	phiMax := entry.phi
	if phiMax < 0 {
		phiMax = 180 / float64(order)
	}
	return SymmetryRanges{
		PhiMin:   -phiMax,
		PhiMax:   phiMax,
		ThetaMin: -entry.theta,
		ThetaMax: entry.theta,
		PsiMin:   -180,
		PsiMax:   180,
	}, nil
}
