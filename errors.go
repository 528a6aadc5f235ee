package so3grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPixelizerUnavailable reports that the healpix strategy was invoked
	// without a pixelization oracle configured.
	ErrPixelizerUnavailable = errors.New("healpix base grid requires a pixelization oracle")

	// ErrNonPositiveAxisStep reports a roll-axis sweep requested with a
	// step that cannot advance.
	ErrNonPositiveAxisStep = errors.New("roll axis sweep requires a positive axis step")
)

type SymmetryGroupError struct {
	Group string
}

func NewSymmetryGroupError(group string) SymmetryGroupError {
	return SymmetryGroupError{Group: group}
}

func (s SymmetryGroupError) Error() string {
	return fmt.Sprintf("symmetry group '%s' not recognized, expected one of %s",
		s.Group, strings.Join(SupportedGroups(), ", "))
}

type UnknownStrategyError struct {
	Strategy Strategy
}

func NewUnknownStrategyError(strategy Strategy) UnknownStrategyError {
	return UnknownStrategyError{Strategy: strategy}
}

func (u UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown base grid strategy %d", int(u.Strategy))
}

type StrategyNameError struct {
	Name string
}

func NewStrategyNameError(name string) StrategyNameError {
	return StrategyNameError{Name: name}
}

func (s StrategyNameError) Error() string {
	return fmt.Sprintf("unknown base grid strategy '%s', expected one of uniform, healpix, cartesian", s.Name)
}

type NoValidResolutionError struct {
	Estimated int
	MaxNside  int
}

func NewNoValidResolutionError(estimated int, maxNside int) NoValidResolutionError {
	return NoValidResolutionError{Estimated: estimated, MaxNside: maxNside}
}

func (n NoValidResolutionError) Error() string {
	return fmt.Sprintf("no valid healpix nside below %d covers the estimated %d pixels", n.MaxNside, n.Estimated)
}
