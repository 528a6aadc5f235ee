package so3grid

import (
	"errors"
	"math"
	"testing"
)

func TestRingPixelizerNsideOne(t *testing.T) {
	pixels := make([]int, 12)
	for i := range pixels {
		pixels[i] = i
	}
	centers, err := RingPixelizer{}.Centers(1, pixels)
	if err != nil {
		t.Fatal(err)
	}

	capTheta := math.Acos(2.0 / 3.0)
	expect := [][2]float64{
		{capTheta, math.Pi / 4}, {capTheta, 3 * math.Pi / 4}, {capTheta, 5 * math.Pi / 4}, {capTheta, 7 * math.Pi / 4},
		{math.Pi / 2, 0}, {math.Pi / 2, math.Pi / 2}, {math.Pi / 2, math.Pi}, {math.Pi / 2, 3 * math.Pi / 2},
		{math.Pi - capTheta, math.Pi / 4}, {math.Pi - capTheta, 3 * math.Pi / 4}, {math.Pi - capTheta, 5 * math.Pi / 4}, {math.Pi - capTheta, 7 * math.Pi / 4},
	}
	for i, c := range centers {
		if math.Abs(c[0]-expect[i][0]) > 1e-12 || math.Abs(c[1]-expect[i][1]) > 1e-12 {
			t.Errorf("pixel %d: expected center (%v, %v), got (%v, %v)",
				i, expect[i][0], expect[i][1], c[0], c[1])
		}
	}
}

func TestRingPixelizerMonotoneColatitude(t *testing.T) {
	for _, nside := range []int{2, 3, 24} {
		npix := 12 * nside * nside
		prev := -1.0
		for p := 0; p < npix; p++ {
			theta, phi := ringPixelCenter(nside, p)
			if theta < prev-1e-12 {
				t.Fatalf("nside %d: colatitude not monotone at pixel %d", nside, p)
			}
			prev = theta
			if phi < 0 || phi >= 2*math.Pi {
				t.Fatalf("nside %d: azimuth %v outside [0, 2pi) at pixel %d", nside, phi, p)
			}
		}
	}
}

func TestHealpixBaseGrid(t *testing.T) {
	testCases := []struct {
		name                             string
		thetaStep                        float64
		thetaMin, thetaMax, phiMin, phiMax float64
		expectCount                      int
	}{
		{"default", 2.5, 0, 180, 0, 360, 6912},
		{"hemisphere", 2.5, 0, 90, 0, 360, 3504},
		{"coarse", 5.0, 0, 180, 0, 360, 1728},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			points, err := HealpixBaseGrid(tc.thetaStep, tc.thetaMin, tc.thetaMax, tc.phiMin, tc.phiMax)
			if err != nil {
				t.Fatal(err)
			}
			if len(points) != tc.expectCount {
				t.Fatalf("expected %d points, got %d", tc.expectCount, len(points))
			}
			for _, p := range points {
				if p.Theta < tc.thetaMin || p.Theta > tc.thetaMax {
					t.Fatalf("polar angle %v outside [%v, %v]", p.Theta, tc.thetaMin, tc.thetaMax)
				}
				if p.Phi < tc.phiMin || p.Phi > tc.phiMax {
					t.Fatalf("azimuth %v outside [%v, %v]", p.Phi, tc.phiMin, tc.phiMax)
				}
			}
		})
	}
}

func TestHealpixBaseGridNoValidResolution(t *testing.T) {
	_, err := HealpixBaseGrid(0.1, 0, 2.5, 0, 360)
	var resErr NoValidResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("expected NoValidResolutionError, got %v", err)
	}
	if resErr.MaxNside != 36 {
		t.Errorf("expected search ceiling 36, got %d", resErr.MaxNside)
	}
}

func TestHealpixGridUnavailable(t *testing.T) {
	grid := HealpixGrid{ThetaStep: 2.5}
	if grid.Available() {
		t.Error("expected grid without oracle to report unavailable")
	}
	_, err := grid.Points(0, 180, 0, 360)
	if !errors.Is(err, ErrPixelizerUnavailable) {
		t.Fatalf("expected ErrPixelizerUnavailable, got %v", err)
	}
}
