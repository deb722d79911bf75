package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/spectra/core"
)

// fwhm = 2*sqrt(2*ln 2) * sigma for a Gaussian profile.
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// MustGrid builds a grid or fails the test.
func MustGrid(t testing.TB, start, step float64, n int) core.Grid {
	t.Helper()

	g, err := core.New(start, step, n)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}

	return g
}

// FlatSpectrum returns a flux curve and a continuum curve that are both
// constant at level, i.e. a spectrum with no absorption anywhere.
func FlatSpectrum(grid core.Grid, level float64) (flux, continuum []float64) {
	flux = make([]float64, grid.Len())
	continuum = make([]float64, grid.Len())

	for i := range flux {
		flux[i] = level
		continuum[i] = level
	}

	return flux, continuum
}

// AddGaussianDip multiplies flux, in place, by a Gaussian transmission dip
// of the given depth and FWHM (Å) centered at center (Å).
func AddGaussianDip(flux []float64, grid core.Grid, center, fwhm, depth float64) {
	sigma := fwhm * fwhmToSigma

	for i := range flux {
		d := (grid.Wavelength(i) - center) / sigma
		flux[i] *= 1 - depth*math.Exp(-0.5*d*d)
	}
}

// DipArea returns the analytic absorbed-fraction area of a Gaussian dip,
//
//	depth * sigma * sqrt(2*pi)
//
// which a correct equivalent-width integral should approach for a dip well
// inside the grid.
func DipArea(fwhm, depth float64) float64 {
	sigma := fwhm * fwhmToSigma

	return depth * sigma * math.Sqrt(2*math.Pi)
}
