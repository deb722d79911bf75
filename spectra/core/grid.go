package core

import (
	"errors"
	"fmt"
	"math"
)

// MinGridLen is the shortest grid any analysis accepts. It matches the
// 5-point smoothing window used by spectra/smooth.
const MinGridLen = 5

// Errors returned by grid constructors.
var (
	ErrShortGrid  = errors.New("core: grid must have at least 5 samples")
	ErrBadSpacing = errors.New("core: grid must be strictly increasing with constant spacing")
)

// spacingTol is the relative tolerance used when validating that an
// explicit wavelength slice has constant spacing.
const spacingTol = 1e-9

// Grid is a fixed-step, strictly increasing rest-frame wavelength grid in
// angstroms. All curves in one analysis share a single Grid. The zero value
// is not usable; construct one with [New] or [FromWavelengths].
type Grid struct {
	start float64
	step  float64
	n     int
}

// New creates a grid of n samples starting at start (Å) with spacing
// step (Å).
func New(start, step float64, n int) (Grid, error) {
	if n < MinGridLen {
		return Grid{}, fmt.Errorf("%w: got %d", ErrShortGrid, n)
	}

	if step <= 0 || !isFinite(step) || !isFinite(start) {
		return Grid{}, fmt.Errorf("%w: start %v, step %v", ErrBadSpacing, start, step)
	}

	return Grid{start: start, step: step, n: n}, nil
}

// FromWavelengths validates an explicit wavelength slice and converts it to
// a Grid. The slice must be strictly increasing with constant spacing
// (within a small relative tolerance).
func FromWavelengths(wavelengths []float64) (Grid, error) {
	if len(wavelengths) < MinGridLen {
		return Grid{}, fmt.Errorf("%w: got %d", ErrShortGrid, len(wavelengths))
	}

	step := wavelengths[1] - wavelengths[0]
	if step <= 0 {
		return Grid{}, fmt.Errorf("%w: first step %v", ErrBadSpacing, step)
	}

	for i := 2; i < len(wavelengths); i++ {
		d := wavelengths[i] - wavelengths[i-1]
		if d <= 0 || math.Abs(d-step) > spacingTol*math.Max(math.Abs(step), 1) {
			return Grid{}, fmt.Errorf("%w: step %v at index %d, expected %v", ErrBadSpacing, d, i, step)
		}
	}

	return Grid{start: wavelengths[0], step: step, n: len(wavelengths)}, nil
}

// Len returns the number of grid samples.
func (g Grid) Len() int { return g.n }

// Step returns the fixed wavelength spacing Δλ in Å.
func (g Grid) Step() float64 { return g.step }

// Start returns the first wavelength in Å.
func (g Grid) Start() float64 { return g.start }

// Wavelength returns the wavelength of sample i in Å.
func (g Grid) Wavelength(i int) float64 {
	return g.start + float64(i)*g.step
}

// Wavelengths materializes the full grid as a slice.
func (g Grid) Wavelengths() []float64 {
	out := make([]float64, g.n)
	for i := range out {
		out[i] = g.Wavelength(i)
	}

	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
