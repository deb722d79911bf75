// Package transmission converts flux curves into dimensionless transmission
// curves by dividing out the unabsorbed continuum model.
//
// Transmission is flux / continuum at each grid sample: values near 1.0 mean
// no absorption, values below 1.0 mean absorption. The continuum is a given
// input and must be strictly positive and finite everywhere sampled; this
// package validates it but never repairs it.
package transmission

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Normalize. They are distinct so callers can tell bad
// input shape from a bad physical model.
var (
	ErrLengthMismatch   = errors.New("transmission: flux and continuum must have the same length")
	ErrInvalidContinuum = errors.New("transmission: continuum must be strictly positive and finite")
)

// Normalize returns the transmission curve flux[i] / continuum[i].
// Inputs are never mutated.
func Normalize(flux, continuum []float64) ([]float64, error) {
	if len(flux) != len(continuum) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(flux), len(continuum))
	}

	if len(flux) == 0 {
		return []float64{}, nil
	}

	inv := make([]float64, len(continuum))
	for i, c := range continuum {
		if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: value %v at index %d", ErrInvalidContinuum, c, i)
		}

		inv[i] = 1 / c
	}

	out := make([]float64, len(flux))
	vecmath.MulBlock(out, flux, inv)

	return out, nil
}
