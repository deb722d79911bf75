// Package synth generates deterministic synthetic quasar spectra for tests,
// examples, and demos. The analysis engine itself is purely deterministic;
// any stochastic element (noise) lives here, behind an explicit seed.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/spectra/core"
)

// fwhmToSigma converts a Gaussian full width at half maximum to the
// standard deviation: FWHM = 2*sqrt(2*ln 2) * sigma.
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// Generator creates deterministic synthetic spectra from a shared seed.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed used for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured spectrum generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// PowerLawContinuum evaluates A * (lambda/ReferenceLine)^index on the grid.
// The amplitude is quoted at the reference line, so the curve is strictly
// positive for any positive amplitude.
func (g *Generator) PowerLawContinuum(grid core.Grid, amplitude, index float64) ([]float64, error) {
	if amplitude <= 0 {
		return nil, fmt.Errorf("synth: continuum amplitude must be > 0: %f", amplitude)
	}

	out := make([]float64, grid.Len())
	for i := range out {
		out[i] = amplitude * math.Pow(grid.Wavelength(i)/core.ReferenceLine, index)
	}

	return out, nil
}

// AddEmissionLine adds a Gaussian emission bump of the given peak height and
// FWHM (Å) centered at center (Å) to curve, in place.
func (g *Generator) AddEmissionLine(curve []float64, grid core.Grid, center, fwhm, peak float64) error {
	if len(curve) != grid.Len() {
		return fmt.Errorf("synth: curve length %d does not match grid length %d", len(curve), grid.Len())
	}

	if fwhm <= 0 {
		return fmt.Errorf("synth: emission FWHM must be > 0: %f", fwhm)
	}

	sigma := fwhm * fwhmToSigma

	bump := make([]float64, grid.Len())
	for i := range bump {
		d := (grid.Wavelength(i) - center) / sigma
		bump[i] = peak * math.Exp(-0.5*d*d)
	}

	vecmath.AddBlockInPlace(curve, bump)

	return nil
}

// AddTrough multiplies curve, in place, by the Gaussian absorption profile
//
//	1 - depth * exp(-(lambda-center)^2 / (2*sigma^2))
//
// so a flat continuum-equal flux curve acquires a transmission dip of the
// given depth at center. Depth must lie in [0, 1).
func (g *Generator) AddTrough(curve []float64, grid core.Grid, center, fwhm, depth float64) error {
	if len(curve) != grid.Len() {
		return fmt.Errorf("synth: curve length %d does not match grid length %d", len(curve), grid.Len())
	}

	if fwhm <= 0 {
		return fmt.Errorf("synth: trough FWHM must be > 0: %f", fwhm)
	}

	if depth < 0 || depth >= 1 {
		return fmt.Errorf("synth: trough depth must be in [0, 1): %f", depth)
	}

	sigma := fwhm * fwhmToSigma

	profile := make([]float64, grid.Len())
	for i := range profile {
		d := (grid.Wavelength(i) - center) / sigma
		profile[i] = 1 - depth*math.Exp(-0.5*d*d)
	}

	vecmath.MulBlockInPlace(curve, profile)

	return nil
}

// AddNoise adds deterministic white noise in [-amplitude, amplitude] to
// curve, in place, then floor-clamps the result at zero so flux stays
// non-negative.
func (g *Generator) AddNoise(curve []float64, amplitude float64) error {
	if amplitude < 0 {
		return fmt.Errorf("synth: noise amplitude must be >= 0: %f", amplitude)
	}

	rng := rand.New(rand.NewSource(g.seed))
	for i := range curve {
		curve[i] += (rng.Float64()*2 - 1) * amplitude
		if curve[i] < 0 {
			curve[i] = 0
		}
	}

	return nil
}
