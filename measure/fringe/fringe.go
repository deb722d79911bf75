// Package fringe detects periodic ripple (instrumental fringing) in a
// continuum-normalized spectrum.
//
// Fringing shows up as a near-sinusoidal modulation of the transmission
// curve with a stable wavelength period. The detector removes the mean
// level, applies a Hann window, and searches a one-sided periodogram for
// the dominant period inside a configurable band. Callers typically run it
// before trough analysis to flag contaminated epochs.
package fringe

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Analyze.
var (
	ErrShortInput  = errors.New("fringe: need at least 16 samples")
	ErrInvalidStep = errors.New("fringe: sample step must be positive")
)

const minSamples = 16

// Config holds the periodogram parameters.
type Config struct {
	// SampleStep is the wavelength spacing Δλ in Å (the grid step).
	SampleStep float64
	// MinPeriod and MaxPeriod bound the ripple period search band in Å.
	// Zero values default to 4·Δλ and N·Δλ/4.
	MinPeriod float64
	MaxPeriod float64
	// FFTSize overrides the transform size. Zero rounds the input length
	// up to the next power of two.
	FFTSize int
}

// Result holds the fringe measurement.
type Result struct {
	// PeakPeriod is the dominant ripple period in Å per cycle, 0 when the
	// curve carries no measurable ripple.
	PeakPeriod float64
	// PeakAmplitude estimates the ripple amplitude in transmission units.
	PeakAmplitude float64
	// Contrast is the fraction of in-band periodogram energy concentrated
	// in the peak bin and its two neighbors, in [0, 1]. Values near 1
	// indicate a coherent single-period ripple.
	Contrast float64
}

// Analyze measures periodic ripple in the transmission curve tc.
func Analyze(tc []float64, cfg Config) (Result, error) {
	if len(tc) < minSamples {
		return Result{}, fmt.Errorf("%w: got %d", ErrShortInput, len(tc))
	}

	if cfg.SampleStep <= 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidStep, cfg.SampleStep)
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(tc))
	}

	if fftSize < len(tc) {
		return Result{}, fmt.Errorf("fringe: FFT size %d smaller than input %d", fftSize, len(tc))
	}

	minPeriod := cfg.MinPeriod
	if minPeriod <= 0 {
		minPeriod = 4 * cfg.SampleStep
	}

	maxPeriod := cfg.MaxPeriod
	if maxPeriod <= 0 {
		maxPeriod = float64(len(tc)) * cfg.SampleStep / 4
	}

	if maxPeriod < minPeriod {
		maxPeriod = minPeriod
	}

	// Remove the mean level and taper with a Hann window so the broad
	// continuum shape does not leak into the ripple band.
	mean := 0.0
	for _, v := range tc {
		mean += v
	}

	mean /= float64(len(tc))

	inData := make([]complex128, fftSize)
	for i, v := range tc {
		w := hann(i, len(tc))
		inData[i] = complex((v-mean)*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("fringe: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("fringe: fft: %w", err)
	}

	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	// Spatial frequency of bin k is k / (fftSize * Δλ) cycles per Å.
	binHz := 1 / (float64(fftSize) * cfg.SampleStep)

	lowerBin := int(math.Ceil(1 / (maxPeriod * binHz)))
	upperBin := int(math.Floor(1 / (minPeriod * binHz)))

	if lowerBin < 1 {
		lowerBin = 1
	}

	if upperBin > binCount-1 {
		upperBin = binCount - 1
	}

	if upperBin < lowerBin {
		return Result{}, nil
	}

	peakBin := lowerBin
	peakVal := -1.0

	var bandEnergy float64

	for k := lowerBin; k <= upperBin; k++ {
		p := mag[k] * mag[k]
		bandEnergy += p

		if mag[k] > peakVal {
			peakVal = mag[k]
			peakBin = k
		}
	}

	if peakVal <= 0 || bandEnergy <= 0 {
		return Result{}, nil
	}

	var peakEnergy float64

	for k := peakBin - 1; k <= peakBin+1; k++ {
		if k >= lowerBin && k <= upperBin {
			peakEnergy += mag[k] * mag[k]
		}
	}

	// Hann coherent gain is 0.5; a real sinusoid splits across the two
	// half-spectrum conjugate bins, hence the factor 2/N before gain
	// correction.
	amplitude := 2 * peakVal / (float64(len(tc)) * 0.5)

	return Result{
		PeakPeriod:    1 / (float64(peakBin) * binHz),
		PeakAmplitude: amplitude,
		Contrast:      peakEnergy / bandEnergy,
	}, nil
}

func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
