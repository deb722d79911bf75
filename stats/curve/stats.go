// Package curve computes single-pass summary statistics of sampled spectral
// curves (flux, continuum, or transmission).
package curve

import "math"

// Stats holds summary statistics of one sampled curve.
type Stats struct {
	Length   int
	Mean     float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64 // max - min
	RMS      float64
	Variance float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for numerical stability on the higher-order moments.
func Calculate(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	var (
		mean  float64
		m2    float64
		m3    float64
		m4    float64
		sumSq float64
	)

	minVal, maxVal := samples[0], samples[0]

	var minPos, maxPos int

	for i, x := range samples {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:   n,
		Mean:     mean,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		RMS:      math.Sqrt(sumSq / nf),
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// AbsorbedFraction returns the mean absorbed fraction of a transmission
// curve: the average of clamp(1 - t, 0, 1) over all samples. A curve with
// no absorption yields 0; total absorption everywhere yields 1.
func AbsorbedFraction(tc []float64) float64 {
	if len(tc) == 0 {
		return 0
	}

	var sum float64

	for _, t := range tc {
		a := 1 - t
		if a < 0 {
			a = 0
		} else if a > 1 {
			a = 1
		}

		sum += a
	}

	return sum / float64(len(tc))
}
