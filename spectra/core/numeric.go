package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RoundTo rounds v to the given number of decimal places. It is a
// presentation step: analysis code accumulates at full precision and rounds
// exactly once when assembling results.
func RoundTo(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}

	scale := math.Pow(10, float64(decimals))

	return math.Round(v*scale) / scale
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return isFinite(v)
}
