package smooth

// Window is the fixed smoothing window length.
const Window = 5

// kernel holds the degree-3 Savitzky-Golay coefficients for window 5,
// already normalized by 35.
var kernel = [Window]float64{-3.0 / 35, 12.0 / 35, 17.0 / 35, 12.0 / 35, -3.0 / 35}

// Kernel returns a copy of the normalized smoothing coefficients.
func Kernel() []float64 {
	out := make([]float64, Window)
	copy(out, kernel[:])

	return out
}

// Smooth returns a smoothed copy of src. The input is never mutated.
// For len(src) < 5 the result is an unmodified copy.
func Smooth(src []float64) []float64 {
	dst := make([]float64, len(src))
	SmoothTo(dst, src)

	return dst
}

// SmoothTo smooths src into dst. Both slices must have the same length.
// dst and src may alias only if they are the same slice.
func SmoothTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint

	copy(dst, src)

	if len(src) < Window {
		return
	}

	half := Window / 2

	// Edge samples keep their input values; the convolution touches only
	// indices with a full 5-point neighborhood. When dst aliases src, read
	// from a snapshot so already-written outputs never feed later windows.
	prev := src
	if &dst[0] == &src[0] {
		prev = make([]float64, len(src))
		copy(prev, src)
	}

	for i := half; i < len(src)-half; i++ {
		var y float64
		for k := range Window {
			y += kernel[k] * prev[i-half+k]
		}

		dst[i] = y
	}
}
