// Package smooth provides the fixed 5-point Savitzky-Golay smoother applied
// to flux curves before trough segmentation.
//
// The kernel is the degree-3 polynomial local-least-squares smoother of
// window 5, with coefficients (-3, 12, 17, 12, -3)/35. Interior samples are
// replaced by the weighted neighborhood sum; the first two and last two
// samples pass through unchanged. This boundary policy is intentionally not
// an edge-corrected filter and is part of the engine's reproducible
// behavior, including its asymmetric effect on leading and trailing samples.
//
// Inputs shorter than the window are returned unchanged (smoothing is a
// no-op below the minimum window).
package smooth
