package core

// Physical and engine constants shared by all analysis packages.
//
// Transmission values are dimensionless (flux / continuum); wavelengths are
// rest-frame angstroms; velocities are km/s.
const (
	// AbsorptionThreshold is the normalized transmission below which a
	// sample counts as absorbed. 1.0 means no absorption.
	AbsorptionThreshold = 0.9

	// MinTroughWidth is the minimum wavelength extent (Å) a contiguous
	// absorption run must exceed to be accepted as a component.
	MinTroughWidth = 2.0

	// ReferenceLine is the rest-frame C IV transition wavelength (Å) used
	// as the velocity zero-point.
	ReferenceLine = 1549.0

	// LightSpeed is the speed of light in km/s.
	LightSpeed = 299792.458
)

// Velocity returns the Doppler velocity (km/s) implied by the offset of
// lambda from refLine:
//
//	v = c * (refLine - lambda) / refLine
//
// Positive velocity means blueshift (outflow toward the observer).
func Velocity(lambda, refLine float64) float64 {
	return LightSpeed * (refLine - lambda) / refLine
}
