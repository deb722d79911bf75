// Package bal extracts broad absorption-line (BAL) trough metrics from
// single-epoch quasar spectra.
//
// Given a wavelength grid, a flux curve, and an unabsorbed continuum model,
// the analyzer smooths the flux, normalizes it to a transmission curve,
// segments contiguous below-threshold runs into candidate troughs, and
// reduces the accepted components to physical metrics:
//
//   - EW: total rest-frame equivalent width (Å)
//   - Depth: depth of the deepest accepted component (0..1)
//   - Velocity: centroid velocity of that same component (km/s, positive
//     toward the observer)
//   - Width: summed velocity extent of all components (km/s)
//   - TroughCount: number of accepted components
//
// # Usage
//
//	analyzer, err := bal.NewAnalyzer(grid)
//	metrics, err := analyzer.AnalyzeEpoch(bal.Epoch{
//		Label:     "epoch-1",
//		SourceID:  "J1225+3431",
//		MJD:       58900,
//		Flux:      flux,
//		Continuum: continuum,
//	})
//
// Epochs are independent: [Analyzer.AnalyzeBatch] runs one goroutine per
// epoch with no shared mutable state, and a failing epoch never aborts the
// rest of the batch.
package bal
