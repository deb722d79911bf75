// Package trough segments a transmission curve into contiguous
// below-threshold runs, the candidate broad-absorption-line components.
//
// The scan is an explicit two-state machine: OUTSIDE (no open run) and
// INSIDE (accumulating one run). It visits each sample once in ascending
// order, so the pass is O(N) time with O(1) state beyond the open run. A run
// still open after the final sample is closed at the grid end rather than
// dropped, so troughs touching the edge of the sampled range are evaluated
// with whatever partial width they accumulated.
package trough

// Run is a maximal contiguous index range [Start, End) where transmission
// stays below the absorption threshold. MinIdx and Min track the trough
// bottom discovered during the scan; ties keep the earliest index.
type Run struct {
	Start  int
	End    int
	MinIdx int
	Min    float64
}

// Len returns the run length in samples.
func (r Run) Len() int { return r.End - r.Start }

// Scan extracts all below-threshold runs from the transmission curve tc.
// A sample is absorbed when tc[i] < threshold (strict).
func Scan(tc []float64, threshold float64) []Run {
	var runs []Run

	var open Run

	inside := false

	for i, v := range tc {
		absorbed := v < threshold

		switch {
		case !inside && absorbed:
			open = Run{Start: i, MinIdx: i, Min: v}
			inside = true

		case inside && absorbed:
			// Strict less-than: on exact ties the first occurrence wins.
			if v < open.Min {
				open.Min = v
				open.MinIdx = i
			}

		case inside && !absorbed:
			open.End = i
			runs = append(runs, open)
			inside = false
		}
	}

	// A trough that never rises back above threshold before the grid ends
	// is still a trough.
	if inside {
		open.End = len(tc)
		runs = append(runs, open)
	}

	return runs
}
