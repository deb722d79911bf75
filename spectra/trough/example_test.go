package trough_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra/trough"
)

func ExampleScan() {
	tc := []float64{1.0, 0.95, 0.8, 0.5, 0.7, 1.0, 0.85, 0.6}

	for _, r := range trough.Scan(tc, 0.9) {
		fmt.Printf("[%d, %d) bottom %.2f at %d\n", r.Start, r.End, r.Min, r.MinIdx)
	}
	// Output:
	// [2, 5) bottom 0.50 at 3
	// [6, 8) bottom 0.60 at 7
}
