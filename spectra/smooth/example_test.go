package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectra/spectra/smooth"
)

func ExampleSmooth() {
	flux := []float64{1, 1, 1, 1, 8, 1, 1, 1, 1}
	out := smooth.Smooth(flux)

	fmt.Printf("edges: %.0f %.0f ... %.0f %.0f\n", out[0], out[1], out[7], out[8])
	fmt.Printf("spike center: %.2f\n", out[4])
	// Output:
	// edges: 1 1 ... 1 1
	// spike center: 4.40
}
