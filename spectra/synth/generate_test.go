package synth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectra/spectra/core"
)

func testGrid(t *testing.T) core.Grid {
	t.Helper()

	g, err := core.New(1400, 0.5, 600)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	return g
}

func TestPowerLawContinuum(t *testing.T) {
	grid := testGrid(t)
	g := NewGenerator()

	cont, err := g.PowerLawContinuum(grid, 10, -1.5)
	if err != nil {
		t.Fatalf("PowerLawContinuum failed: %v", err)
	}

	if len(cont) != grid.Len() {
		t.Fatalf("length mismatch: got %d want %d", len(cont), grid.Len())
	}

	for i, v := range cont {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("continuum sample %d not strictly positive and finite: %v", i, v)
		}
	}

	// Amplitude is quoted at the reference line.
	refIdx := int((core.ReferenceLine - grid.Start()) / grid.Step())
	if math.Abs(cont[refIdx]-10) > 0.1 {
		t.Fatalf("continuum at reference line: got %v want ~10", cont[refIdx])
	}
}

func TestPowerLawContinuumRejectsNonPositiveAmplitude(t *testing.T) {
	grid := testGrid(t)

	if _, err := NewGenerator().PowerLawContinuum(grid, 0, -1.5); err == nil {
		t.Fatalf("expected error for zero amplitude")
	}
}

func TestAddTroughDepth(t *testing.T) {
	grid := testGrid(t)
	g := NewGenerator()

	flux := make([]float64, grid.Len())
	for i := range flux {
		flux[i] = 1
	}

	const (
		center = 1500.0
		depth  = 0.4
	)

	if err := g.AddTrough(flux, grid, center, 8, depth); err != nil {
		t.Fatalf("AddTrough failed: %v", err)
	}

	centerIdx := int((center - grid.Start()) / grid.Step())
	if math.Abs(flux[centerIdx]-(1-depth)) > 1e-9 {
		t.Fatalf("trough bottom mismatch: got %v want %v", flux[centerIdx], 1-depth)
	}

	// Far from the trough the curve is untouched.
	if math.Abs(flux[0]-1) > 1e-9 {
		t.Fatalf("distant sample modified: got %v", flux[0])
	}
}

func TestAddTroughRejectsBadDepth(t *testing.T) {
	grid := testGrid(t)
	flux := make([]float64, grid.Len())

	for _, depth := range []float64{-0.1, 1.0, 1.5} {
		if err := NewGenerator().AddTrough(flux, grid, 1500, 8, depth); err == nil {
			t.Fatalf("depth %v: expected error", depth)
		}
	}
}

func TestAddEmissionLine(t *testing.T) {
	grid := testGrid(t)
	g := NewGenerator()

	curve := make([]float64, grid.Len())
	for i := range curve {
		curve[i] = 2
	}

	if err := g.AddEmissionLine(curve, grid, core.ReferenceLine, 20, 1.5); err != nil {
		t.Fatalf("AddEmissionLine failed: %v", err)
	}

	refIdx := int((core.ReferenceLine - grid.Start()) / grid.Step())
	if math.Abs(curve[refIdx]-3.5) > 1e-6 {
		t.Fatalf("emission peak mismatch: got %v want 3.5", curve[refIdx])
	}
}

func TestAddNoiseDeterministic(t *testing.T) {
	a := make([]float64, 100)
	b := make([]float64, 100)
	for i := range a {
		a[i], b[i] = 1, 1
	}

	if err := NewGenerator(WithSeed(7)).AddNoise(a, 0.05); err != nil {
		t.Fatalf("AddNoise failed: %v", err)
	}

	if err := NewGenerator(WithSeed(7)).AddNoise(b, 0.05); err != nil {
		t.Fatalf("AddNoise failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different noise at index %d", i)
		}
	}
}

func TestAddNoiseFloorClamp(t *testing.T) {
	curve := make([]float64, 50) // all zero

	if err := NewGenerator(WithSeed(3)).AddNoise(curve, 0.5); err != nil {
		t.Fatalf("AddNoise failed: %v", err)
	}

	for i, v := range curve {
		if v < 0 {
			t.Fatalf("flux went negative at index %d: %v", i, v)
		}
	}
}
