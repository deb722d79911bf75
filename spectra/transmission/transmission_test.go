package transmission

import (
	"errors"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	flux := []float64{2, 3, 4.5, 0, 10}
	continuum := []float64{4, 3, 9, 2, 8}
	want := []float64{0.5, 1, 0.5, 0, 1.25}

	got, err := Normalize(flux, continuum)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestNormalizeLengthMismatch(t *testing.T) {
	_, err := Normalize([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestNormalizeInvalidContinuum(t *testing.T) {
	bad := [][]float64{
		{1, 0, 1},
		{1, -2, 1},
		{1, math.NaN(), 1},
		{1, math.Inf(1), 1},
	}

	for _, continuum := range bad {
		_, err := Normalize([]float64{1, 1, 1}, continuum)
		if !errors.Is(err, ErrInvalidContinuum) {
			t.Fatalf("continuum %v: expected ErrInvalidContinuum, got %v", continuum, err)
		}
	}
}

func TestNormalizeErrorsDistinguishable(t *testing.T) {
	_, shapeErr := Normalize([]float64{1}, []float64{1, 2})
	_, contErr := Normalize([]float64{1}, []float64{-1})

	if errors.Is(shapeErr, ErrInvalidContinuum) || errors.Is(contErr, ErrLengthMismatch) {
		t.Fatalf("error taxonomy overlaps: shape=%v continuum=%v", shapeErr, contErr)
	}
}

func TestNormalizePreservesInputs(t *testing.T) {
	flux := []float64{1, 2, 3}
	continuum := []float64{2, 4, 6}

	if _, err := Normalize(flux, continuum); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if flux[1] != 2 || continuum[1] != 4 {
		t.Fatalf("inputs mutated: flux=%v continuum=%v", flux, continuum)
	}
}
