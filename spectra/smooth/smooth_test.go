package smooth

import (
	"math"
	"testing"
)

func TestSmoothShortInputIdentity(t *testing.T) {
	for n := 0; n < Window; n++ {
		src := make([]float64, n)
		for i := range src {
			src[i] = float64(i) + 0.5
		}

		got := Smooth(src)
		if len(got) != n {
			t.Fatalf("n=%d: length mismatch: got %d", n, len(got))
		}

		for i := range got {
			if got[i] != src[i] {
				t.Fatalf("n=%d index %d: got %v want %v", n, i, got[i], src[i])
			}
		}
	}
}

func TestSmoothEdgePassthrough(t *testing.T) {
	src := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	got := Smooth(src)

	for _, i := range []int{0, 1, len(src) - 2, len(src) - 1} {
		if got[i] != src[i] {
			t.Fatalf("edge index %d recomputed: got %v want %v", i, got[i], src[i])
		}
	}
}

func TestSmoothKnownInterior(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5}
	got := Smooth(src)

	// The kernel preserves straight lines exactly.
	if math.Abs(got[2]-3) > 1e-12 {
		t.Fatalf("interior of linear ramp changed: got %v want 3", got[2])
	}
}

func TestSmoothSpikeAttenuation(t *testing.T) {
	src := []float64{1, 1, 1, 1, 10, 1, 1, 1, 1}
	got := Smooth(src)

	// Center of the spike: (-3 + 12 + 17*10 + 12 - 3) / 35.
	want := (-3.0 + 12 + 170 + 12 - 3) / 35
	if math.Abs(got[4]-want) > 1e-12 {
		t.Fatalf("spike center mismatch: got %v want %v", got[4], want)
	}

	if got[4] >= src[4] {
		t.Fatalf("spike was not attenuated: got %v", got[4])
	}
}

func TestSmoothPreservesInput(t *testing.T) {
	src := []float64{1, 5, 2, 8, 3, 9, 4}
	orig := make([]float64, len(src))
	copy(orig, src)

	_ = Smooth(src)

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("input mutated at index %d", i)
		}
	}
}

func TestSmoothToInPlace(t *testing.T) {
	src := []float64{1, 5, 2, 8, 3, 9, 4, 7, 2}

	want := Smooth(src)

	buf := make([]float64, len(src))
	copy(buf, src)
	SmoothTo(buf, buf)

	for i := range want {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("in-place result differs at index %d: got %v want %v", i, buf[i], want[i])
		}
	}
}

func TestKernelSumsToOne(t *testing.T) {
	var sum float64
	for _, c := range Kernel() {
		sum += c
	}

	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("kernel must sum to 1, got %v", sum)
	}
}
