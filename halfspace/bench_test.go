package halfspace_test

import (
	"testing"

	"github.com/katalvlaran/cubature/halfspace"
	"github.com/katalvlaran/cubature/hyperbox"
)

// benchmarkSectionMeasure runs the exact measure on the n-dimensional unit box
// cut by the diagonal hyperplane Σxᵢ ≤ n/2 — a worst case that straddles every
// axis and defeats the early exits.
func benchmarkSectionMeasure(b *testing.B, n int) {
	h, err := hyperbox.NewUniform(n, 0, 1)
	if err != nil {
		b.Fatalf("box construction failed: %v", err)
	}
	e := make([]float64, n)
	for i := range e {
		e[i] = 1
	}
	c := halfspace.Constraint{E: e, D: -float64(n) / 2}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := c.SectionMeasure(h); err != nil {
			b.Fatalf("SectionMeasure failed: %v", err)
		}
	}
}

// BenchmarkSectionMeasure_3D measures the straddling recursion in 3 dimensions.
func BenchmarkSectionMeasure_3D(b *testing.B) { benchmarkSectionMeasure(b, 3) }

// BenchmarkSectionMeasure_6D measures the straddling recursion in 6 dimensions.
func BenchmarkSectionMeasure_6D(b *testing.B) { benchmarkSectionMeasure(b, 6) }

// BenchmarkSectionMeasure_9D measures the straddling recursion in 9 dimensions.
func BenchmarkSectionMeasure_9D(b *testing.B) { benchmarkSectionMeasure(b, 9) }
