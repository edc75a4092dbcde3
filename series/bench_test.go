package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fatigue/series"
)

// benchmarkExtract runs Extract over a synthetic oscillating history of n
// samples. It resets the timer after input construction.
func benchmarkExtract(b *testing.B, n int, useEndpoints bool) {
	raw := make([]float64, n)
	for i := range raw {
		raw[i] = math.Sin(float64(i)) * 100 // oscillating load, many reversals
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = series.Extract(raw, useEndpoints)
	}
}

// BenchmarkExtract_Small benchmarks extraction on 1k samples.
func BenchmarkExtract_Small(b *testing.B) {
	benchmarkExtract(b, 1_000, true)
}

// BenchmarkExtract_Medium benchmarks extraction on 100k samples.
func BenchmarkExtract_Medium(b *testing.B) {
	benchmarkExtract(b, 100_000, true)
}

// BenchmarkExtract_NoEndpoints benchmarks interior-only extraction on 100k samples.
func BenchmarkExtract_NoEndpoints(b *testing.B) {
	benchmarkExtract(b, 100_000, false)
}
