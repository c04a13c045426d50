package svdcheck_test

import (
	"testing"

	"github.com/katalvlaran/svdkit/svdcheck"
	"github.com/katalvlaran/svdkit/tensor"
)

// benchmarkRun runs the full verification procedure for one (precision,
// shape) case. It resets the timer before the loop and fails on unexpected
// errors.
func benchmarkRun(b *testing.B, p tensor.Precision, shape ...int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := svdcheck.Run(p, shape...); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Float64Small benchmarks a single small double-precision matrix.
func BenchmarkRun_Float64Small(b *testing.B) {
	benchmarkRun(b, tensor.Float64, 5, 5)
}

// BenchmarkRun_Float64Large benchmarks the largest single-matrix sweep cell.
func BenchmarkRun_Float64Large(b *testing.B) {
	benchmarkRun(b, tensor.Float64, 10, 10)
}

// BenchmarkRun_Float32Batched benchmarks the quantized batched path.
func BenchmarkRun_Float32Batched(b *testing.B) {
	benchmarkRun(b, tensor.Float32, 3, 2, 5, 5)
}
