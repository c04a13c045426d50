// SPDX-License-Identifier: MIT
package tensor_test

import (
	"testing"

	"github.com/katalvlaran/svdkit/tensor"
)

// benchmarkMatMul multiplies two seeded batch×n×n tensors, failing on
// unexpected errors.
func benchmarkMatMul(b *testing.B, batch, n int) {
	x, err := tensor.Uniform(tensor.Float64, 1, -1, 1, batch, n, n)
	if err != nil {
		b.Fatalf("Uniform failed: %v", err)
	}
	y, err := tensor.Uniform(tensor.Float64, 2, -1, 1, batch, n, n)
	if err != nil {
		b.Fatalf("Uniform failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = tensor.MatMul(x, y, false, false); err != nil {
			b.Fatalf("MatMul failed: %v", err)
		}
	}
}

// BenchmarkMatMul_Single benchmarks a single 10×10 product.
func BenchmarkMatMul_Single(b *testing.B) {
	benchmarkMatMul(b, 1, 10)
}

// BenchmarkMatMul_Batched benchmarks a batch of 32 products.
func BenchmarkMatMul_Batched(b *testing.B) {
	benchmarkMatMul(b, 32, 10)
}
