// Package tensor provides batched dense real tensors and the small set of
// deterministic linear-algebra helpers needed to verify matrix
// decompositions.
//
// The tensor package provides:
//
//   - Dense: a row-major flat-slice tensor with an arbitrary shape, where
//     the trailing two dimensions form a matrix and any leading dimensions
//     form a batch. Rank 0 (scalar) and rank 1 (vector) values are
//     constructible so that callers can exercise rank-validation contracts.
//   - Precision: a tagged enumeration over storage precisions (Float64,
//     Float32) with a Round quantization hook. Every value stored into a
//     Dense is quantized through its precision, so a Float32 tensor only
//     ever holds float32-representable values.
//   - Uniform: deterministic seeded pseudo-random generation.
//   - Batched kernels: MatMul (with optional adjoints), Adjoint, DiagEmbed,
//     Eye and AllClose. All kernels validate fail-fast, never mutate their
//     operands, and use fixed loop orders for reproducibility.
//
// Dense tensors are best for small verification workloads where O(len)
// memory and straightforward O(m·n·k) kernels are acceptable; heavy
// numeric factorizations are delegated to gonum by the svd package.
//
// See the examples in this package and svdcheck for usage patterns.
package tensor
