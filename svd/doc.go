// Package svd exposes the singular value decomposition entry points whose
// behavior the svdcheck package verifies.
//
// Two facades cover the call interface:
//
//   - Factorize accepts exactly one matrix (rank 2) and rejects scalars,
//     vectors and higher-rank tensors with ErrRank.
//   - FactorizeBatch accepts any tensor of rank >= 2 and decomposes every
//     trailing matrix independently, preserving the batch layout in the
//     results.
//
// Options select what is computed:
//
//   - compute-UV (default on): return the singular vector bases U and V in
//     addition to the singular values; WithValuesOnly drops them.
//   - full-matrices (default off): return full square orthonormal bases
//     (U m×m, V n×n) instead of economy-sized ones truncated to
//     k = min(m, n) (U m×k, V n×k).
//
// Singular values are always returned in descending order with length k.
// The numeric kernel is gonum's mat.SVD; for Float32 tensors the kernel's
// float64 output is quantized back to single precision, modelling a
// single-precision backend. Decomposition results follow gonum's
// convention: V holds right singular vectors as columns (not Vᴴ).
package svd
