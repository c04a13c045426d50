// Package svdkit is a correctness-verification toolkit for singular value
// decomposition (SVD) backends over small and batched real matrices.
//
// 🚀 What is svdkit?
//
//	A compact, deterministic library that brings together:
//		• tensor/   — batched dense tensors with float32/float64 precision tags,
//		  seeded random generation, and the batched linear-algebra helpers
//		  the verifier needs (MatMul with adjoints, DiagEmbed, Eye, AllClose)
//		• svd/      — the decomposition entry points under test: Factorize
//		  (single matrix) and FactorizeBatch (leading batch dimensions),
//		  with strict rank validation and functional options
//		• svdcheck/ — the verifier: per-precision tolerance tables, a trusted
//		  reference decomposition, sign-ambiguity normalization,
//		  reconstruction and unitarity checks, and the Run sweep procedure
//
// ✨ Why choose svdkit?
//
//   - Deterministic by construction: fixed seeds, fixed loop orders, no globals
//   - Fail-fast contracts: sentinel errors, errors.Is friendly, no panics on user input
//   - Thin surface: the heavy numeric kernel is delegated to gonum
//
// Quick sketch of the verified identity:
//
//	A ≈ U · diag(S) · Vᴴ,   Uᴴ·U ≈ I,   Vᴴ·V ≈ I
//
// Dive into each package's doc.go and example_test.go for usage patterns.
//
//	go get github.com/katalvlaran/svdkit
package svdkit
