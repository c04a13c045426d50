// Package svdcheck verifies a singular value decomposition backend against
// a trusted reference, property by property.
//
// 🚀 What does svdcheck verify?
//
//	For a deterministic seeded matrix (or batch of matrices) and every
//	combination of the compute-UV and full-matrices options:
//	  • singular values match the reference within a precision-dependent
//	    absolute tolerance
//	  • singular vector bases match the reference up to per-column sign
//	    ambiguity (normalized before comparison)
//	  • the reconstruction U · diag(S) · Vᴴ recovers the input
//	  • both bases are unitary: Uᴴ·U ≈ I and Vᴴ·V ≈ I
//
// ✨ Key points:
//   - tolerance tables per precision: values 1e-4 (float32) / 1e-14 (float64),
//     unitarity 5e-6 (float32) / 1e-15 (float64); every comparison also
//     carries a fixed 1e-6 relative term (|a-b| <= atol + 1e-6·|b|)
//   - sign normalization via the sign of the summed elementwise ratio along
//     the rows axis; a valid decomposition with flipped vector pairs passes
//   - the reference decomposition is computed in full double precision and
//     returned in the (U, S, Vᴴ) convention; Run adjoints Vᴴ back before
//     comparing against the backend's V
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/svdkit/svdcheck"
//
//	// verify float64 3×2 matrices across all option combinations
//	if err := svdcheck.Run(tensor.Float64, 3, 2); err != nil {
//	  // err wraps one of the mismatch sentinels and names the combination
//	}
//
// Any failure aborts the case and surfaces a sentinel-wrapped error naming
// the violated property; there is no retry and no recovery path.
//
// The full verification sweep (precision × rows × cols × batch shapes)
// lives in this package's tests; `go test ./...` is the harness entry point.
package svdcheck
