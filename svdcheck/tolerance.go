// Package svdcheck: per-precision tolerance tables.
// Absolute-error bounds for the verification properties, keyed by the
// tensor precision tag, plus the fixed relative term every comparison
// carries. Two absolute tables: one for value/vector/reconstruction
// comparisons against the reference, one (much tighter) for unitarity,
// since any decent SVD kernel produces singular vectors orthonormal to
// almost full machine precision.

package svdcheck

import "github.com/katalvlaran/svdkit/tensor"

const (
	// RelativeTol is the relative error term applied alongside every
	// absolute bound: an element passes when |a-b| <= atol + RelativeTol·|b|.
	// Pure absolute bounds are too strict for wider double-precision bases,
	// where orthonormality residues slightly exceed 1e-15.
	RelativeTol = 1e-6

	// ValueTolFloat64 bounds value/vector/reconstruction deviations for
	// double-precision tensors.
	ValueTolFloat64 = 1e-14

	// ValueTolFloat32 bounds value/vector/reconstruction deviations for
	// single-precision tensors.
	ValueTolFloat32 = 1e-4

	// UnitaryTolFloat64 bounds |Xᴴ·X - I| for double-precision bases.
	UnitaryTolFloat64 = 1e-15

	// UnitaryTolFloat32 bounds |Xᴴ·X - I| for single-precision bases.
	UnitaryTolFloat32 = 5e-6
)

// ValueTolerance returns the absolute tolerance for singular value, vector
// and reconstruction comparisons at precision p. Unknown precision tags
// fall back to the looser single-precision bound.
// Complexity: O(1).
func ValueTolerance(p tensor.Precision) float64 {
	if p == tensor.Float64 {
		return ValueTolFloat64
	}

	return ValueTolFloat32
}

// UnitaryTolerance returns the absolute tolerance for the Xᴴ·X ≈ I check
// at precision p. Unknown precision tags fall back to the looser
// single-precision bound.
// Complexity: O(1).
func UnitaryTolerance(p tensor.Precision) float64 {
	if p == tensor.Float64 {
		return UnitaryTolFloat64
	}

	return UnitaryTolFloat32
}
