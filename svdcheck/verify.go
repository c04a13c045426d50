// Package svdcheck: the verification properties and the Run procedure.
// Each check validates fail-fast, never mutates its inputs, and wraps its
// verdict in exactly one property sentinel; the underlying deviation detail
// (max |a-b|, flat index) is kept in the message for diagnosis.

package svdcheck

import (
	"fmt"
	"math"

	"github.com/katalvlaran/svdkit/svd"
	"github.com/katalvlaran/svdkit/tensor"
)

// Seed is the fixed seed of the verification sweep. Every Run call over the
// same (precision, shape) reproduces the same input matrix bit-for-bit.
const Seed int64 = 1

// Input interval for the generated matrices.
const (
	uniformLow  = -1.0
	uniformHigh = 1.0
)

// CompareSingularVectors asserts that x matches y elementwise within
// atol + RelativeTol·|y| after normalizing per-column sign ambiguity.
//
// Singular vectors are unique only up to a unit phase factor, ±1 for real
// matrices: a backend may legitimately return any column of x or y negated
// as a pair. Normalization computes, for every column, the sign of the sum
// of elementwise ratios x/y along the rows axis, and multiplies x's column
// by it before the elementwise comparison. Ratio terms that are not finite
// (both entries zero, or a zero denominator) carry no sign information and
// are skipped; a non-negative sum normalizes to +1.
//
// Contract: both operands non-nil, rank >= 2, identical shapes. Inputs are
// not mutated; x is cloned for normalization.
//
// Errors: ErrNilInput, tensor.ErrRank / tensor.ErrShapeMismatch (wrapped),
// ErrVectorsMismatch.
// Complexity: Time O(len), Space O(len) for the clone.
func CompareSingularVectors(x, y *tensor.Dense, atol float64) error {
	if x == nil || y == nil {
		return fmt.Errorf("CompareSingularVectors: %w", ErrNilInput)
	}
	rows, cols, err := x.Dims()
	if err != nil {
		return fmt.Errorf("CompareSingularVectors: %w", err)
	}
	if !equalShapes(x.Shape(), y.Shape()) {
		return fmt.Errorf("CompareSingularVectors: %w", tensor.ErrShapeMismatch)
	}

	xn := x.Clone()
	xd, yd := xn.Data(), y.Data()
	size := rows * cols
	var (
		b, i, j, base int
		sum, ratio    float64
	)
	for b = 0; b < x.Batches(); b++ {
		base = b * size
		for j = 0; j < cols; j++ {
			// Sign of the summed ratio along the rows axis.
			sum = 0
			for i = 0; i < rows; i++ {
				ratio = xd[base+i*cols+j] / yd[base+i*cols+j]
				if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
					continue // no sign information in a degenerate ratio
				}
				sum += ratio
			}
			if sum < 0 {
				for i = 0; i < rows; i++ {
					// Negation preserves representability at any precision.
					xd[base+i*cols+j] = -xd[base+i*cols+j]
				}
			}
		}
	}

	if err = tensor.AllClose(xn, y, atol, RelativeTol); err != nil {
		return fmt.Errorf("CompareSingularVectors: %v: %w", err, ErrVectorsMismatch)
	}

	return nil
}

// CheckReconstruction asserts that U · diag(S) · Vᴴ recovers a elementwise
// within atol + RelativeTol·|a|.
//
// diag(S) is zero-padded to the operand's rows×cols shape under the
// full-matrices convention (U is rows×rows, V is cols×cols, so the
// rectangular pad restores conformability); under the economy convention
// diag(S) is the square k×k core.
//
// Contract: all tensors non-nil; a rank >= 2; u, s, v shaped as produced by
// the svd package for a and the given convention.
//
// Errors: ErrNilInput, tensor sentinels (wrapped), ErrReconstructionMismatch.
// Complexity: Time O(batches·rows·cols·k), Space O(len(a)).
func CheckReconstruction(a, u, s, v *tensor.Dense, fullMatrices bool, atol float64) error {
	if a == nil || u == nil || s == nil || v == nil {
		return fmt.Errorf("CheckReconstruction: %w", ErrNilInput)
	}
	rows, cols, err := a.Dims()
	if err != nil {
		return fmt.Errorf("CheckReconstruction: %w", err)
	}
	// Core shape per the basis convention.
	dRows, dCols := min(rows, cols), min(rows, cols)
	if fullMatrices {
		dRows, dCols = rows, cols
	}
	diag, err := tensor.DiagEmbed(s, dRows, dCols)
	if err != nil {
		return fmt.Errorf("CheckReconstruction: %w", err)
	}
	us, err := tensor.MatMul(u, diag, false, false)
	if err != nil {
		return fmt.Errorf("CheckReconstruction: %w", err)
	}
	recon, err := tensor.MatMul(us, v, false, true) // · Vᴴ
	if err != nil {
		return fmt.Errorf("CheckReconstruction: %w", err)
	}
	if err = tensor.AllClose(recon, a, atol, RelativeTol); err != nil {
		return fmt.Errorf("CheckReconstruction: %v: %w", err, ErrReconstructionMismatch)
	}

	return nil
}

// CheckUnitary asserts that the columns of every matrix in x form an
// orthonormal set: Xᴴ·X ≈ I within atol (plus the RelativeTol term on the
// identity's entries).
//
// Errors: ErrNilInput, tensor sentinels (wrapped), ErrNotUnitary.
// Complexity: Time O(batches·rows·cols²), Space O(batches·cols²).
func CheckUnitary(x *tensor.Dense, atol float64) error {
	if x == nil {
		return fmt.Errorf("CheckUnitary: %w", ErrNilInput)
	}
	_, cols, err := x.Dims()
	if err != nil {
		return fmt.Errorf("CheckUnitary: %w", err)
	}
	xx, err := tensor.MatMul(x, x, true, false) // Xᴴ·X
	if err != nil {
		return fmt.Errorf("CheckUnitary: %w", err)
	}
	id, err := tensor.Eye(x.Precision(), cols, x.BatchShape()...)
	if err != nil {
		return fmt.Errorf("CheckUnitary: %w", err)
	}
	if err = tensor.AllClose(xx, id, atol, RelativeTol); err != nil {
		return fmt.Errorf("CheckUnitary: %v: %w", err, ErrNotUnitary)
	}

	return nil
}

// Run is the top-level verification procedure for one (precision, shape)
// case. It generates the seeded input, then for every combination of the
// compute-UV and full-matrices options invokes the backend (single-matrix
// facade for rank 2, batched facade otherwise) and the reference, and
// checks every property the combination exposes:
//
//   - singular values always;
//   - when vectors are computed: both bases (sign-normalized, with the
//     reference's Vᴴ adjointed back to the backend's V convention),
//     the reconstruction, and the unitarity of U and V.
//
// The first violated property aborts the case; the returned error names
// the option combination and wraps the property sentinel. A nil return
// means every combination passed.
//
// Determinism: fixed seed, fixed combination order (values-only before
// vectors, economy before full).
// Complexity: dominated by the four factorization rounds.
func Run(p tensor.Precision, shape ...int) error {
	x, err := tensor.Uniform(p, Seed, uniformLow, uniformHigh, shape...)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	for _, computeUV := range []bool{false, true} {
		for _, fullMatrices := range []bool{false, true} {
			if err = runCase(x, computeUV, fullMatrices); err != nil {
				return fmt.Errorf("Run(%s, %v) computeUV=%t fullMatrices=%t: %w",
					p, shape, computeUV, fullMatrices, err)
			}
		}
	}

	return nil
}

// runCase verifies a single option combination against the reference.
func runCase(x *tensor.Dense, computeUV, fullMatrices bool) error {
	opts := make([]svd.Option, 0, 2)
	if computeUV {
		opts = append(opts, svd.WithVectors())
	} else {
		opts = append(opts, svd.WithValuesOnly())
	}
	if fullMatrices {
		opts = append(opts, svd.WithFullMatrices())
	} else {
		opts = append(opts, svd.WithThinMatrices())
	}

	// Single-matrix facade for rank 2, batched facade otherwise.
	var (
		res *svd.Result
		err error
	)
	if x.Rank() == 2 {
		res, err = svd.Factorize(x, opts...)
	} else {
		res, err = svd.FactorizeBatch(x, opts...)
	}
	if err != nil {
		return err
	}
	ref, err := Reference(x, computeUV, fullMatrices)
	if err != nil {
		return err
	}

	atol := ValueTolerance(x.Precision())
	if err = tensor.AllClose(ref.S, res.Values, atol, RelativeTol); err != nil {
		return fmt.Errorf("singular values: %v: %w", err, ErrValuesMismatch)
	}
	if !computeUV {
		return nil
	}

	if err = CompareSingularVectors(ref.U, res.U, atol); err != nil {
		return fmt.Errorf("left vectors: %w", err)
	}
	// The reference follows the (U, S, Vᴴ) convention; adjoint back to V.
	refV, err := tensor.Adjoint(ref.VH)
	if err != nil {
		return err
	}
	if err = CompareSingularVectors(refV, res.V, atol); err != nil {
		return fmt.Errorf("right vectors: %w", err)
	}
	if err = CheckReconstruction(x, res.U, res.Values, res.V, fullMatrices, atol); err != nil {
		return err
	}
	unitaryAtol := UnitaryTolerance(x.Precision())
	if err = CheckUnitary(res.U, unitaryAtol); err != nil {
		return fmt.Errorf("U: %w", err)
	}
	if err = CheckUnitary(res.V, unitaryAtol); err != nil {
		return fmt.Errorf("V: %w", err)
	}

	return nil
}

// equalShapes reports elementwise equality of two shape slices.
func equalShapes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
