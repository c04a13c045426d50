// SPDX-License-Identifier: MIT
// Package tensor: batched linear-algebra kernels for decomposition checks.
// All kernels perform strict fail-fast validation, allocate fresh results,
// never mutate their operands, and use fixed loop orders so results are
// bit-for-bit reproducible across runs.

package tensor

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatMul    = "MatMul"
	opAdjoint   = "Adjoint"
	opDiagEmbed = "DiagEmbed"
	opEye       = "Eye"
	opAllClose  = "AllClose"
)

// tensorErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting. Use only when err != nil.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameShape reports whether two tensors have identical rank and dimensions.
// Assumes both operands are non-nil (caller must ensure).
// Complexity: O(rank).
func sameShape(a, b *Dense) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return true
}

// sameBatch reports whether two tensors share identical batch dimensions.
// Assumes both operands have rank >= 2.
// Complexity: O(rank).
func sameBatch(a, b *Dense) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := 0; i < len(a.shape)-2; i++ {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}

	return true
}

// MatMul computes the batched matrix product C = op(A) × op(B), where
// op(X) is X itself or its adjoint (real transpose) per the adjA/adjB flags.
// The adjoint is applied via index arithmetic; no transposed copy is formed.
//
// Contract: both operands non-nil with rank >= 2, identical batch
// dimensions, and compatible inner dimensions after applying the flags.
// The result carries A's precision; accumulation runs in float64 and each
// output element is quantized on store.
//
// Inputs:
//   - a: left operand, batch + (ra × ca).
//   - b: right operand, batch + (rb × cb), same batch dims as a.
//   - adjA, adjB: apply the adjoint to the respective operand.
//
// Returns:
//   - *Dense: batch + (m × n) product with m, n the outer dims after op().
//
// Errors: ErrNilTensor, ErrRank, ErrShapeMismatch.
// Determinism: fixed batch → i → j → l loop order.
// Complexity: Time O(batches·m·n·k), Space O(batches·m·n).
func MatMul(a, b *Dense, adjA, adjB bool) (*Dense, error) {
	if a == nil || b == nil {
		return nil, tensorErrorf(opMatMul, ErrNilTensor)
	}
	ra, ca, err := a.Dims()
	if err != nil {
		return nil, tensorErrorf(opMatMul, ErrRank)
	}
	rb, cb, err := b.Dims()
	if err != nil {
		return nil, tensorErrorf(opMatMul, ErrRank)
	}
	if !sameBatch(a, b) {
		return nil, tensorErrorf(opMatMul, ErrShapeMismatch)
	}
	// Effective outer/inner dimensions after the optional adjoints.
	m, ka := ra, ca
	if adjA {
		m, ka = ca, ra
	}
	kb, n := rb, cb
	if adjB {
		kb, n = cb, rb
	}
	if ka != kb {
		return nil, tensorErrorf(opMatMul, ErrShapeMismatch)
	}

	out, err := New(a.prec, append(a.BatchShape(), m, n)...)
	if err != nil {
		return nil, tensorErrorf(opMatMul, err)
	}

	var (
		bi, i, j, l            int // loop iterators (deterministic order)
		baseA, baseB, baseO    int // flat batch offsets
		sizeA, sizeB, sizeO    int // per-matrix element counts
		av, bv, sum            float64
		batches                = a.Batches()
	)
	sizeA, sizeB, sizeO = ra*ca, rb*cb, m*n
	for bi = 0; bi < batches; bi++ {
		baseA, baseB, baseO = bi*sizeA, bi*sizeB, bi*sizeO
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				sum = 0
				for l = 0; l < ka; l++ {
					// op(A)(i,l): stored (i,l) or (l,i) depending on adjA.
					if adjA {
						av = a.data[baseA+l*ca+i]
					} else {
						av = a.data[baseA+i*ca+l]
					}
					// op(B)(l,j): stored (l,j) or (j,l) depending on adjB.
					if adjB {
						bv = b.data[baseB+j*cb+l]
					} else {
						bv = b.data[baseB+l*cb+j]
					}
					sum += av * bv
				}
				out.data[baseO+i*n+j] = out.prec.Round(sum)
			}
		}
	}

	return out, nil
}

// Adjoint returns a new tensor with the trailing two axes swapped (the real
// transpose of every matrix in the batch). The input is never mutated.
//
// Errors: ErrNilTensor, ErrRank (rank < 2).
// Determinism: fixed batch → i → j copy order.
// Complexity: Time O(len), Space O(len).
func Adjoint(x *Dense) (*Dense, error) {
	if x == nil {
		return nil, tensorErrorf(opAdjoint, ErrNilTensor)
	}
	rows, cols, err := x.Dims()
	if err != nil {
		return nil, tensorErrorf(opAdjoint, ErrRank)
	}
	out, err := New(x.prec, append(x.BatchShape(), cols, rows)...)
	if err != nil {
		return nil, tensorErrorf(opAdjoint, err)
	}

	var bi, i, j, base int
	size := rows * cols
	for bi = 0; bi < x.Batches(); bi++ {
		base = bi * size
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				// data[base + i*cols + j] → out.data[base + j*rows + i]
				out.data[base+j*rows+i] = x.data[base+i*cols+j]
			}
		}
	}

	return out, nil
}

// DiagEmbed embeds batched value vectors into zero-padded diagonal matrices:
// for each batch element, out[i,i] = s[i] and every off-diagonal entry is
// zero. rows×cols may be rectangular; the trailing dimension of s must equal
// min(rows, cols). This mirrors the shape conventions of a full-matrices
// decomposition where diag(S) is padded to the operand's shape.
//
// Inputs:
//   - s: values, batch + (k) with rank >= 1.
//   - rows, cols: target matrix shape, both > 0.
//
// Returns:
//   - *Dense: batch + (rows × cols) with s on the main diagonal.
//
// Errors: ErrNilTensor, ErrRank (scalar s), ErrBadShape, ErrShapeMismatch
// (k != min(rows, cols)).
// Complexity: Time O(batches·rows·cols), Space same.
func DiagEmbed(s *Dense, rows, cols int) (*Dense, error) {
	if s == nil {
		return nil, tensorErrorf(opDiagEmbed, ErrNilTensor)
	}
	if s.Rank() < 1 {
		return nil, tensorErrorf(opDiagEmbed, ErrRank)
	}
	if rows <= 0 || cols <= 0 {
		return nil, tensorErrorf(opDiagEmbed, ErrBadShape)
	}
	k := s.shape[len(s.shape)-1]
	if k != min(rows, cols) {
		return nil, tensorErrorf(opDiagEmbed, ErrShapeMismatch)
	}
	batch := make([]int, len(s.shape)-1)
	copy(batch, s.shape[:len(s.shape)-1])
	out, err := New(s.prec, append(batch, rows, cols)...)
	if err != nil {
		return nil, tensorErrorf(opDiagEmbed, err)
	}

	batches := 1
	for _, d := range batch {
		batches *= d
	}
	size := rows * cols
	var bi, i int
	for bi = 0; bi < batches; bi++ {
		for i = 0; i < k; i++ {
			out.data[bi*size+i*cols+i] = s.data[bi*k+i]
		}
	}

	return out, nil
}

// Eye creates a batched n×n identity of the given precision: shape
// batch + (n × n) with ones on every main diagonal.
//
// Errors: ErrUnknownPrecision, ErrBadShape (n <= 0 or a batch dim <= 0).
// Complexity: Time O(batches·n²), Space same.
func Eye(p Precision, n int, batch ...int) (*Dense, error) {
	if n <= 0 {
		return nil, tensorErrorf(opEye, ErrBadShape)
	}
	out, err := New(p, append(append([]int{}, batch...), n, n)...)
	if err != nil {
		return nil, tensorErrorf(opEye, err)
	}
	batches := out.Batches()
	size := n * n
	for bi := 0; bi < batches; bi++ {
		for i := 0; i < n; i++ {
			out.data[bi*size+i*n+i] = 1
		}
	}

	return out, nil
}

// AllClose asserts elementwise |a[i] - b[i]| <= atol + rtol·|b[i]| over the
// full flat storage. Shapes must match exactly; precision tags may differ
// (comparing a quantized result against a full-precision reference is the
// intended use). The relative term scales with the second operand, so b is
// the reference side of the comparison; pass rtol = 0 for a purely absolute
// bound.
//
// On failure the returned error wraps ErrToleranceExceeded and reports the
// deviation that overshoots its elementwise bound the most, with its flat
// index, so a failing check pinpoints the offending element without
// re-running.
//
// Errors: ErrNilTensor, ErrBadTolerance (atol or rtol < 0 or NaN),
// ErrShapeMismatch, ErrToleranceExceeded. NaN deviations always exceed any
// tolerance.
// Determinism: full scan in flat order; ties report the first occurrence.
// Complexity: Time O(len), Space O(1).
func AllClose(a, b *Dense, atol, rtol float64) error {
	if a == nil || b == nil {
		return tensorErrorf(opAllClose, ErrNilTensor)
	}
	if math.IsNaN(atol) || atol < 0 || math.IsNaN(rtol) || rtol < 0 {
		return tensorErrorf(opAllClose, ErrBadTolerance)
	}
	if !sameShape(a, b) {
		return tensorErrorf(opAllClose, ErrShapeMismatch)
	}

	var (
		worstDiff float64
		worstIdx  int
		worstOver float64 // deviation minus its elementwise bound
		bad       bool    // set when a NaN deviation is observed
	)
	for i := range a.data {
		diff := math.Abs(a.data[i] - b.data[i])
		if math.IsNaN(diff) {
			// NaN never compares close; remember the first occurrence.
			if !bad {
				bad, worstDiff, worstIdx = true, diff, i
			}

			continue
		}
		if bad {
			continue
		}
		over := diff - (atol + rtol*math.Abs(b.data[i]))
		if over > worstOver {
			worstOver, worstDiff, worstIdx = over, diff, i
		}
	}
	if bad || worstOver > 0 {
		return tensorErrorf(opAllClose,
			fmt.Errorf("max |a-b| = %g at flat index %d (atol = %g, rtol = %g): %w",
				worstDiff, worstIdx, atol, rtol, ErrToleranceExceeded))
	}

	return nil
}
