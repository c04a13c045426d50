// SPDX-License-Identifier: MIT
// Package tensor: Dense is the concrete batched tensor implementation.
// Dense stores elements in a flat row-major slice for performance and cache
// friendliness; the trailing two shape dimensions form a matrix and any
// leading dimensions form a batch.

package tensor

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a row-major tensor of real values with a precision tag.
// shape holds the dimensions (possibly empty for a scalar), data holds
// prod(shape) elements in row-major order, and prec is the storage precision.
// Invariant: every element of data is representable at prec (Set quantizes).
type Dense struct {
	shape []int     // dimensions; empty slice means scalar
	data  []float64 // flat backing storage, length == prod(shape)
	prec  Precision // storage precision driving quantization
}

// New creates a zero-initialized Dense of the given precision and shape.
// A call with no dims yields a scalar (rank 0, one element).
//
// Stage 1 (Validate): precision must be known, every dim must be > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new Dense.
//
// Errors: ErrUnknownPrecision, ErrBadShape.
// Complexity: O(prod(shape)) time and memory.
func New(p Precision, shape ...int) (*Dense, error) {
	// Validate the precision tag first; it drives all later quantization.
	if !p.Valid() {
		return nil, denseErrorf("New", ErrUnknownPrecision)
	}
	// Validate dims and compute the element count in one pass.
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, denseErrorf("New", ErrBadShape)
		}
		n *= d
	}
	// Keep an owned copy of the shape; callers must not alias internals.
	dims := make([]int, len(shape))
	copy(dims, shape)

	return &Dense{shape: dims, data: make([]float64, n), prec: p}, nil
}

// Precision returns the storage precision tag.
// Complexity: O(1).
func (t *Dense) Precision() Precision { return t.prec }

// Rank returns the number of dimensions (0 for a scalar).
// Complexity: O(1).
func (t *Dense) Rank() int { return len(t.shape) }

// Shape returns a copy of the dimension list. Mutating the returned slice
// does not affect the tensor.
// Complexity: O(rank).
func (t *Dense) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

// Len returns the total number of elements.
// Complexity: O(1).
func (t *Dense) Len() int { return len(t.data) }

// Dims returns the trailing matrix dimensions (rows, cols).
//
// Contract: rank must be >= 2; scalars and vectors return ErrRank so that
// callers can enforce matrix-only entry points fail-fast.
// Complexity: O(1).
func (t *Dense) Dims() (rows, cols int, err error) {
	if len(t.shape) < 2 {
		return 0, 0, denseErrorf("Dims", ErrRank)
	}

	return t.shape[len(t.shape)-2], t.shape[len(t.shape)-1], nil
}

// BatchShape returns a copy of the leading (batch) dimensions: everything
// before the trailing matrix. Empty for rank 2; nil for rank < 2.
// Complexity: O(rank).
func (t *Dense) BatchShape() []int {
	if len(t.shape) < 2 {
		return nil
	}
	out := make([]int, len(t.shape)-2)
	copy(out, t.shape[:len(t.shape)-2])

	return out
}

// Batches returns the number of trailing matrices: the product of the batch
// dimensions (1 for rank 2). Returns 0 when rank < 2.
// Complexity: O(rank).
func (t *Dense) Batches() int {
	if len(t.shape) < 2 {
		return 0
	}
	n := 1
	for _, d := range t.shape[:len(t.shape)-2] {
		n *= d
	}

	return n
}

// At retrieves the element at flat row-major index i.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (t *Dense) At(i int) (float64, error) {
	if i < 0 || i >= len(t.data) {
		return 0, denseErrorf("At", ErrOutOfRange)
	}

	return t.data[i], nil
}

// Set assigns value v at flat row-major index i, quantized to the tensor's
// precision. This is the single write path that upholds the representability
// invariant.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (t *Dense) Set(i int, v float64) error {
	if i < 0 || i >= len(t.data) {
		return denseErrorf("Set", ErrOutOfRange)
	}
	t.data[i] = t.prec.Round(v)

	return nil
}

// Data returns the flat backing slice. The slice is shared with the tensor;
// callers that write through it bypass quantization and must not do so.
// Complexity: O(1).
func (t *Dense) Data() []float64 { return t.data }

// Matrix extracts the b-th trailing matrix as a fresh rank-2 Dense with the
// same precision. Batch index b walks the batch dimensions in row-major
// order (b == 0 for a rank-2 tensor).
//
// Errors: ErrRank (rank < 2), ErrOutOfRange (b outside [0, Batches)).
// Complexity: O(rows*cols) time and memory.
func (t *Dense) Matrix(b int) (*Dense, error) {
	rows, cols, err := t.Dims()
	if err != nil {
		return nil, denseErrorf("Matrix", ErrRank)
	}
	if b < 0 || b >= t.Batches() {
		return nil, denseErrorf("Matrix", ErrOutOfRange)
	}
	out, err := New(t.prec, rows, cols)
	if err != nil {
		return nil, denseErrorf("Matrix", err)
	}
	// Source data is already quantized; a direct copy preserves the invariant.
	size := rows * cols
	copy(out.data, t.data[b*size:(b+1)*size])

	return out, nil
}

// SetMatrix writes the rank-2 tensor m into the b-th trailing matrix slot.
// The operand is copied; m is not retained.
//
// Errors: ErrNilTensor, ErrRank (receiver rank < 2 or m rank != 2),
// ErrOutOfRange (bad b), ErrShapeMismatch (m dims differ from trailing dims).
// Complexity: O(rows*cols).
func (t *Dense) SetMatrix(b int, m *Dense) error {
	if m == nil {
		return denseErrorf("SetMatrix", ErrNilTensor)
	}
	rows, cols, err := t.Dims()
	if err != nil {
		return denseErrorf("SetMatrix", ErrRank)
	}
	if m.Rank() != 2 {
		return denseErrorf("SetMatrix", ErrRank)
	}
	if b < 0 || b >= t.Batches() {
		return denseErrorf("SetMatrix", ErrOutOfRange)
	}
	if m.shape[0] != rows || m.shape[1] != cols {
		return denseErrorf("SetMatrix", ErrShapeMismatch)
	}
	// Quantize through Set: m may carry a different precision tag.
	size := rows * cols
	base := b * size
	for i := 0; i < size; i++ {
		t.data[base+i] = t.prec.Round(m.data[i])
	}

	return nil
}

// Clone returns a deep copy of the tensor.
// Complexity: O(len) time and memory.
func (t *Dense) Clone() *Dense {
	copyData := make([]float64, len(t.data))
	copy(copyData, t.data)
	copyShape := make([]int, len(t.shape))
	copy(copyShape, t.shape)

	return &Dense{shape: copyShape, data: copyData, prec: t.prec}
}

// String implements fmt.Stringer for easy debugging: precision, shape and
// the flat data in row-major order.
// Complexity: O(len) for string construction.
func (t *Dense) String() string {
	var sb strings.Builder
	sb.WriteString(t.prec.String())
	sb.WriteString(fmt.Sprintf("%v[", t.shape))
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%g", v))
	}
	sb.WriteString("]")

	return sb.String()
}
