// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary. Callers still match via errors.Is.

var (
	// ErrNilTensor indicates that a nil *Dense (receiver or argument) was used.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrBadShape is returned when a requested shape is invalid (some dim <= 0).
	// Constructors must validate shapes before allocation.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrUnknownPrecision signals a Precision value outside {Float64, Float32}.
	ErrUnknownPrecision = errors.New("tensor: unknown precision")

	// ErrRank signals that a tensor's rank violates an operation's contract,
	// e.g. Dims on a scalar or vector, or a batch index on a rank-1 tensor.
	ErrRank = errors.New("tensor: rank out of contract")

	// ErrOutOfRange indicates that an index (flat or batch) is outside valid
	// bounds. Public indexers (At/Set/Matrix) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. MatMul inner dimensions, batch dimensions, or AllClose operands.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrBadInterval is returned by Uniform when low >= high or a bound is
	// not finite.
	ErrBadInterval = errors.New("tensor: invalid interval")

	// ErrBadTolerance is returned by AllClose when atol is negative or NaN.
	ErrBadTolerance = errors.New("tensor: invalid tolerance")

	// ErrToleranceExceeded signals that an elementwise comparison found a
	// deviation above the configured absolute tolerance. The wrapping error
	// carries the maximum deviation and its flat index.
	ErrToleranceExceeded = errors.New("tensor: tolerance exceeded")
)
