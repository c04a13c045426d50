// Package svdcheck: sentinel error set.
// Every verification failure wraps exactly one of these sentinels so that
// callers (and tests) can classify the violated property via errors.Is.

package svdcheck

import "errors"

var (
	// ErrNilInput indicates a nil tensor or nil decomposition argument.
	ErrNilInput = errors.New("svdcheck: nil input")

	// ErrValuesMismatch signals singular values outside tolerance.
	ErrValuesMismatch = errors.New("svdcheck: singular values outside tolerance")

	// ErrVectorsMismatch signals singular vectors outside tolerance after
	// sign normalization.
	ErrVectorsMismatch = errors.New("svdcheck: singular vectors outside tolerance")

	// ErrReconstructionMismatch signals that U · diag(S) · Vᴴ does not
	// recover the input within tolerance.
	ErrReconstructionMismatch = errors.New("svdcheck: reconstruction outside tolerance")

	// ErrNotUnitary signals that a computed basis fails the Xᴴ·X ≈ I check.
	ErrNotUnitary = errors.New("svdcheck: basis is not unitary within tolerance")

	// ErrReference indicates that the trusted reference decomposition itself
	// failed to converge; the verdict is then meaningless.
	ErrReference = errors.New("svdcheck: reference decomposition failed")
)
