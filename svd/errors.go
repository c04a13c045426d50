// SPDX-License-Identifier: MIT
// Package svd: sentinel error set.
// All facades MUST return these sentinels (wrapped with operation context)
// and tests MUST check them via errors.Is.

package svd

import "errors"

var (
	// ErrNilTensor indicates that a nil input tensor was passed to a facade.
	ErrNilTensor = errors.New("svd: nil tensor")

	// ErrRank signals a value-domain violation of the rank contract:
	// Factorize requires rank exactly 2, FactorizeBatch requires rank >= 2.
	ErrRank = errors.New("svd: invalid input rank")

	// ErrFactorize indicates that the underlying kernel failed to converge.
	// Not expected for the well-conditioned inputs of the verification sweep.
	ErrFactorize = errors.New("svd: factorization failed")
)
