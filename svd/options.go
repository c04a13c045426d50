// SPDX-License-Identifier: MIT
// Package svd: functional configuration for the decomposition facades.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, last-writer-wins semantics.
//   - No dead switches: each flag changes the result shape and is covered
//     by tests.
//   - Reusability: Options fields are unexported; public APIs consume
//     ...Option.

package svd

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultComputeUV controls whether singular vector bases are computed.
	// true ⇒ Result carries U and V in addition to the values.
	DefaultComputeUV = true

	// DefaultFullMatrices controls the basis shape when vectors are computed.
	// false ⇒ economy-sized bases truncated to k = min(rows, cols).
	DefaultFullMatrices = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	computeUV    bool // DefaultComputeUV
	fullMatrices bool // DefaultFullMatrices
}

// WithValuesOnly requests singular values without the vector bases.
// Result.U and Result.V will be nil.
// Complexity: O(1).
func WithValuesOnly() Option {
	return func(o *Options) { o.computeUV = false }
}

// WithVectors requests the singular vector bases U and V (the default).
// Complexity: O(1).
func WithVectors() Option {
	return func(o *Options) { o.computeUV = true }
}

// WithFullMatrices requests full square orthonormal bases: U is rows×rows
// and V is cols×cols. Has no effect when values-only is selected.
// Complexity: O(1).
func WithFullMatrices() Option {
	return func(o *Options) { o.fullMatrices = true }
}

// WithThinMatrices requests economy-sized bases truncated to
// k = min(rows, cols): U is rows×k and V is cols×k (the default).
// Complexity: O(1).
func WithThinMatrices() Option {
	return func(o *Options) { o.fullMatrices = false }
}

// gatherOptions applies user-provided Option setters on top of the
// documented defaults. Last-writer-wins; stable for a given sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		computeUV:    DefaultComputeUV,
		fullMatrices: DefaultFullMatrices,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
