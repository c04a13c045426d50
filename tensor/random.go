// SPDX-License-Identifier: MIT
// Package tensor: deterministic pseudo-random generation.
// Randomness is always explicit here: the seed is a required argument, so
// two calls with equal (precision, seed, bounds, shape) produce identical
// tensors. There is no package-level RNG state.

package tensor

import (
	"math"
	"math/rand"
)

// Uniform creates a Dense of the given precision and shape filled with
// pseudo-random values drawn uniformly from [low, high), generated from a
// deterministic source seeded with seed. Values are quantized to p.
//
// Stage 1 (Validate): shape/precision via New; bounds must be finite with
// low < high.
// Stage 2 (Execute): single pass over the flat storage in index order.
//
// Errors: ErrUnknownPrecision, ErrBadShape, ErrBadInterval.
// Determinism: fixed fill order 0..len-1 from a private rand.Source.
// Complexity: O(prod(shape)).
func Uniform(p Precision, seed int64, low, high float64, shape ...int) (*Dense, error) {
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) || low >= high {
		return nil, denseErrorf("Uniform", ErrBadInterval)
	}
	out, err := New(p, shape...)
	if err != nil {
		return nil, denseErrorf("Uniform", err)
	}
	rng := rand.New(rand.NewSource(seed))
	span := high - low
	for i := range out.data {
		out.data[i] = p.Round(low + span*rng.Float64())
	}

	return out, nil
}
