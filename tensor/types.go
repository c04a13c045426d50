// SPDX-License-Identifier: MIT
// Package tensor: precision tags and the quantization policy attached to them.

package tensor

// Precision selects the storage precision of a Dense tensor.
//
//   - Float64 — IEEE 754 double precision. Values are stored verbatim.
//   - Float32 — IEEE 754 single precision. Every stored value is quantized
//     through a float32 round trip, so the tensor only ever holds
//     float32-representable values even though the backing slice is []float64.
//
// The tag travels with the tensor and drives tolerance selection in the
// svdcheck package.
type Precision int

const (
	// Float64 stores values at full double precision.
	Float64 Precision = iota

	// Float32 quantizes every stored value to single precision.
	Float32
)

// String implements fmt.Stringer with the conventional dtype spelling.
// Complexity: O(1).
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return "precision(?)"
	}
}

// Valid reports whether p is one of the supported precision tags.
// Complexity: O(1).
func (p Precision) Valid() bool {
	return p == Float64 || p == Float32
}

// Round quantizes v to the precision p.
//
// Contract: identity for Float64; float32 round trip for Float32.
// Determinism: pure function of (p, v), IEEE round-to-nearest-even.
// Complexity: O(1).
func (p Precision) Round(v float64) float64 {
	if p == Float32 {
		return float64(float32(v))
	}

	return v
}
