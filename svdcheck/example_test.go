package svdcheck_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/svdkit/svdcheck"
	"github.com/katalvlaran/svdkit/tensor"
)

// ExampleRun verifies the decomposition of a seeded 3×2 double-precision
// matrix across every option combination.
func ExampleRun() {
	err := svdcheck.Run(tensor.Float64, 3, 2)
	fmt.Println(err == nil)
	// Output: true
}

// ExampleCompareSingularVectors shows that a per-column sign flip, a
// legitimate difference between two valid decompositions, compares equal.
func ExampleCompareSingularVectors() {
	x, _ := tensor.New(tensor.Float64, 2, 2)
	_ = x.Set(0, 1)
	_ = x.Set(3, 1)
	y := x.Clone()
	_ = y.Set(3, -1) // second column negated

	err := svdcheck.CompareSingularVectors(x, y, 1e-15)
	fmt.Println(err == nil, errors.Is(err, svdcheck.ErrVectorsMismatch))
	// Output: true false
}
