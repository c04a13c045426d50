// SPDX-License-Identifier: MIT
package svd_test

import (
	"fmt"

	"github.com/katalvlaran/svdkit/svd"
	"github.com/katalvlaran/svdkit/tensor"
)

// ExampleFactorize decomposes a diagonal matrix whose singular values are
// known in advance.
func ExampleFactorize() {
	a, _ := tensor.New(tensor.Float64, 2, 2)
	_ = a.Set(0, 3) // a[0,0]
	_ = a.Set(3, 2) // a[1,1]

	res, _ := svd.Factorize(a, svd.WithValuesOnly())
	fmt.Printf("%.0f\n", res.Values.Data())
	// Output: [3 2]
}

// ExampleFactorizeBatch shows the shape bookkeeping for a batched input.
func ExampleFactorizeBatch() {
	x, _ := tensor.Uniform(tensor.Float64, 1, -1, 1, 3, 5, 4)

	res, _ := svd.FactorizeBatch(x, svd.WithFullMatrices())
	fmt.Println(res.Values.Shape(), res.U.Shape(), res.V.Shape())
	// Output: [3 4] [3 5 5] [3 4 4]
}
