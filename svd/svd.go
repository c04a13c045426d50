// SPDX-License-Identifier: MIT
// Package svd: decomposition facades and the gonum-backed kernel.
// The facades own rank validation and batch bookkeeping; the per-matrix
// numeric work is delegated to gonum's mat.SVD.

package svd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/svdkit/tensor"
)

// Operation name constants for unified error wrapping.
const (
	opFactorize      = "Factorize"
	opFactorizeBatch = "FactorizeBatch"
)

// svdErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func svdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result holds the outcome of a decomposition.
//
// Values has shape batch + (k) with k = min(rows, cols), singular values in
// descending order. When vectors are computed, U has shape batch + (rows×rows)
// or batch + (rows×k) and V has shape batch + (cols×cols) or batch + (cols×k)
// depending on the full-matrices option; V holds right singular vectors as
// columns (gonum convention, not Vᴴ). U and V are nil under WithValuesOnly.
type Result struct {
	Values *tensor.Dense
	U      *tensor.Dense
	V      *tensor.Dense
}

// Factorize decomposes a single matrix: A = U · diag(S) · Vᴴ.
//
// Contract: a must be non-nil with rank exactly 2. Scalars, vectors and
// higher-rank tensors are value-domain errors; batched inputs belong to
// FactorizeBatch.
//
// Errors: ErrNilTensor, ErrRank, ErrFactorize.
// Complexity: O(rows·cols·min(rows, cols)) via the gonum kernel.
func Factorize(a *tensor.Dense, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, svdErrorf(opFactorize, ErrNilTensor)
	}
	if a.Rank() != 2 {
		return nil, svdErrorf(opFactorize,
			fmt.Errorf("rank %d, want exactly 2: %w", a.Rank(), ErrRank))
	}

	return decompose(a, gatherOptions(opts...), opFactorize)
}

// FactorizeBatch decomposes every trailing matrix of a batched tensor
// independently, preserving the leading batch dimensions in the results.
// A rank-2 input is a batch of one and yields the same values as Factorize.
//
// Contract: a must be non-nil with rank >= 2.
//
// Errors: ErrNilTensor, ErrRank, ErrFactorize.
// Complexity: O(batches·rows·cols·min(rows, cols)).
func FactorizeBatch(a *tensor.Dense, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, svdErrorf(opFactorizeBatch, ErrNilTensor)
	}
	if a.Rank() < 2 {
		return nil, svdErrorf(opFactorizeBatch,
			fmt.Errorf("rank %d, want at least 2: %w", a.Rank(), ErrRank))
	}

	return decompose(a, gatherOptions(opts...), opFactorizeBatch)
}

// decompose runs the per-matrix kernel over every batch element and packs
// the outputs into batch-shaped tensors. Rank has been validated by the
// facades; shape errors below this point are programmer errors and are
// still surfaced as wrapped sentinels rather than panics.
func decompose(a *tensor.Dense, o Options, tag string) (*Result, error) {
	rows, cols, err := a.Dims()
	if err != nil {
		return nil, svdErrorf(tag, err)
	}
	k := min(rows, cols)
	batch := a.BatchShape()
	prec := a.Precision()

	values, err := tensor.New(prec, append(append([]int{}, batch...), k)...)
	if err != nil {
		return nil, svdErrorf(tag, err)
	}
	res := &Result{Values: values}

	// Basis shapes depend on the full-matrices option.
	if o.computeUV {
		uCols, vCols := k, k
		if o.fullMatrices {
			uCols, vCols = rows, cols
		}
		if res.U, err = tensor.New(prec, append(append([]int{}, batch...), rows, uCols)...); err != nil {
			return nil, svdErrorf(tag, err)
		}
		if res.V, err = tensor.New(prec, append(append([]int{}, batch...), cols, vCols)...); err != nil {
			return nil, svdErrorf(tag, err)
		}
	}

	batches := a.Batches()
	for b := 0; b < batches; b++ {
		m, err := a.Matrix(b)
		if err != nil {
			return nil, svdErrorf(tag, err)
		}
		s, u, v, err := factorizeOne(m, o)
		if err != nil {
			return nil, svdErrorf(tag, err)
		}
		// Values are quantized on store through Set.
		for i := 0; i < k; i++ {
			if err = values.Set(b*k+i, s[i]); err != nil {
				return nil, svdErrorf(tag, err)
			}
		}
		if o.computeUV {
			if err = res.U.SetMatrix(b, u); err != nil {
				return nil, svdErrorf(tag, err)
			}
			if err = res.V.SetMatrix(b, v); err != nil {
				return nil, svdErrorf(tag, err)
			}
		}
	}

	return res, nil
}

// factorizeOne decomposes one rank-2 matrix through gonum. The input data
// is already quantized to the tensor's precision; kernel outputs are
// quantized back on conversion, modelling a kernel that computes at the
// tensor's precision.
func factorizeOne(m *tensor.Dense, o Options) ([]float64, *tensor.Dense, *tensor.Dense, error) {
	rows, cols, err := m.Dims()
	if err != nil {
		return nil, nil, nil, err
	}

	kind := mat.SVDNone
	if o.computeUV {
		kind = mat.SVDThin
		if o.fullMatrices {
			kind = mat.SVDFull
		}
	}

	var dec mat.SVD
	if ok := dec.Factorize(mat.NewDense(rows, cols, m.Data()), kind); !ok {
		return nil, nil, nil, ErrFactorize
	}
	s := dec.Values(nil)
	if !o.computeUV {
		return s, nil, nil, nil
	}

	var gu, gv mat.Dense
	dec.UTo(&gu)
	dec.VTo(&gv)
	u, err := fromGonum(m.Precision(), &gu)
	if err != nil {
		return nil, nil, nil, err
	}
	v, err := fromGonum(m.Precision(), &gv)
	if err != nil {
		return nil, nil, nil, err
	}

	return s, u, v, nil
}

// fromGonum copies a gonum dense matrix into a rank-2 tensor of the given
// precision; values quantize through Set.
func fromGonum(p tensor.Precision, g *mat.Dense) (*tensor.Dense, error) {
	r, c := g.Dims()
	out, err := tensor.New(p, r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i*c+j, g.At(i, j)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
