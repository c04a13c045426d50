// Package svdcheck: the trusted reference decomposition.
// The reference is computed per matrix in full double precision through
// gonum and returned in the (U, S, Vᴴ) convention: VH is the adjoint of
// the right-vector basis. gonum itself returns V (right vectors as
// columns); the wrapper adjoints it deliberately so the verifier has to
// resolve the convention difference explicitly, which is exactly the
// property a backend with a transposed V would fail.

package svdcheck

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/svdkit/tensor"
)

// Decomposition is a reference factorization in double precision.
//
// S has shape batch + (k), descending. When vectors are requested, U has
// shape batch + (rows × rows|k) and VH has shape batch + (k|cols × cols):
// VH rows are right singular vectors. U and VH are nil for values-only.
type Decomposition struct {
	U  *tensor.Dense
	S  *tensor.Dense
	VH *tensor.Dense
}

// Reference decomposes every trailing matrix of a in full float64,
// regardless of a's precision tag (the input data itself is already
// quantized, so reference and backend factor the same matrix).
//
// Contract: a non-nil with rank >= 2.
//
// Errors: ErrNilInput, tensor.ErrRank (wrapped), ErrReference.
// Complexity: O(batches·rows·cols·min(rows, cols)).
func Reference(a *tensor.Dense, computeUV, fullMatrices bool) (*Decomposition, error) {
	if a == nil {
		return nil, fmt.Errorf("Reference: %w", ErrNilInput)
	}
	rows, cols, err := a.Dims()
	if err != nil {
		return nil, fmt.Errorf("Reference: %w", err)
	}
	k := min(rows, cols)
	batch := a.BatchShape()

	s, err := tensor.New(tensor.Float64, append(append([]int{}, batch...), k)...)
	if err != nil {
		return nil, fmt.Errorf("Reference: %w", err)
	}
	dec := &Decomposition{S: s}

	kind := mat.SVDNone
	if computeUV {
		uCols, vhRows := k, k
		if fullMatrices {
			uCols, vhRows = rows, cols
			kind = mat.SVDFull
		} else {
			kind = mat.SVDThin
		}
		if dec.U, err = tensor.New(tensor.Float64, append(append([]int{}, batch...), rows, uCols)...); err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
		if dec.VH, err = tensor.New(tensor.Float64, append(append([]int{}, batch...), vhRows, cols)...); err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
	}

	batches := a.Batches()
	for b := 0; b < batches; b++ {
		m, err := a.Matrix(b)
		if err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
		var g mat.SVD
		if ok := g.Factorize(mat.NewDense(rows, cols, m.Data()), kind); !ok {
			return nil, fmt.Errorf("Reference: %w", ErrReference)
		}
		for i, v := range g.Values(nil) {
			if err = s.Set(b*k+i, v); err != nil {
				return nil, fmt.Errorf("Reference: %w", err)
			}
		}
		if !computeUV {
			continue
		}
		var gu, gv mat.Dense
		g.UTo(&gu)
		g.VTo(&gv)
		u, err := denseToTensor(&gu, false)
		if err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
		vh, err := denseToTensor(&gv, true) // adjoint into the Vᴴ convention
		if err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
		if err = dec.U.SetMatrix(b, u); err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
		if err = dec.VH.SetMatrix(b, vh); err != nil {
			return nil, fmt.Errorf("Reference: %w", err)
		}
	}

	return dec, nil
}

// denseToTensor copies a gonum matrix into a float64 rank-2 tensor,
// optionally adjointed.
func denseToTensor(g *mat.Dense, adjoint bool) (*tensor.Dense, error) {
	r, c := g.Dims()
	if adjoint {
		r, c = c, r
	}
	out, err := tensor.New(tensor.Float64, r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			// Only the adjointed index is valid on a rectangular source.
			var v float64
			if adjoint {
				v = g.At(j, i)
			} else {
				v = g.At(i, j)
			}
			if err = out.Set(i*c+j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
