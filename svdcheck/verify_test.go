package svdcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/svdkit/svd"
	"github.com/katalvlaran/svdkit/svdcheck"
	"github.com/katalvlaran/svdkit/tensor"
)

// fill writes vals into a fresh tensor in flat order.
func fill(t *testing.T, p tensor.Precision, shape []int, vals []float64) *tensor.Dense {
	t.Helper()
	out, err := tensor.New(p, shape...)
	require.NoError(t, err)
	require.Len(t, vals, out.Len())
	for i, v := range vals {
		require.NoError(t, out.Set(i, v))
	}

	return out
}

func TestCompareSingularVectors_SignFlipPasses(t *testing.T) {
	// Two orthonormal columns; y negates the second one. A per-column sign
	// flip is a legitimate decomposition difference and must compare equal.
	x := fill(t, tensor.Float64, []int{2, 2}, []float64{1, 0, 0, 1})
	y := fill(t, tensor.Float64, []int{2, 2}, []float64{1, 0, 0, -1})

	require.NoError(t, svdcheck.CompareSingularVectors(x, y, 1e-15))

	// Inputs are not mutated by the normalization.
	require.Equal(t, []float64{1, 0, 0, 1}, x.Data())
	require.Equal(t, []float64{1, 0, 0, -1}, y.Data())
}

func TestCompareSingularVectors_RealMismatchFails(t *testing.T) {
	// A genuine rotation is not a sign flip and must be rejected.
	x := fill(t, tensor.Float64, []int{2, 2}, []float64{1, 0, 0, 1})
	y := fill(t, tensor.Float64, []int{2, 2}, []float64{0, 1, 1, 0})

	err := svdcheck.CompareSingularVectors(x, y, 1e-6)
	require.ErrorIs(t, err, svdcheck.ErrVectorsMismatch)
}

func TestCompareSingularVectors_ZeroRatiosSkipped(t *testing.T) {
	// Zero entries produce degenerate ratios that carry no sign information;
	// the remaining entries still decide the flip.
	x := fill(t, tensor.Float64, []int{3, 1}, []float64{0, 0.6, 0.8})
	y := fill(t, tensor.Float64, []int{3, 1}, []float64{0, -0.6, -0.8})

	require.NoError(t, svdcheck.CompareSingularVectors(x, y, 1e-15))
}

func TestCompareSingularVectors_Contracts(t *testing.T) {
	x := fill(t, tensor.Float64, []int{2, 2}, []float64{1, 0, 0, 1})

	require.ErrorIs(t, svdcheck.CompareSingularVectors(nil, x, 1e-6), svdcheck.ErrNilInput)
	require.ErrorIs(t, svdcheck.CompareSingularVectors(x, nil, 1e-6), svdcheck.ErrNilInput)

	v := fill(t, tensor.Float64, []int{4}, []float64{1, 0, 0, 1})
	require.ErrorIs(t, svdcheck.CompareSingularVectors(v, v, 1e-6), tensor.ErrRank)

	wide := fill(t, tensor.Float64, []int{1, 4}, []float64{1, 0, 0, 1})
	require.ErrorIs(t, svdcheck.CompareSingularVectors(x, wide, 1e-6), tensor.ErrShapeMismatch)
}

func TestCheckReconstruction(t *testing.T) {
	x, err := tensor.Uniform(tensor.Float64, 3, -1, 1, 4, 3)
	require.NoError(t, err)

	// Economy decomposition reconstructs through the square k×k core.
	thin, err := svd.Factorize(x)
	require.NoError(t, err)
	require.NoError(t, svdcheck.CheckReconstruction(x, thin.U, thin.Values, thin.V, false, 1e-14))

	// Full decomposition reconstructs through the zero-padded rows×cols core.
	full, err := svd.Factorize(x, svd.WithFullMatrices())
	require.NoError(t, err)
	require.NoError(t, svdcheck.CheckReconstruction(x, full.U, full.Values, full.V, true, 1e-14))

	// A perturbed basis breaks the product.
	bad := full.U.Clone()
	require.NoError(t, bad.Set(0, 1))
	err = svdcheck.CheckReconstruction(x, bad, full.Values, full.V, true, 1e-14)
	require.ErrorIs(t, err, svdcheck.ErrReconstructionMismatch)

	require.ErrorIs(t, svdcheck.CheckReconstruction(nil, full.U, full.Values, full.V, true, 1e-14), svdcheck.ErrNilInput)
}

func TestCheckUnitary(t *testing.T) {
	// The identity is trivially unitary.
	id, err := tensor.Eye(tensor.Float64, 3)
	require.NoError(t, err)
	require.NoError(t, svdcheck.CheckUnitary(id, 1e-15))

	// A scaled identity is not.
	two := id.Clone()
	for i := 0; i < 3; i++ {
		require.NoError(t, two.Set(i*3+i, 2))
	}
	require.ErrorIs(t, svdcheck.CheckUnitary(two, 1e-6), svdcheck.ErrNotUnitary)

	// Computed bases from a real decomposition pass at machine precision.
	x, err := tensor.Uniform(tensor.Float64, 9, -1, 1, 5, 3)
	require.NoError(t, err)
	res, err := svd.Factorize(x, svd.WithFullMatrices())
	require.NoError(t, err)
	require.NoError(t, svdcheck.CheckUnitary(res.U, svdcheck.UnitaryTolFloat64))
	require.NoError(t, svdcheck.CheckUnitary(res.V, svdcheck.UnitaryTolFloat64))

	require.ErrorIs(t, svdcheck.CheckUnitary(nil, 1e-6), svdcheck.ErrNilInput)
}

func TestCheckUnitary_LargeDoubleBasis(t *testing.T) {
	// Wider double-precision bases are orthonormal only to roughly 1e-15 in
	// the absolute sense; the relative term keeps the tight bound usable for
	// 10×10 bases.
	x, err := tensor.Uniform(tensor.Float64, 13, -1, 1, 10, 10)
	require.NoError(t, err)
	res, err := svd.Factorize(x, svd.WithFullMatrices())
	require.NoError(t, err)

	require.NoError(t, svdcheck.CheckUnitary(res.U, svdcheck.UnitaryTolFloat64))
	require.NoError(t, svdcheck.CheckUnitary(res.V, svdcheck.UnitaryTolFloat64))
	require.NoError(t, svdcheck.Run(tensor.Float64, 10, 10))
}

func TestReference_WideThinMatrix(t *testing.T) {
	// rows < cols: gonum's thin V is rectangular (cols×k), so building the
	// Vᴴ convention exercises the adjoint of a non-square matrix.
	x, err := tensor.Uniform(tensor.Float64, 4, -1, 1, 3, 5)
	require.NoError(t, err)

	dec, err := svdcheck.Reference(x, true, false)
	require.NoError(t, err)
	require.Equal(t, []int{3}, dec.S.Shape())
	require.Equal(t, []int{3, 3}, dec.U.Shape())
	require.Equal(t, []int{3, 5}, dec.VH.Shape())

	// Round trip against the backend: adjoint Vᴴ back to V and compare.
	res, err := svd.Factorize(x)
	require.NoError(t, err)
	require.Equal(t, []int{5, 3}, res.V.Shape())
	refV, err := tensor.Adjoint(dec.VH)
	require.NoError(t, err)
	require.Equal(t, []int{5, 3}, refV.Shape())
	require.NoError(t, svdcheck.CompareSingularVectors(refV, res.V, svdcheck.ValueTolFloat64))

	require.NoError(t, svdcheck.Run(tensor.Float64, 3, 5))
}

func TestReference_ShapesAndConvention(t *testing.T) {
	x, err := tensor.Uniform(tensor.Float64, 2, -1, 1, 2, 4, 3)
	require.NoError(t, err)

	// Values-only carries S alone.
	dec, err := svdcheck.Reference(x, false, false)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, dec.S.Shape())
	require.Nil(t, dec.U)
	require.Nil(t, dec.VH)

	// Economy: U is rows×k, VH is k×cols.
	dec, err = svdcheck.Reference(x, true, false)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 3}, dec.U.Shape())
	require.Equal(t, []int{2, 3, 3}, dec.VH.Shape())

	// Full: U is rows×rows, VH is cols×cols.
	dec, err = svdcheck.Reference(x, true, true)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 4}, dec.U.Shape())
	require.Equal(t, []int{2, 3, 3}, dec.VH.Shape())

	// VH rows are right singular vectors: VH · VHᴴ ≈ I.
	require.NoError(t, svdcheck.CheckUnitary(dec.VH, 1e-15))

	// Contract violations.
	_, err = svdcheck.Reference(nil, true, false)
	require.ErrorIs(t, err, svdcheck.ErrNilInput)
	v, err := tensor.New(tensor.Float64, 4)
	require.NoError(t, err)
	_, err = svdcheck.Reference(v, true, false)
	require.ErrorIs(t, err, tensor.ErrRank)
}

func TestTolerances(t *testing.T) {
	require.Equal(t, svdcheck.ValueTolFloat64, svdcheck.ValueTolerance(tensor.Float64))
	require.Equal(t, svdcheck.ValueTolFloat32, svdcheck.ValueTolerance(tensor.Float32))
	require.Equal(t, svdcheck.UnitaryTolFloat64, svdcheck.UnitaryTolerance(tensor.Float64))
	require.Equal(t, svdcheck.UnitaryTolFloat32, svdcheck.UnitaryTolerance(tensor.Float32))
	require.Less(t, svdcheck.UnitaryTolFloat32, svdcheck.ValueTolFloat32)
}

func TestRun_InvalidShapePropagates(t *testing.T) {
	// A vector shape reaches the batched facade and fails its rank contract.
	err := svdcheck.Run(tensor.Float64, 4)
	require.ErrorIs(t, err, svd.ErrRank)

	// A non-positive dim fails generation.
	err = svdcheck.Run(tensor.Float64, 0, 2)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}
