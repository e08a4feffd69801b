// SPDX-License-Identifier: MIT
package markov_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/mixrate/markov"
	"github.com/katalvlaran/mixrate/matrix"
	"github.com/stretchr/testify/require"
)

const third = 1.0 / 3.0

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

func requireRowsInDelta(t *testing.T, want [][]float64, got *matrix.Dense, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	for i, row := range want {
		for j, w := range row {
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, w, g, delta, "cell (%d,%d)", i, j)
		}
	}
}

func path3(t *testing.T) *matrix.Dense {
	return mustRows(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
}

func TestRandomWalk(t *testing.T) {
	t.Parallel()

	rw, err := markov.RandomWalk(path3(t))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1, 0}, {0.5, 0, 0.5}, {0, 1, 0}}, rw.RowsCopy())

	weighted, err := markov.RandomWalk(mustRows(t, [][]float64{{1, 3}, {2, 2}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.25, 0.75}, {0.5, 0.5}}, weighted.RowsCopy())
}

func TestRandomWalk_Errors(t *testing.T) {
	t.Parallel()

	_, err := markov.RandomWalk(mustRows(t, [][]float64{{1, 1}, {0, 0}}))
	require.ErrorIs(t, err, markov.ErrZeroDegree)
	require.Contains(t, err.Error(), "row 1")

	_, err = markov.RandomWalk(mustRows(t, [][]float64{{1, 1, 1}, {1, 1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = markov.RandomWalk(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRejectionMatrix_IEEE checks that degenerate cells surface as NaN/Inf
// instead of errors.
func TestRejectionMatrix_IEEE(t *testing.T) {
	t.Parallel()

	rw, err := markov.RandomWalk(path3(t))
	require.NoError(t, err)

	r, err := markov.RejectionMatrix(rw, []float64{third, third, third})
	require.NoError(t, err)

	r01, _ := r.At(0, 1)
	r10, _ := r.At(1, 0)
	r02, _ := r.At(0, 2)
	r00, _ := r.At(0, 0)
	require.Equal(t, 0.5, r01)
	require.Equal(t, 2.0, r10)
	require.True(t, math.IsNaN(r02), "0/0 must be NaN")
	require.True(t, math.IsNaN(r00), "0/0 must be NaN")

	r, err = markov.RejectionMatrix(rw, []float64{0, 0.5, 0.5})
	require.NoError(t, err)
	r01, _ = r.At(0, 1)
	require.True(t, math.IsInf(r01, 1))

	_, err = markov.RejectionMatrix(rw, []float64{0.5, 0.5})
	require.ErrorIs(t, err, matrix.ErrDistributionShape)
}

// TestMetropolisHastings_Uniform2x2 is the mixing-rate sanity fixture.
func TestMetropolisHastings_Uniform2x2(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 1}, {1, 1}})
	v := []float64{0.5, 0.5}
	want := [][]float64{{0.5, 0.5}, {0.5, 0.5}}

	for _, variant := range []markov.Variant{markov.Variant1, markov.Variant2} {
		for _, orientation := range []markov.Orientation{markov.RowMajor, markov.ColumnMajor} {
			tm, err := markov.MetropolisHastings(a, v,
				markov.WithVariant(variant), markov.WithOrientation(orientation))
			require.NoError(t, err, "%s/%s", variant, orientation)
			require.Equal(t, want, tm.RowsCopy(), "%s/%s", variant, orientation)
		}
	}
}

// TestMetropolisHastings_Path covers an irregular graph: the middle node has
// degree 2, the ends degree 1.
func TestMetropolisHastings_Path(t *testing.T) {
	t.Parallel()

	want := [][]float64{
		{0.5, 0.5, 0},
		{0.5, 0, 0.5},
		{0, 0.5, 0.5},
	}
	v := []float64{third, third, third}
	for _, variant := range []markov.Variant{markov.Variant1, markov.Variant2} {
		tm, err := markov.MetropolisHastings(path3(t), v, markov.WithVariant(variant))
		require.NoError(t, err, variant.String())
		requireRowsInDelta(t, want, tm, 1e-15)
		require.NoError(t, markov.ValidateTransition(tm, path3(t), v, 1e-12), variant.String())
	}
}

// TestMetropolisHastings_IrregularNonUniform checks both variants on a star
// with a skewed target, where every node has a different acceptance pattern.
func TestMetropolisHastings_IrregularNonUniform(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 1, 0},
		{1, 0, 0, 0},
	})
	v := []float64{0.1, 0.2, 0.3, 0.4}
	for _, variant := range []markov.Variant{markov.Variant1, markov.Variant2} {
		tm, err := markov.MetropolisHastings(a, v, markov.WithVariant(variant))
		require.NoError(t, err, variant.String())
		require.NoError(t, markov.ValidateTransition(tm, a, v, 1e-12), variant.String())

		sums, err := matrix.RowSums(tm)
		require.NoError(t, err)
		for i, s := range sums {
			require.InDelta(t, 1.0, s, 1e-12, "%s row %d", variant, i)
		}
	}
}

func TestMetropolisHastings_ShapeErrors(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
	_, err := markov.MetropolisHastings(a, []float64{0.5, 0.5})
	require.ErrorIs(t, err, matrix.ErrDistributionShape)

	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Len)
	require.Equal(t, 3, se.Rows)

	// Distribution shape is checked before squareness.
	rect := mustRows(t, [][]float64{{1, 1, 1}, {1, 1, 1}})
	_, err = markov.MetropolisHastings(rect, []float64{0.2, 0.3, 0.5})
	require.ErrorIs(t, err, matrix.ErrDistributionShape)

	_, err = markov.MetropolisHastings(rect, []float64{0.5, 0.5})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = markov.MetropolisHastings(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMetropolisHastings_ZeroDegree(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}})
	_, err := markov.MetropolisHastings(a, []float64{third, third, third})
	require.ErrorIs(t, err, markov.ErrZeroDegree)
}

// TestMetropolisHastings_DegenerateRatios covers a zero-probability state:
// lenient mode still yields a stochastic matrix, strict mode refuses it.
func TestMetropolisHastings_DegenerateRatios(t *testing.T) {
	t.Parallel()

	a := path3(t)
	v := []float64{0, 0.5, 0.5}

	tm, err := markov.MetropolisHastings(a, v)
	require.NoError(t, err)
	requireRowsInDelta(t, [][]float64{
		{0, 1, 0},
		{0, 0.5, 0.5},
		{0, 0.5, 0.5},
	}, tm, 1e-15)

	_, err = markov.MetropolisHastings(a, v, markov.WithStrictRatios())
	require.ErrorIs(t, err, markov.ErrDegenerateRatio)
	require.Contains(t, err.Error(), "cell (0,1)")

	// Zero-proposal NaN cells are not degenerate.
	_, err = markov.MetropolisHastings(a, []float64{third, third, third}, markov.WithStrictRatios())
	require.NoError(t, err)
}

// TestMetropolisHastings_VariantsAgreeOnSymmetricGraphs uses K3 with loops.
// With finite ratios both diagonal rules keep 1 − Σ_{j≠i} t[i,j].
func TestMetropolisHastings_VariantsAgreeOnSymmetricGraphs(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	v := []float64{0.2, 0.3, 0.5}

	v1, err := markov.MetropolisHastings(a, v, markov.WithVariant(markov.Variant1))
	require.NoError(t, err)
	v2, err := markov.MetropolisHastings(a, v, markov.WithVariant(markov.Variant2))
	require.NoError(t, err)

	requireRowsInDelta(t, v2.RowsCopy(), v1, 1e-12)
	require.NoError(t, markov.ValidateTransition(v1, a, v, 1e-9))
	require.NoError(t, markov.ValidateTransition(v2, a, v, 1e-9))

	// t[i,j] = min(v_i, v_j) / (3·v_i)
	requireRowsInDelta(t, [][]float64{
		{third, third, third},
		{0.2 / 0.9, 1 - 0.2/0.9 - third, third},
		{0.2 / 1.5, 0.3 / 1.5, 1 - 0.5/1.5},
	}, v2, 1e-12)
}

func TestMetropolisHastings_ColumnMajorIsTranspose(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{
		{0, 1, 1, 0},
		{1, 1, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 1},
	})
	v := []float64{0.1, 0.2, 0.3, 0.4}

	row, err := markov.MetropolisHastings(a, v)
	require.NoError(t, err)
	col, err := markov.MetropolisHastings(a, v, markov.WithOrientation(markov.ColumnMajor))
	require.NoError(t, err)

	want, err := matrix.Transpose(row)
	require.NoError(t, err)
	require.Equal(t, want.RowsCopy(), col.RowsCopy())

	for j := 0; j < 4; j++ {
		var sum float64
		for i := 0; i < 4; i++ {
			x, _ := col.At(i, j)
			sum += x
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestMetropolisHastings_Deterministic(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{
		{1, 1, 0, 1, 0},
		{1, 0, 1, 1, 0},
		{0, 1, 1, 0, 1},
		{1, 1, 0, 0, 1},
		{0, 0, 1, 1, 1},
	})
	v := []float64{0.05, 0.15, 0.3, 0.2, 0.3}
	before := a.RowsCopy()

	for _, variant := range []markov.Variant{markov.Variant1, markov.Variant2} {
		first, err := markov.MetropolisHastings(a, v, markov.WithVariant(variant))
		require.NoError(t, err)
		second, err := markov.MetropolisHastings(a, v, markov.WithVariant(variant))
		require.NoError(t, err)
		require.Equal(t, first.RowsCopy(), second.RowsCopy())
	}
	require.Equal(t, before, a.RowsCopy(), "input must not be modified")
	require.Equal(t, []float64{0.05, 0.15, 0.3, 0.2, 0.3}, v)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { markov.WithVariant(3) })
	require.Panics(t, func() { markov.WithOrientation(7) })
	require.Equal(t, "v1", markov.Variant1.String())
	require.Equal(t, "v2", markov.Variant2.String())
	require.Equal(t, "column-major", markov.ColumnMajor.String())
	require.Equal(t, "row-major", markov.RowMajor.String())
}
