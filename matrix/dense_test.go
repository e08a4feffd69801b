// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mixrate/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, math.NaN())) // special values are storable
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	cp := m.CloneDense()
	require.NoError(t, cp.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{9, 2}, {3, 4}}, cp.RowsCopy())
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestTransposeAndRowSums(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.RowsCopy())

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15}, sums)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFilledAndIdentity(t *testing.T) {
	t.Parallel()

	u, err := matrix.NewFilled(2, 2, 0.5)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, u.RowsCopy())

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.RowsCopy())
}

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	g := m.Gonum()
	require.Equal(t, 3.0, g.At(1, 0))
	g.Set(1, 0, 7) // gonum copy does not alias m
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	back, err := matrix.FromGonum(mat.NewDense(2, 2, []float64{1, 2, 7, 4}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {7, 4}}, back.RowsCopy())
}
