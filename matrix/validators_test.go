// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/mixrate/matrix"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", mustRows(t, [][]float64{{1}}), nil},
		{"2x2", mustRows(t, [][]float64{{1, 0}, {0, 1}}), nil},
		{"2x3", mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}}), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateSquare_Payload checks that the offending shape travels with the error.
func TestValidateSquare_Payload(t *testing.T) {
	t.Parallel()

	err := matrix.ValidateSquare(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Rows)
	require.Equal(t, 3, se.Cols)
	require.Equal(t, -1, se.Len)
	require.Contains(t, err.Error(), "2x3")
}

// TestValidateDistribution covers matching and mismatched vector lengths.
func TestValidateDistribution(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{{1, 1, 0}, {1, 1, 1}, {0, 1, 1}})

	require.NoError(t, matrix.ValidateDistribution([]float64{0.2, 0.3, 0.5}, m))

	err := matrix.ValidateDistribution([]float64{0.5, 0.5}, m)
	require.ErrorIs(t, err, matrix.ErrDistributionShape)
	var se *matrix.ShapeError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 2, se.Len)
	require.Equal(t, 3, se.Rows)

	require.ErrorIs(t, matrix.ValidateDistribution(nil, nil), matrix.ErrNilMatrix)
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2, 3}, {3, 4, 5}})

	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, b), matrix.ErrNilMatrix)
}

// TestValidateFinite rejects NaN and Inf cells.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite(mustRows(t, [][]float64{{0, 1}, {1, 0}})))
	require.ErrorIs(t, matrix.ValidateFinite(mustRows(t, [][]float64{{0, math.NaN()}, {1, 0}})), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(mustRows(t, [][]float64{{0, 1}, {math.Inf(-1), 0}})), matrix.ErrNaNInf)
}

// TestIsSymmetric covers tolerance handling and structural rejections.
func TestIsSymmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		tol  float64
		want bool
	}{
		{"nil", nil, matrix.DefaultSymmetryTol, false},
		{"non-square", mustRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}}), matrix.DefaultSymmetryTol, false},
		{"exact", mustRows(t, [][]float64{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}}), matrix.DefaultSymmetryTol, true},
		{"within tol", mustRows(t, [][]float64{{0, 1}, {1 + 1e-10, 0}}), matrix.DefaultSymmetryTol, true},
		{"outside tol", mustRows(t, [][]float64{{0, 1}, {1 + 1e-6, 0}}), matrix.DefaultSymmetryTol, false},
		{"negative tol", mustRows(t, [][]float64{{0, 1}, {1, 0}}), -1e-8, true},
		{"nan", mustRows(t, [][]float64{{0, math.NaN()}, {math.NaN(), 0}}), matrix.DefaultSymmetryTol, false},
		{"nan 1x1", mustRows(t, [][]float64{{math.NaN()}}), matrix.DefaultSymmetryTol, false},
		{"nan on diagonal", mustRows(t, [][]float64{{1, 0}, {0, math.NaN()}}), matrix.DefaultSymmetryTol, false},
		{"zero tol", mustRows(t, [][]float64{{1}}), 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.IsSymmetric(tc.m, tc.tol))
		})
	}
}
