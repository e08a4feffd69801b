// SPDX-License-Identifier: MIT
package connectivity_test

import (
	"testing"

	"github.com/katalvlaran/mixrate/connectivity"
	"github.com/katalvlaran/mixrate/matrix"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestIsConnected_Undirected covers paths, isolated nodes and split clusters.
func TestIsConnected_Undirected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"single node", [][]float64{{0}}, true},
		{"single node with loop", [][]float64{{1}}, true},
		{"path 0-1-2", [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}, true},
		{"isolated node", [][]float64{{1, 1, 0}, {1, 1, 0}, {0, 0, 1}}, false},
		{"two pairs", [][]float64{{0, 1, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}}, false},
		{"one-way arc counts as edge", [][]float64{{0, 1}, {0, 0}}, true},
		{"weighted edges", [][]float64{{0, 0.3}, {0.3, 0}}, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := connectivity.IsConnected(mustRows(t, tc.rows), false)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestIsConnected_Directed distinguishes strong from weak connectivity.
func TestIsConnected_Directed(t *testing.T) {
	t.Parallel()

	chain := mustRows(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}})
	cycle := mustRows(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})

	weak, err := connectivity.IsConnected(chain, false)
	require.NoError(t, err)
	require.True(t, weak)

	strong, err := connectivity.IsConnected(chain, true)
	require.NoError(t, err)
	require.False(t, strong)

	strong, err = connectivity.IsConnected(cycle, true)
	require.NoError(t, err)
	require.True(t, strong)
}

func TestComponents_Deterministic(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]float64{
		{0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1},
	})
	comps, err := connectivity.Components(m, false)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 3}, {1, 2}, {4}}, comps)
}

func TestIsConnected_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := connectivity.IsConnected(mustRows(t, [][]float64{{0, 1, 1}, {1, 0, 1}}), false)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = connectivity.Components(nil, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
