// SPDX-License-Identifier: MIT

package candidate

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/mixrate/matrix"
)

// LocalDegreeOptimizer is an Optimizer that returns the local-degree
// weighting of a: for every edge i≠j,
//
//	w[i,j] = 1 / max(d_i, d_j)
//
// where d_i counts the off-diagonal neighbours of i, and the diagonal holds
// the residual 1 − Σ_{j≠i} w[i,j]. The result is symmetric, doubly
// stochastic, and a feasible point of the fastest-mixing problem for the
// uniform distribution.
type LocalDegreeOptimizer struct{}

// OptimizeAdjacency implements Optimizer.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare; ErrInfeasible when a
// node has no neighbour other than itself (and n > 1).
func (LocalDegreeOptimizer) OptimizeAdjacency(ctx context.Context, a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("OptimizeAdjacency: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := a.Rows()
	degree := make([]int, n)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, _ = a.At(i, j); i != j && x != 0 {
				degree[i]++
			}
		}
		if degree[i] == 0 && n > 1 {
			return nil, fmt.Errorf("OptimizeAdjacency: node %d: %w", i, ErrInfeasible)
		}
	}

	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("OptimizeAdjacency: %w", err)
	}
	var wij, residual float64
	for i = 0; i < n; i++ {
		residual = 1
		for j = 0; j < n; j++ {
			if x, _ = a.At(i, j); i == j || x == 0 {
				continue
			}
			wij = 1 / math.Max(float64(degree[i]), float64(degree[j]))
			_ = w.Set(i, j, wij)
			residual -= wij
		}
		_ = w.Set(i, i, math.Max(residual, 0))
	}

	return w, nil
}
