// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/mixrate/matrix"
)

const opRandomWalk = "RandomWalk"

// RandomWalk returns the random-walk matrix of adjacency a:
// rw[i,j] = a[i,j] / Σ_k a[i,k]. Every row of the result sums to 1.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare from validation.
//   - ErrZeroDegree naming the first row whose sum is zero.
//
// Complexity: O(n²) time, O(n²) space. The input is not modified.
func RandomWalk(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opRandomWalk, err)
	}

	return randomWalk(a)
}

// randomWalk assumes a is square.
func randomWalk(a matrix.Matrix) (*matrix.Dense, error) {
	degrees, err := matrix.RowSums(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRandomWalk, err)
	}
	n := a.Rows()
	rw, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRandomWalk, err)
	}

	var (
		i, j int
		aij  float64
	)
	for i = 0; i < n; i++ {
		if degrees[i] == 0 {
			return nil, fmt.Errorf("%s: row %d: %w", opRandomWalk, i, ErrZeroDegree)
		}
		for j = 0; j < n; j++ {
			aij, _ = a.At(i, j)
			_ = rw.Set(i, j, aij/degrees[i])
		}
	}

	return rw, nil
}
