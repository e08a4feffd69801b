// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/mixrate/matrix"
)

const opRejectionMatrix = "RejectionMatrix"

// RejectionMatrix returns the detailed-balance ratios of a random walk rw
// for the target distribution v:
//
//	r[i,j] = (v[j]·rw[j,i]) / (v[i]·rw[i,j])
//
// Division follows IEEE-754: x/0 is ±Inf and 0/0 is NaN. Nothing is clamped
// here; see MetropolisHastings for how those values are consumed.
//
// Errors:
//   - matrix.ErrDistributionShape when len(v) != rw.Rows().
//   - matrix.ErrNonSquare when rw is not square.
//
// Complexity: O(n²).
func RejectionMatrix(rw matrix.Matrix, v []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateDistribution(v, rw); err != nil {
		return nil, fmt.Errorf("%s: %w", opRejectionMatrix, err)
	}
	if err := matrix.ValidateSquare(rw); err != nil {
		return nil, fmt.Errorf("%s: %w", opRejectionMatrix, err)
	}

	return rejectionMatrix(rw, v)
}

// rejectionMatrix assumes rw is square and len(v) == rw.Rows().
func rejectionMatrix(rw matrix.Matrix, v []float64) (*matrix.Dense, error) {
	n := rw.Rows()
	r, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRejectionMatrix, err)
	}

	var (
		i, j     int
		rij, rji float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			rij, _ = rw.At(i, j)
			rji, _ = rw.At(j, i)
			_ = r.Set(i, j, (v[j]*rji)/(v[i]*rij))
		}
	}

	return r, nil
}

// accept is min(1, r) with the comparison written so that an unordered
// ratio (NaN) yields 1: NaN < 1 is false.
func accept(r float64) float64 {
	if r < 1 {
		return r
	}

	return 1
}
