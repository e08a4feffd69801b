// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mixrate/matrix"
)

const opValidateTransition = "ValidateTransition"

// ValidateTransition checks that t is a row-major transition matrix over
// adjacency a with stationary distribution v. Layers run in order and the
// first failure is returned:
//
//  1. shape: t square, same shape as a, len(v) == t.Rows().
//  2. non-negativity: t[i,j] ≥ −tol (ErrNegativeEntry).
//  3. stochasticity: |Σ_j t[i,j] − 1| ≤ tol (ErrNotStochastic).
//  4. support: a[i,j] == 0 ⇒ |t[i,j]| ≤ tol for i≠j (ErrSupportViolation).
//     The diagonal is exempt since rejected moves land there.
//  5. stationarity: |Σ_i v[i]·t[i,j] − v[j]| ≤ tol (ErrNotStationary).
//
// A negative tol is treated as its absolute value. Use it to vet matrices
// produced outside this package; MetropolisHastings output passes by
// construction for stochastic v.
func ValidateTransition(t, a matrix.Matrix, v []float64, tol float64) error {
	if err := matrix.ValidateSquare(t); err != nil {
		return fmt.Errorf("%s: %w", opValidateTransition, err)
	}
	if err := matrix.ValidateSameShape(t, a); err != nil {
		return fmt.Errorf("%s: %w", opValidateTransition, err)
	}
	if err := matrix.ValidateDistribution(v, t); err != nil {
		return fmt.Errorf("%s: %w", opValidateTransition, err)
	}
	tol = math.Abs(tol)

	var (
		n        = t.Rows()
		i, j     int
		tij, aij float64
		sum      float64
	)
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n; j++ {
			tij, _ = t.At(i, j)
			if tij < -tol || math.IsNaN(tij) {
				return fmt.Errorf("%s: cell (%d,%d)=%g: %w", opValidateTransition, i, j, tij, ErrNegativeEntry)
			}
			sum += tij
		}
		if !(math.Abs(sum-1) <= tol) {
			return fmt.Errorf("%s: row %d sums to %g: %w", opValidateTransition, i, sum, ErrNotStochastic)
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, _ = a.At(i, j)
			tij, _ = t.At(i, j)
			if aij == 0 && math.Abs(tij) > tol {
				return fmt.Errorf("%s: cell (%d,%d)=%g: %w", opValidateTransition, i, j, tij, ErrSupportViolation)
			}
		}
	}

	for j = 0; j < n; j++ {
		sum = 0
		for i = 0; i < n; i++ {
			tij, _ = t.At(i, j)
			sum += v[i] * tij
		}
		if !(math.Abs(sum-v[j]) <= tol) {
			return fmt.Errorf("%s: column %d: (v·t)=%g, v=%g: %w", opValidateTransition, j, sum, v[j], ErrNotStationary)
		}
	}

	return nil
}
