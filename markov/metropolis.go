// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mixrate/matrix"
)

const opMetropolisHastings = "MetropolisHastings"

// diagonalRule computes t[i,i] once the off-diagonal entries of row i are set.
type diagonalRule func(t, rw, r *matrix.Dense, i int) float64

// MetropolisHastings builds a transition matrix over adjacency a whose
// stationary distribution is v.
//
// Implementation:
//   - Stage 1: validate len(v) == a.Rows(), then squareness of a.
//   - Stage 2: rw = proposal of a for the selected variant.
//   - Stage 3: r = RejectionMatrix(rw, v).
//   - Stage 4: t[i,j] = rw[i,j]·min(1, r[i,j]) for i≠j, then the diagonal by
//     the selected variant.
//   - Stage 5: transpose for ColumnMajor.
//
// Inputs:
//   - a: symmetric, non-negative adjacency matrix (symmetry is a documented
//     precondition, not checked).
//   - v: stochastic vector (not checked).
//   - opts: WithVariant (default Variant2), WithOrientation (default
//     RowMajor), WithStrictRatios.
//
// Errors:
//   - matrix.ErrDistributionShape, matrix.ErrNonSquare (as *matrix.ShapeError).
//   - ErrZeroDegree when a has a zero-degree row.
//   - ErrDegenerateRatio in strict mode only.
//
// Determinism:
//   - Fixed loop orders; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(n²), Space O(n²). Inputs are never modified.
func MetropolisHastings(a matrix.Matrix, v []float64, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateDistribution(v, a); err != nil {
		return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rw, err := proposal(a, cfg.variant)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
	}

	r, err := rejectionMatrix(rw, v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
	}
	if cfg.strict {
		if err = checkRatios(rw, r, cfg.variant == Variant1); err != nil {
			return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
		}
	}

	rule := residualDiagonal
	if cfg.variant == Variant1 {
		rule = redistributedDiagonal
	}

	n := a.Rows()
	t, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
	}

	var (
		i, j     int
		pij, rij float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			pij, _ = rw.At(i, j)
			rij, _ = r.At(i, j)
			_ = t.Set(i, j, pij*accept(rij))
		}
		_ = t.Set(i, i, rule(t, rw, r, i))
	}

	if cfg.orientation == ColumnMajor {
		if t, err = matrix.Transpose(t); err != nil {
			return nil, fmt.Errorf("%s: %w", opMetropolisHastings, err)
		}
	}

	return t, nil
}

// proposal returns the row-stochastic proposal matrix. Variant2 uses the
// row-normalized walk of a. Variant1 uses the transpose of the
// column-normalized walk, q[i,j] = a[j,i] / Σ_k a[k,i], which is the
// row-normalized walk of aᵀ; both coincide when a is symmetric.
func proposal(a matrix.Matrix, variant Variant) (*matrix.Dense, error) {
	if variant != Variant1 {
		return randomWalk(a)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	q, err := randomWalk(at)
	if err != nil {
		return nil, fmt.Errorf("column-normalized walk: %w", err)
	}

	return q, nil
}

// redistributedDiagonal (Variant1): rejected proposal mass returns to i.
//
//	t[i,i] = rw[i,i] + Σ_k rw[i,k]·(1 − min(1, r[i,k]))
func redistributedDiagonal(_, rw, r *matrix.Dense, i int) float64 {
	pii, _ := rw.At(i, i)
	var pik, rik float64
	for k := 0; k < rw.Cols(); k++ {
		pik, _ = rw.At(i, k)
		rik, _ = r.At(i, k)
		pii += pik * (1 - accept(rik))
	}

	return pii
}

// residualDiagonal (Variant2): whatever the off-diagonal entries leave.
//
//	t[i,i] = 1 − Σ_{j≠i} t[i,j]
func residualDiagonal(t, _, _ *matrix.Dense, i int) float64 {
	var sum, tij float64
	for j := 0; j < t.Cols(); j++ {
		if j == i {
			continue
		}
		tij, _ = t.At(i, j)
		sum += tij
	}

	return 1 - sum
}

// checkRatios rejects NaN/±Inf ratios on nonzero proposals. The diagonal
// ratio is consulted only by Variant1.
func checkRatios(rw, r *matrix.Dense, withDiagonal bool) error {
	var (
		n        = rw.Rows()
		i, j     int
		pij, rij float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j && !withDiagonal {
				continue
			}
			pij, _ = rw.At(i, j)
			if pij == 0 {
				continue
			}
			rij, _ = r.At(i, j)
			if math.IsNaN(rij) || math.IsInf(rij, 0) {
				return fmt.Errorf("cell (%d,%d) ratio %g: %w", i, j, rij, ErrDegenerateRatio)
			}
		}
	}

	return nil
}
