// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the structural checks
//    used by builder, connectivity, markov and spectral.
//  - Keep kernels minimal by delegating nil/shape/symmetry checks here.
//  - Report the offending dimensions (*ShapeError) so failures are diagnosable.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Call ValidateDistribution before ValidateSquare when both apply; that is
//    the documented priority (distribution shape first).
//  - IsSymmetric is a predicate, not a validator: it never errors.

package matrix

import (
	"fmt"
	"math"
)

// DefaultSymmetryTol is the absolute tolerance used by IsSymmetric callers
// that have no stronger requirement.
const DefaultSymmetryTol = 1e-8

// Validator tags used as ShapeError.Op / wrap prefixes.
const (
	opNotNil       = "ValidateNotNil"
	opSquare       = "ValidateSquare"
	opSameShape    = "ValidateSameShape"
	opDistribution = "ValidateDistribution"
	opFinite       = "ValidateFinite"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or a typed nil *Dense hidden in the interface.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns wrapped ErrNilMatrix if m == nil (also for a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf(opNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, *ShapeError{Err: ErrNonSquare} otherwise.
// Complexity: O(1).
// AI-Hints: Use before spectral, random-walk and Metropolis-Hastings kernels.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(opSquare, err)
	}
	if m.Rows() != m.Cols() {
		return newShapeError(opSquare, m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Errors: ErrNilMatrix, *ShapeError{Err: ErrDimensionMismatch} carrying b's shape.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf(opSameShape, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return newShapeError(opSameShape, b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateDistribution ensures the distribution v has exactly one entry per
// row of m. The values of v are NOT checked: stochasticity of v is a caller
// precondition.
//
// Errors: ErrNilMatrix, *ShapeError{Err: ErrDistributionShape} with Len=len(v).
// Complexity: O(1).
func ValidateDistribution(v []float64, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(opDistribution, err)
	}
	if len(v) != m.Rows() {
		return &ShapeError{Op: opDistribution, Rows: m.Rows(), Cols: m.Cols(), Len: len(v), Err: ErrDistributionShape}
	}

	return nil
}

// ValidateFinite rejects matrices containing NaN or ±Inf.
//
// Errors: ErrNilMatrix, wrapped ErrNaNInf naming the first offending cell.
// Complexity: O(r*c), row-major scan order.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(opFinite, err)
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			x, _ = m.At(i, j) // in range by construction
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%s: cell (%d,%d)=%g: %w", opFinite, i, j, x, ErrNaNInf)
			}
		}
	}

	return nil
}

// IsSymmetric reports whether |m[i,j] - m[j,i]| < tol for every pair.
//
// Behavior highlights:
//   - nil or non-square matrices are never symmetric.
//   - A negative tol is treated as its absolute value.
//   - The comparison is strict (<) and covers the diagonal, so tol == 0
//     accepts nothing and a NaN anywhere makes the matrix asymmetric.
//
// Complexity: O(n²) on the upper triangle, short-circuits on failure.
func IsSymmetric(m Matrix, tol float64) bool {
	if isNil(m) || m.Rows() != m.Cols() {
		return false
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if !(math.Abs(aij-aji) < tol) {
				return false
			}
		}
	}

	return true
}
