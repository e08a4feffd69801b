// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the structured shape error.
// All public entry points return these sentinels (optionally wrapped with %w)
// so callers branch with errors.Is. No function panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Shape
// violations are reported through *ShapeError, which unwraps to the sentinel
// and carries the offending dimensions for diagnostics.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> distribution shape -> squareness -> numeric (NaN/Inf).

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRaggedRows is returned by NewFromRows when rows have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrDimensionMismatch indicates incompatible dimensions between two matrices.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDistributionShape signals that a stationary distribution vector does
	// not have one entry per matrix row.
	ErrDistributionShape = errors.New("matrix: distribution shape mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ShapeError reports a structural contract violation together with the
// dimensions that caused it. It unwraps to one of ErrNonSquare,
// ErrDistributionShape or ErrDimensionMismatch.
//
// AI-Hints:
//   - Match the kind with errors.Is(err, ErrNonSquare).
//   - Extract the payload with errors.As(err, &shapeErr).
type ShapeError struct {
	Op   string // validator or entry point that detected the violation
	Rows int    // rows of the offending matrix
	Cols int    // columns of the offending matrix
	Len  int    // vector length; -1 when no vector is involved
	Err  error  // sentinel kind
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Len >= 0 {
		return fmt.Sprintf("%s: distribution length %d, matrix %dx%d: %v", e.Op, e.Len, e.Rows, e.Cols, e.Err)
	}

	return fmt.Sprintf("%s: matrix %dx%d: %v", e.Op, e.Rows, e.Cols, e.Err)
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }

// newShapeError builds a ShapeError without a vector operand.
func newShapeError(op string, rows, cols int, err error) *ShapeError {
	return &ShapeError{Op: op, Rows: rows, Cols: cols, Len: noVector, Err: err}
}

// noVector marks ShapeError.Len as "not applicable".
const noVector = -1
