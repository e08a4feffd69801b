// SPDX-License-Identifier: MIT
// Package: mixrate/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//   • Structural matrix errors (non-square input) come from package matrix.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that the requested matrix size is below the
// allowed minimum (size < 1).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidConfiguration indicates mutually contradictory generation flags:
// self-loops forbidden (allowSelfLoops=false) and forced (forceSelfLoops=true)
// at the same time.
// Usage: if errors.Is(err, ErrInvalidConfiguration) { /* fix the flags */ }.
var ErrInvalidConfiguration = errors.New("builder: invalid configuration")

// builderErrorf wraps err with the given method context and an optional
// formatted detail: "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices      : size checks first.
//    • ErrInvalidConfiguration: then self-loop flag consistency.
//    • matrix.ErrNonSquare    : structural checks on caller-supplied matrices.
