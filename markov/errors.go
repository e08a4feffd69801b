// SPDX-License-Identifier: MIT

package markov

import "errors"

var (
	// ErrZeroDegree reports a zero row sum during random-walk normalization
	// (numerically degenerate row). Returned instead of silently producing NaN rows.
	ErrZeroDegree = errors.New("markov: zero-degree row")

	// ErrDegenerateRatio reports a non-finite detailed-balance ratio on a
	// nonzero proposal. Only returned when WithStrictRatios is set.
	ErrDegenerateRatio = errors.New("markov: degenerate rejection ratio")

	// ErrNegativeEntry reports a transition entry below -tol.
	ErrNegativeEntry = errors.New("markov: negative transition entry")

	// ErrNotStochastic reports a row whose sum differs from 1 by more than tol.
	ErrNotStochastic = errors.New("markov: row does not sum to one")

	// ErrSupportViolation reports a nonzero transition where the adjacency matrix has no edge.
	ErrSupportViolation = errors.New("markov: transition outside adjacency support")

	// ErrNotStationary reports v·t ≠ v beyond tol.
	ErrNotStationary = errors.New("markov: distribution is not stationary")
)
