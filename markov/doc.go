// SPDX-License-Identifier: MIT

// Package markov builds reversible transition matrices with a prescribed
// stationary distribution using the Metropolis-Hastings construction.
//
// Pipeline:
//
//	adjacency a ──RandomWalk──▶ rw ──RejectionMatrix(v)──▶ r ──▶ transition t
//
// The stages are:
//   - RandomWalk divides every row of a by its degree (row sum).
//   - RejectionMatrix holds the detailed-balance ratios
//     r[i,j] = v[j]·rw[j,i] / (v[i]·rw[i,j]) under plain IEEE-754 arithmetic.
//   - MetropolisHastings weights every proposal rw[i,j] by its acceptance
//     min(1, r[i,j]) and fills the diagonal with one of two strategies:
//     Variant1 (redistribute rejected mass onto the self-transition) or
//     Variant2 (residual mass, 1 minus the off-diagonal row sum).
//
// Variants:
//
// Variant1 proposes with the transpose of the column-normalized walk, which
// is the row-normalized walk of aᵀ. For symmetric a it equals rw and the
// variants differ only in how the diagonal is computed; on asymmetric a they
// give different matrices. Variant2 is the default.
//
// Degenerate ratios:
//
//	A zero proposal paired with a zero reverse proposal yields 0/0 = NaN.
//	Acceptance is computed as "r if r < 1, else 1", so an unordered NaN
//	falls through to full acceptance and the cell keeps its zero proposal.
//	WithStrictRatios turns a non-finite ratio on a nonzero proposal into
//	ErrDegenerateRatio instead.
//
// Guarantees (symmetric a without zero-degree rows, stochastic v, either variant):
//
//   - rows sum to 1, entries are non-negative;
//   - zero off-diagonal support of a is preserved;
//   - v·t = v (detailed balance v[i]·t[i,j] = v[j]·t[j,i]).
//
// Nothing is promised for asymmetric a, non-stochastic v or disconnected a.
// ValidateTransition checks the invariants when a caller wants to enforce them.
package markov
