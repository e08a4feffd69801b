// SPDX-License-Identifier: MIT

// Package spectral measures how fast a Markov chain forgets its start.
//
// The mixing rate of a transition matrix t (n×n) is the spectral radius of
// t − J/n, where J/n is the uniform equilibrium matrix (every entry 1/n):
//
//	rate(t) = max_k |λ_k(t − J/n)|
//
// For a stochastic t the eigenvalue 1 of the stationary direction is
// removed by the subtraction, so the rate is governed by the second-largest
// eigenvalue modulus. Smaller is faster; 0 means the chain mixes in one
// step, values at or near 1 flag non-ergodic (disconnected or periodic)
// chains.
//
// Eigenvalues come from gonum's general (non-symmetric) eigensolver, so the
// spectrum is complex in general and moduli are taken with cmplx.Abs.
// Because a matrix and its transpose share a spectrum, MixingRate gives the
// same value for row-major and column-major orientations.
//
// Infeasible (+Inf) is the rate reported for candidates that could not be
// built at all; it compares greater than every real rate.
package spectral
