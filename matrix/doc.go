// SPDX-License-Identifier: MIT

// Package matrix is the storage and validation layer shared by every mixrate
// algorithm.
//
// What & Why:
//
//	Adjacency, random-walk and transition matrices are small (n in the tens)
//	and dense. Dense keeps them in a flat row-major buffer with bounds-checked
//	accessors, while the validators centralize the structural contracts
//	(squareness, distribution length, symmetry) so that every public entry
//	point fails the same way with the same error kinds.
//
// Errors:
//
//	Structural violations are *ShapeError values unwrapping to ErrNonSquare,
//	ErrDistributionShape or ErrDimensionMismatch. Use errors.Is for the kind
//	and errors.As for the offending dimensions.
//
// Interop:
//
//	Gonum converts a Dense into a *mat.Dense (gonum.org/v1/gonum/mat) for
//	spectral work; FromGonum goes the other way.
//
// Complexity:
//
//	At/Set are O(1); Clone, Transpose and the validators are O(r*c).
package matrix
