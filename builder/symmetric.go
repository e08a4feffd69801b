// SPDX-License-Identifier: MIT
// Package: mixrate/builder
//
// symmetric.go - random symmetric adjacency matrices.
//
// Canonical model:
//   - Each upper-triangle cell (i ≤ j) is an independent draw p ∈ [0,1),
//     quantized to 1 when p ≥ EdgeThreshold and to 0 otherwise.
//   - Cell (j,i) mirrors (i,j), so symmetry holds by construction.
//   - The diagonal follows the self-loop policy before any draw is made:
//     allow=false → 0; force=true → 1; otherwise drawn like any other cell.
//
// Contract:
//   - size ≥ MinSize (else ErrTooFewVertices).
//   - allowSelfLoops=false && forceSelfLoops=true → ErrInvalidConfiguration.
//
// Complexity:
//   - Time: O(n²) draws. Space: O(n²) for the result.
//
// Determinism:
//   - Stable trial order: i asc, j asc from i. Fixed seed → fixed matrix.

package builder

import (
	"github.com/katalvlaran/mixrate/matrix"
)

const methodNewSymmetric = "NewSymmetric"

// NewSymmetric returns a random symmetric size×size 0/1 adjacency matrix.
//
// Inputs:
//   - size: matrix dimension (≥ 1).
//   - allowSelfLoops: when false the diagonal is all zero.
//   - forceSelfLoops: when true the diagonal is all one.
//   - opts: WithSeed / WithRand / WithEdgeSource.
//
// Errors:
//   - ErrTooFewVertices, ErrInvalidConfiguration.
func NewSymmetric(size int, allowSelfLoops, forceSelfLoops bool, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateSize(methodNewSymmetric, size); err != nil {
		return nil, err
	}
	if err := validateLoopPolicy(methodNewSymmetric, allowSelfLoops, forceSelfLoops); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)

	return newSymmetric(size, allowSelfLoops, forceSelfLoops, cfg)
}

// newSymmetric is the validated kernel shared with NewSymmetricConnected.
func newSymmetric(size int, allowSelfLoops, forceSelfLoops bool, cfg builderConfig) (*matrix.Dense, error) {
	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, builderErrorf(methodNewSymmetric, err, "")
	}

	var (
		i, j int
		val  float64
	)
	for i = 0; i < size; i++ {
		for j = i; j < size; j++ {
			if i == j {
				switch {
				case !allowSelfLoops:
					val = noEdge
				case forceSelfLoops:
					val = selfLoop
				default:
					val = quantize(cfg.edges.Float64())
				}
				_ = m.Set(i, i, val) // in range by construction
				continue
			}
			val = quantize(cfg.edges.Float64())
			_ = m.Set(i, j, val)
			_ = m.Set(j, i, val)
		}
	}

	return m, nil
}

// quantize maps a uniform draw to an edge value.
func quantize(p float64) float64 {
	if p >= EdgeThreshold {
		return edgeOn
	}

	return noEdge
}
