// SPDX-License-Identifier: MIT
// Package: mixrate/builder
//
// connected.go - connectivity repair for generated topologies.
//
// Two passes, applied in order by NewSymmetricConnected:
//   1. MakeConnected: every node with zero off-diagonal degree receives one
//      symmetric edge to a uniformly chosen other node. Rows are scanned in
//      ascending order on the working copy, so a node reached by an earlier
//      repair is no longer isolated when its own row is visited.
//   2. bridgeComponents: if clusters remain (e.g. {0,1} and {2,3}), each
//      component k is joined to component k-1 through one random endpoint
//      pair, which yields a single component.
//
// Contract:
//   - Square input (else matrix.ErrNonSquare); inputs are never mutated.
//   - Symmetric input stays symmetric.
//
// Complexity:
//   - MakeConnected O(n²); bridgeComponents O(n²) plus one partition.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mixrate/connectivity"
	"github.com/katalvlaran/mixrate/matrix"
)

const (
	methodNewSymmetricConnected = "NewSymmetricConnected"
	methodMakeConnected         = "MakeConnected"
	minRepairSize               = 2 // a repair edge needs a distinct endpoint
)

// NewSymmetricConnected returns a random symmetric adjacency matrix that is a
// single undirected component.
//
// Implementation:
//   - Stage 1: NewSymmetric with the same flags and options.
//   - Stage 2: connectivity gate; connected matrices are returned as drawn.
//   - Stage 3: MakeConnected, then component bridging if still split.
//
// Errors:
//   - ErrTooFewVertices, ErrInvalidConfiguration.
func NewSymmetricConnected(size int, allowSelfLoops, forceSelfLoops bool, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := validateSize(methodNewSymmetricConnected, size); err != nil {
		return nil, err
	}
	if err := validateLoopPolicy(methodNewSymmetricConnected, allowSelfLoops, forceSelfLoops); err != nil {
		return nil, err
	}

	cfg := newBuilderConfig(opts...)
	m, err := newSymmetric(size, allowSelfLoops, forceSelfLoops, cfg)
	if err != nil {
		return nil, err
	}

	ok, err := connectivity.IsConnected(m, false)
	if err != nil {
		return nil, builderErrorf(methodNewSymmetricConnected, err, "")
	}
	if ok {
		return m, nil
	}

	makeConnected(m, cfg.rng)
	if err = bridgeComponents(m, cfg.rng); err != nil {
		return nil, builderErrorf(methodNewSymmetricConnected, err, "")
	}

	return m, nil
}

// MakeConnected returns a copy of m in which every node without off-diagonal
// edges is linked to one pseudo-randomly chosen other node (both directions).
//
// Notes:
//   - Only zero-degree nodes are repaired; a matrix made of several
//     non-trivial clusters is returned with those clusters still apart.
//   - 1×1 matrices are returned unchanged.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func MakeConnected(m matrix.Matrix, opts ...BuilderOption) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, builderErrorf(methodMakeConnected, err, "")
	}
	src, err := matrix.ToDense(m)
	if err != nil {
		return nil, builderErrorf(methodMakeConnected, err, "")
	}
	work := src.CloneDense()

	cfg := newBuilderConfig(opts...)
	makeConnected(work, cfg.rng)

	return work, nil
}

// makeConnected repairs zero-degree rows of m in place.
func makeConnected(m *matrix.Dense, rng *rand.Rand) {
	n := m.Rows()
	if n < minRepairSize {
		return
	}
	for i := 0; i < n; i++ {
		if isolated(m, i) {
			link(m, i, randomIndex(i, n, rng))
		}
	}
}

// bridgeComponents joins consecutive undirected components of m in place.
func bridgeComponents(m *matrix.Dense, rng *rand.Rand) error {
	comps, err := connectivity.Components(m, false)
	if err != nil {
		return err
	}
	for k := 1; k < len(comps); k++ {
		u := comps[k-1][rng.Intn(len(comps[k-1]))]
		v := comps[k][rng.Intn(len(comps[k]))]
		link(m, u, v)
	}

	return nil
}

// isolated reports whether row i has no nonzero off-diagonal entry.
func isolated(m *matrix.Dense, i int) bool {
	var x float64
	for j := 0; j < m.Cols(); j++ {
		if j == i {
			continue
		}
		x, _ = m.At(i, j)
		if x != 0 {
			return false
		}
	}

	return true
}

// link writes a symmetric unit edge between u and v.
func link(m *matrix.Dense, u, v int) {
	_ = m.Set(u, v, edgeOn)
	_ = m.Set(v, u, edgeOn)
}

// randomIndex returns a uniform index in [0, size) different from i.
// Requires size ≥ 2.
func randomIndex(i, size int, rng *rand.Rand) int {
	j := rng.Intn(size - 1)
	if j >= i {
		j++
	}

	return j
}
