// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"github.com/katalvlaran/mixrate/matrix"
)

// Engine computes an optimized transition matrix for adjacency a and target
// distribution v. Results are row-major (rows sum to one).
type Engine interface {
	GlobalOpt(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error)
}

// Session is a started engine that holds resources until closed.
type Session interface {
	Engine
	Close() error
}

// StartFunc starts a new Session. It may be slow; Bridge calls it at most
// once per lifetime of the session and holds its mutex while doing so.
type StartFunc func(ctx context.Context) (Session, error)
