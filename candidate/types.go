// SPDX-License-Identifier: MIT

package candidate

import (
	"context"

	"github.com/katalvlaran/mixrate/matrix"
	"github.com/katalvlaran/mixrate/spectral"
)

// Producer names.
const (
	NameMH    = "mh"
	NameSDPMH = "sdp-mh"
	NameGO    = "go"
	NameMGO   = "mgo"
)

// Result is one producer's outcome for one (a, v) pair.
type Result struct {
	Name       string
	Transition *matrix.Dense // nil when infeasible
	MixingRate float64       // spectral.Infeasible when infeasible
}

// Feasible reports whether the producer returned a usable transition.
func (r Result) Feasible() bool {
	return r.Transition != nil && !spectral.IsInfeasible(r.MixingRate)
}

func infeasible(name string) Result {
	return Result{Name: name, MixingRate: spectral.Infeasible}
}

// Producer builds a transition matrix for adjacency a and distribution v.
type Producer interface {
	Name() string
	Produce(ctx context.Context, a matrix.Matrix, v []float64) (Result, error)
}

// Optimizer returns an optimized symmetric adjacency with the zero pattern
// of a. Implementations return ErrInfeasible when no solution exists.
type Optimizer interface {
	OptimizeAdjacency(ctx context.Context, a matrix.Matrix) (*matrix.Dense, error)
}

// TransitionOptimizer returns a row-major transition matrix over a with
// stationary distribution v.
type TransitionOptimizer interface {
	OptimizeTransition(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error)
}
