// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mixrate/markov"
	"github.com/katalvlaran/mixrate/matrix"
	"github.com/katalvlaran/mixrate/spectral"
)

// DefaultLaziness is the grid of holding probabilities LocalEngine tries.
var DefaultLaziness = []float64{0, 0.05, 0.1, 0.2, 0.3, 0.4, 0.5}

// LocalEngine is an in-process Engine. For each holding probability α in
// its grid it forms the lazy chain α·I + (1−α)·MH(a, v) and returns the one
// with the smallest mixing rate (first wins on ties). Every candidate keeps
// the support, the row sums and the stationary distribution of MH.
type LocalEngine struct {
	laziness []float64
}

// NewLocalEngine returns a LocalEngine over laziness (DefaultLaziness when
// empty). Panics on values outside [0, 1).
func NewLocalEngine(laziness ...float64) *LocalEngine {
	if len(laziness) == 0 {
		laziness = DefaultLaziness
	}
	for _, x := range laziness {
		if !(x >= 0 && x < 1) {
			panic(fmt.Sprintf("engine: NewLocalEngine: laziness %g outside [0,1)", x))
		}
	}
	grid := make([]float64, len(laziness))
	copy(grid, laziness)

	return &LocalEngine{laziness: grid}
}

// Local returns a StartFunc handing out a LocalEngine.
func Local(laziness ...float64) StartFunc {
	return func(context.Context) (Session, error) {
		return NewLocalEngine(laziness...), nil
	}
}

// GlobalOpt implements Engine.
//
// Errors: structural matrix errors as is; ErrInfeasible when a has a
// zero-degree row or no candidate has a finite spectrum; ctx.Err() when
// cancelled between candidates.
func (e *LocalEngine) GlobalOpt(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	base, err := markov.MetropolisHastings(a, v)
	if errors.Is(err, markov.ErrZeroDegree) {
		return nil, fmt.Errorf("GlobalOpt: %w: %v", ErrInfeasible, err)
	}
	if err != nil {
		return nil, fmt.Errorf("GlobalOpt: %w", err)
	}

	var (
		best     *matrix.Dense
		bestRate = spectral.Infeasible
	)
	for _, alpha := range e.laziness {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		t, err := lazy(base, alpha)
		if err != nil {
			return nil, fmt.Errorf("GlobalOpt: %w", err)
		}
		rate, err := spectral.MixingRate(t)
		if err != nil {
			continue
		}
		if rate < bestRate {
			best, bestRate = t, rate
		}
	}
	if best == nil {
		return nil, fmt.Errorf("GlobalOpt: %w: no candidate with a finite spectrum", ErrInfeasible)
	}

	return best, nil
}

// Close implements Session.
func (e *LocalEngine) Close() error { return nil }

// lazy returns α·I + (1−α)·t.
func lazy(t *matrix.Dense, alpha float64) (*matrix.Dense, error) {
	if alpha == 0 {
		return t.CloneDense(), nil
	}
	id, err := matrix.NewIdentity(t.Rows())
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Scale(1-alpha, t.Gonum())
	hold := id.Gonum()
	hold.Scale(alpha, hold)
	out.Add(&out, hold)

	return matrix.FromGonum(&out)
}
