// SPDX-License-Identifier: MIT

package candidate

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mixrate/engine"
	"github.com/katalvlaran/mixrate/markov"
	"github.com/katalvlaran/mixrate/matrix"
	"github.com/katalvlaran/mixrate/spectral"
)

// base carries the shared name, options and failure policy.
type base struct {
	name string
	cfg  config
}

func (b base) Name() string { return b.name }

// finish turns a collaborator outcome into a Result.
func (b base) finish(ctx context.Context, a matrix.Matrix, v []float64, t *matrix.Dense, err error) (Result, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	if err != nil || t == nil {
		return infeasible(b.name), nil
	}
	if b.cfg.validate {
		if verr := markov.ValidateTransition(t, a, v, b.cfg.tol); verr != nil {
			return infeasible(b.name), nil
		}
	}
	rate, err := spectral.MixingRate(t)
	if err != nil {
		return infeasible(b.name), nil
	}

	return Result{Name: b.name, Transition: t, MixingRate: rate}, nil
}

func validateInputs(op string, a matrix.Matrix, v []float64) error {
	if err := matrix.ValidateDistribution(v, a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MetropolisHastings ("mh") builds t = MH(a, v) locally.
type MetropolisHastings struct{ base }

// NewMetropolisHastings returns the "mh" producer.
func NewMetropolisHastings(opts ...Option) *MetropolisHastings {
	return &MetropolisHastings{base{name: NameMH, cfg: newConfig(opts)}}
}

// Produce implements Producer.
func (p *MetropolisHastings) Produce(ctx context.Context, a matrix.Matrix, v []float64) (Result, error) {
	if err := validateInputs(p.name, a, v); err != nil {
		return Result{}, err
	}
	t, err := markov.MetropolisHastings(a, v, p.cfg.markovOptions()...)

	return p.finish(ctx, a, v, t, err)
}

// OptimizedMetropolisHastings ("sdp-mh") runs MH on the adjacency returned
// by an Optimizer.
type OptimizedMetropolisHastings struct {
	base
	optimizer Optimizer
}

// NewOptimizedMetropolisHastings returns the "sdp-mh" producer. Panics on nil.
func NewOptimizedMetropolisHastings(o Optimizer, opts ...Option) *OptimizedMetropolisHastings {
	if o == nil {
		panic("candidate: NewOptimizedMetropolisHastings(nil)")
	}
	return &OptimizedMetropolisHastings{base: base{name: NameSDPMH, cfg: newConfig(opts)}, optimizer: o}
}

// Produce implements Producer.
func (p *OptimizedMetropolisHastings) Produce(ctx context.Context, a matrix.Matrix, v []float64) (Result, error) {
	if err := validateInputs(p.name, a, v); err != nil {
		return Result{}, err
	}
	opt, err := p.optimizer.OptimizeAdjacency(ctx, a)
	if err != nil || opt == nil {
		return p.finish(ctx, a, v, nil, err)
	}
	if opt.Rows() != a.Rows() || opt.Cols() != a.Cols() {
		return p.finish(ctx, a, v, nil, matrix.ErrDimensionMismatch)
	}
	t, err := markov.MetropolisHastings(opt, v, p.cfg.markovOptions()...)

	return p.finish(ctx, a, v, t, err)
}

// Transition ("go") takes t straight from a TransitionOptimizer.
type Transition struct {
	base
	optimizer TransitionOptimizer
}

// NewTransition returns the "go" producer. Panics on nil.
func NewTransition(o TransitionOptimizer, opts ...Option) *Transition {
	if o == nil {
		panic("candidate: NewTransition(nil)")
	}
	return &Transition{base: base{name: NameGO, cfg: newConfig(opts)}, optimizer: o}
}

// Produce implements Producer.
func (p *Transition) Produce(ctx context.Context, a matrix.Matrix, v []float64) (Result, error) {
	if err := validateInputs(p.name, a, v); err != nil {
		return Result{}, err
	}
	t, err := p.optimizer.OptimizeTransition(ctx, a, v)

	return p.finish(ctx, a, v, t, err)
}

// Engine ("mgo") submits to an engine.Engine, typically an *engine.Handle.
type Engine struct {
	base
	engine engine.Engine
}

// NewEngine returns the "mgo" producer. Panics on nil.
func NewEngine(e engine.Engine, opts ...Option) *Engine {
	if e == nil {
		panic("candidate: NewEngine(nil)")
	}
	return &Engine{base: base{name: NameMGO, cfg: newConfig(opts)}, engine: e}
}

// Produce implements Producer.
func (p *Engine) Produce(ctx context.Context, a matrix.Matrix, v []float64) (Result, error) {
	if err := validateInputs(p.name, a, v); err != nil {
		return Result{}, err
	}
	t, err := p.engine.GlobalOpt(ctx, a, v)

	return p.finish(ctx, a, v, t, err)
}

// EngineOptimizer adapts an engine.Engine to TransitionOptimizer.
type EngineOptimizer struct{ Engine engine.Engine }

// OptimizeTransition implements TransitionOptimizer.
func (o EngineOptimizer) OptimizeTransition(ctx context.Context, a matrix.Matrix, v []float64) (*matrix.Dense, error) {
	return o.Engine.GlobalOpt(ctx, a, v)
}

// Select returns the producers named in names, in that order.
//
// Errors: ErrUnknownProducer naming the first missing entry.
func Select(names []string, available ...Producer) ([]Producer, error) {
	byName := make(map[string]Producer, len(available))
	for _, p := range available {
		byName[p.Name()] = p
	}
	out := make([]Producer, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("Select: %q: %w", name, ErrUnknownProducer)
		}
		out = append(out, p)
	}

	return out, nil
}
