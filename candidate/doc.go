// SPDX-License-Identifier: MIT

// Package candidate wraps the different ways of building a transition
// matrix behind one Producer interface so they can be compared by mixing
// rate.
//
// Producers:
//
//	"mh"      MetropolisHastings           local construction on the input graph
//	"sdp-mh"  OptimizedMetropolisHastings  Optimizer reshapes the adjacency, then MH
//	"go"      Transition                   TransitionOptimizer returns t directly
//	"mgo"     Engine                       an engine.Engine (usually a Bridge handle)
//
// Failure policy:
//
//   - Structural input errors (nil, non-square, distribution length) are
//     returned as errors by every producer.
//   - Anything that goes wrong after that (solver failure, infeasibility,
//     unavailable engine, zero-degree rows, a transition rejected by
//     WithValidation) yields an infeasible Result: nil Transition and a
//     mixing rate of spectral.Infeasible.
//   - A cancelled context is returned as ctx.Err().
package candidate
