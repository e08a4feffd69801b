// SPDX-License-Identifier: MIT

// Package mixrate builds Markov chains with a prescribed stationary
// distribution on random graphs and measures how fast they mix.
//
// What is in the box?
//
//   - builder/      random symmetric adjacency matrices, connectivity repair,
//     random stochastic vectors
//   - connectivity/ connected / strongly connected checks (gonum graph/topo)
//   - markov/       random walk, rejection ratios, Metropolis-Hastings
//     (two diagonal variants, row- or column-major output)
//   - spectral/     mixing rate max|λ(t − J/n)| via gonum's eigensolver
//   - matrix/       the Dense type and the shared validators
//   - candidate/    producers ("mh", "sdp-mh", "go", "mgo") behind one interface
//   - engine/       shared, lazily started global-optimization engine and its
//     HTTP protocol
//   - sampler/      concurrent producer comparison and JSON reports
//
// This package is a thin facade over the pipeline for callers that only need
// the core operations:
//
//	a, _ := mixrate.GenerateAdjacency(8, true, true, true)
//	v, _ := builder.RandomDistribution(8)
//	t, _ := mixrate.BuildTransitionMatrix(a, v, markov.Variant2, markov.RowMajor)
//	rate, _ := mixrate.MixingRate(t)
//
// Every function validates its inputs and reports failures as wrapped
// sentinel errors (errors.Is); nothing panics on bad data.
package mixrate
