// SPDX-License-Identifier: MIT

// Package builder generates the random topologies and distributions consumed
// by the Markov builders.
//
// The package offers:
//
//   - NewSymmetric(size, allowSelfLoops, forceSelfLoops): random symmetric 0/1
//     adjacency matrix. The upper triangle is drawn cell by cell from a
//     cryptographically strong source and quantized (p ≥ 0.5 → 1), then
//     mirrored. Diagonal policy: forbidden → 0, forced → 1, else drawn.
//   - NewSymmetricConnected: NewSymmetric followed by a connectivity gate and
//     repair, guaranteeing a single undirected component.
//   - MakeConnected: the minimal repair pass. Every node with zero
//     off-diagonal degree gets one symmetric edge to a random other node.
//     Nodes inside a larger disconnected cluster are left untouched.
//   - RandomDistribution: random stochastic vector of a given length.
//
// Configuration primitives:
//
//   - BuilderOption / builderConfig: WithSeed, WithRand, WithEdgeSource.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidConfiguration)
//     wrapped with method context.
//   - Inputs are never mutated; every generator returns a fresh matrix.
//   - Fixed trial order (i asc, j asc with j ≥ i), so seeded runs reproduce.
package builder
