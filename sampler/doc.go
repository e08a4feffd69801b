// SPDX-License-Identifier: MIT

// Package sampler compares transition-matrix producers by mixing rate.
//
// For every configured size and every sample, Run draws a connected
// symmetric adjacency matrix and a random stochastic vector, hands the pair
// to each producer, and records the mixing rate it achieved (+Inf when the
// producer could not deliver). Tasks run on a bounded errgroup pool; each
// task owns its RNG and matrices, so the only shared state is whatever the
// producers themselves share (e.g. an engine.Bridge).
//
// With a non-zero Config.Seed a run is reproducible: task (size, sample)
// always sees the same adjacency and distribution regardless of scheduling.
//
// WriteReport stores a Report as sample_<k+1>.json, where k is the number
// of entries in the directory whose names contain "sample".
package sampler
