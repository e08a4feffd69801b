// SPDX-License-Identifier: MIT
// Package: mixrate/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before generation begins.
type BuilderOption func(*builderConfig)

// WithRand uses r for every random choice (edge draws, repair endpoints,
// distribution weights). Panics on nil.
//
// Notes:
//   - *rand.Rand is not safe for concurrent use; give each goroutine its own.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
		c.edges = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed and uses it for every
// random choice. Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		r := rand.New(rand.NewSource(seed))
		c.rng = r
		c.edges = r
	}
}

// WithEdgeSource overrides only the source of adjacency cell draws.
// Panics on nil.
func WithEdgeSource(src Float64Source) BuilderOption {
	if src == nil {
		panic("builder: WithEdgeSource(nil)")
	}
	return func(c *builderConfig) {
		c.edges = src
	}
}
