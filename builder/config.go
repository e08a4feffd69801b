// SPDX-License-Identifier: MIT
// Package: mixrate/builder
//
// config.go: internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • edges = cryptographically strong source (crypto/rand)
//   • rng   = math/rand seeded from the strong source; drives repair choices
//             and RandomDistribution
//
// AI-Hints:
//   • WithSeed/WithRand replace BOTH sources, making generation reproducible.
//   • WithEdgeSource swaps only the edge draws.

package builder

import (
	"math/rand"
)

// Exported size/threshold constants.
const (
	// MinSize is the smallest matrix dimension a generator accepts.
	MinSize = 1

	// EdgeThreshold quantizes a uniform draw p ∈ [0,1): p ≥ EdgeThreshold → 1, else 0.
	EdgeThreshold = 0.5
)

// Edge values written by the generators.
const (
	noEdge   = 0.0
	edgeOn   = 1.0
	selfLoop = 1.0
)

// Float64Source yields uniform draws in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// edges draws every adjacency cell.
	edges Float64Source
	// rng picks repair endpoints and distribution weights.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	strong := cryptoSource{}
	cfg := builderConfig{
		edges: strong,
		rng:   rand.New(rand.NewSource(strong.Int63())),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
