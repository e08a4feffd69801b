// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"

	"github.com/katalvlaran/mixrate/builder"
	"github.com/katalvlaran/mixrate/candidate"
)

// Defaults used by DefaultConfig.
const (
	DefaultSamples = 30
)

// DefaultSizes are the network sizes sampled by default.
var DefaultSizes = []int{8, 16}

// DefaultProducers lists every built-in producer in report order.
var DefaultProducers = []string{candidate.NameMH, candidate.NameSDPMH, candidate.NameGO, candidate.NameMGO}

// Config controls a sampling run.
type Config struct {
	Samples        int      `toml:"samples"`
	Sizes          []int    `toml:"sizes"`
	Producers      []string `toml:"producers"`
	AllowSelfLoops bool     `toml:"allow_self_loops"`
	ForceSelfLoops bool     `toml:"force_self_loops"`
	Workers        int      `toml:"workers"` // ≤ 0 means one per CPU
	Seed           int64    `toml:"seed"`    // 0 draws from crypto/rand
}

// DefaultConfig returns 30 samples of sizes 8 and 16 for all producers with
// self-loops allowed and forced.
func DefaultConfig() Config {
	return Config{
		Samples:        DefaultSamples,
		Sizes:          append([]int(nil), DefaultSizes...),
		Producers:      append([]string(nil), DefaultProducers...),
		AllowSelfLoops: true,
		ForceSelfLoops: true,
	}
}

// Validate checks the run parameters.
func (c Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("%w: samples must be ≥ 1, got %d", ErrInvalidConfig, c.Samples)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < builder.MinSize {
			return fmt.Errorf("%w: size must be ≥ %d, got %d", ErrInvalidConfig, builder.MinSize, n)
		}
	}
	if !c.AllowSelfLoops && c.ForceSelfLoops {
		return fmt.Errorf("%w: self-loops forced but not allowed", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Producers))
	for _, name := range c.Producers {
		if seen[name] {
			return fmt.Errorf("%w: producer %q listed twice", ErrInvalidConfig, name)
		}
		seen[name] = true
	}

	return nil
}
