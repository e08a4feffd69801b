// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/mixrate/builder"
	"github.com/katalvlaran/mixrate/connectivity"
	"github.com/katalvlaran/mixrate/matrix"
)

// TestGeneratorProperties checks the generator invariants for random sizes
// and loop policies. These properties must hold for every draw.
func TestGeneratorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("generated matrices are symmetric", prop.ForAll(
		func(n int, allow, force bool) bool {
			if !allow {
				force = false
			}
			m, err := builder.NewSymmetric(n, allow, force)
			return err == nil && matrix.IsSymmetric(m, matrix.DefaultSymmetryTol)
		},
		gen.IntRange(1, 24),
		gen.Bool(),
		gen.Bool(),
	))

	properties.Property("forbidden self-loops give a zero diagonal", prop.ForAll(
		func(n int) bool {
			m, err := builder.NewSymmetric(n, false, false)
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				if v, _ := m.At(i, i); v != 0 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 24),
	))

	properties.Property("forced self-loops give a unit diagonal", prop.ForAll(
		func(n int) bool {
			m, err := builder.NewSymmetric(n, true, true)
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				if v, _ := m.At(i, i); v != 1 {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 24),
	))

	properties.Property("forbid+force always fails", prop.ForAll(
		func(n int) bool {
			_, err := builder.NewSymmetric(n, false, true)
			return err != nil
		},
		gen.IntRange(1, 24),
	))

	properties.Property("connected generator yields one undirected component", prop.ForAll(
		func(n int, allow bool) bool {
			m, err := builder.NewSymmetricConnected(n, allow, false)
			if err != nil {
				return false
			}
			ok, err := connectivity.IsConnected(m, false)
			return err == nil && ok && matrix.IsSymmetric(m, matrix.DefaultSymmetryTol)
		},
		gen.IntRange(2, 24),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
