// SPDX-License-Identifier: MIT

package builder

import "math"

const (
	methodRandomDistribution = "RandomDistribution"
	distributionScale        = 100.0 // draws are U[0, 100) before normalization
)

// RandomDistribution returns a random stochastic vector of the given length:
// independent draws from U[0, 100), made non-negative and divided by their sum.
// An all-zero draw (probability ~0) falls back to the uniform vector so the
// result always sums to 1.
//
// Errors:
//   - ErrTooFewVertices when size < 1.
//
// Complexity: O(n).
func RandomDistribution(size int, opts ...BuilderOption) ([]float64, error) {
	if err := validateSize(methodRandomDistribution, size); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	var (
		v   = make([]float64, size)
		sum float64
	)
	for i := range v {
		v[i] = math.Abs(cfg.rng.Float64() * distributionScale)
		sum += v[i]
	}
	if sum == 0 {
		for i := range v {
			v[i] = 1 / float64(size)
		}
		return v, nil
	}
	for i := range v {
		v[i] /= sum
	}

	return v, nil
}
