// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"math"
)

// ErrEigenFailed reports that the eigendecomposition did not converge.
var ErrEigenFailed = errors.New("spectral: eigendecomposition failed")

// Infeasible is the mixing rate of a candidate that could not be produced.
var Infeasible = math.Inf(1)

// IsInfeasible reports whether rate is the Infeasible sentinel.
func IsInfeasible(rate float64) bool { return math.IsInf(rate, 1) }
