// SPDX-License-Identifier: MIT

package mixrate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mixrate/builder"
	"github.com/katalvlaran/mixrate/connectivity"
	"github.com/katalvlaran/mixrate/markov"
	"github.com/katalvlaran/mixrate/matrix"
	"github.com/katalvlaran/mixrate/spectral"
)

// ErrInvalidArgument reports an unknown variant or orientation.
var ErrInvalidArgument = errors.New("mixrate: invalid argument")

// GenerateAdjacency returns a random symmetric 0/1 adjacency matrix of the
// given size. With connected set, the result is also connected (size ≥ 2).
//
// Errors: builder.ErrTooFewVertices, builder.ErrInvalidConfiguration.
func GenerateAdjacency(size int, allowSelfLoops, forceSelfLoops, connected bool, opts ...builder.BuilderOption) (*matrix.Dense, error) {
	if connected {
		return builder.NewSymmetricConnected(size, allowSelfLoops, forceSelfLoops, opts...)
	}

	return builder.NewSymmetric(size, allowSelfLoops, forceSelfLoops, opts...)
}

// BuildTransitionMatrix returns the Metropolis-Hastings transition matrix of
// a for the stationary distribution v.
//
// Errors: ErrInvalidArgument, matrix.ErrDistributionShape,
// matrix.ErrNonSquare, markov.ErrZeroDegree.
func BuildTransitionMatrix(a matrix.Matrix, v []float64, variant markov.Variant, orientation markov.Orientation) (*matrix.Dense, error) {
	if variant != markov.Variant1 && variant != markov.Variant2 {
		return nil, fmt.Errorf("BuildTransitionMatrix: variant %d: %w", int(variant), ErrInvalidArgument)
	}
	if orientation != markov.RowMajor && orientation != markov.ColumnMajor {
		return nil, fmt.Errorf("BuildTransitionMatrix: orientation %d: %w", int(orientation), ErrInvalidArgument)
	}

	return markov.MetropolisHastings(a, v, markov.WithVariant(variant), markov.WithOrientation(orientation))
}

// MixingRate returns the spectral mixing rate of t. See spectral.MixingRate.
func MixingRate(t matrix.Matrix) (float64, error) {
	return spectral.MixingRate(t)
}

// IsSymmetric reports whether m is square and |m[i,j] − m[j,i]| < tol
// everywhere. Use matrix.DefaultSymmetryTol when in doubt.
func IsSymmetric(m matrix.Matrix, tol float64) bool {
	return matrix.IsSymmetric(m, tol)
}

// IsConnected reports whether m is connected; with directed set, strongly
// connected.
func IsConnected(m matrix.Matrix, directed bool) (bool, error) {
	return connectivity.IsConnected(m, directed)
}
