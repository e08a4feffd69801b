// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mixrate/matrix"
)

const (
	opMixingRate  = "MixingRate"
	opEigenvalues = "Eigenvalues"
)

// MixingRate returns max |λ(m − J/n)| for a square m.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (as *matrix.ShapeError).
//   - matrix.ErrNaNInf when m has a non-finite entry.
//   - ErrEigenFailed when the factorization does not converge.
//
// m is not modified. Complexity: O(n³).
func MixingRate(m matrix.Matrix) (float64, error) {
	if err := validate(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opMixingRate, err)
	}

	n := m.Rows()
	equilibrium, err := matrix.NewFilled(n, n, 1/float64(n))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMixingRate, err)
	}
	g := toGonum(m)
	g.Sub(g, equilibrium.Gonum())

	values, err := eigenvalues(g)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMixingRate, err)
	}

	var rate float64
	for _, lambda := range values {
		if abs := cmplx.Abs(lambda); abs > rate {
			rate = abs
		}
	}

	return rate, nil
}

// Eigenvalues returns the (complex) spectrum of a square m in the order
// produced by the solver.
func Eigenvalues(m matrix.Matrix) ([]complex128, error) {
	if err := validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, err)
	}

	values, err := eigenvalues(toGonum(m))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEigenvalues, err)
	}

	return values, nil
}

func validate(m matrix.Matrix) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}

	return matrix.ValidateFinite(m)
}

func toGonum(m matrix.Matrix) *mat.Dense {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Gonum()
	}
	n := m.Rows()
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, _ := m.At(i, j)
			g.Set(i, j, x)
		}
	}

	return g
}

func eigenvalues(g *mat.Dense) ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	return eig.Values(nil), nil
}
