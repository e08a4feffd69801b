// SPDX-License-Identifier: MIT
// Package matrix: public helpers over Dense.
//
// Purpose:
//   - Provide the handful of whole-matrix operations the Markov pipeline needs
//     (filled constructors, transpose, row sums, row-major readout).
//   - Keep every helper allocation-explicit: inputs are never mutated,
//     results are freshly allocated and owned by the caller.
//
// Determinism & Policy:
//   - Fixed i→j loop orders; identical inputs give bit-identical outputs.

package matrix

// NewFilled returns an rows×cols matrix with every cell set to value.
// Complexity: O(r*c).
//
// AI-Hints: NewFilled(n, n, 1/float64(n)) is the uniform equilibrium matrix J/n.
func NewFilled(rows, cols int, value float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Transpose returns a new c×r matrix with T[j,i] = m[i,j].
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("Transpose", err)
	}
	t, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			x, _ = m.At(i, j)
			t.data[j*t.c+i] = x
		}
	}

	return t, nil
}

// RowSums returns s[i] = Σ_j m[i,j], summed left to right.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("RowSums", err)
	}
	var (
		sums = make([]float64, m.Rows())
		i, j int
		x    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			x, _ = m.At(i, j)
			sums[i] += x
		}
	}

	return sums, nil
}

// ToDense returns m itself when it already is a *Dense, or a Dense copy of
// any other Matrix implementation.
//
// Notes:
//   - The *Dense fast path aliases the argument; callers that mutate the
//     result must Clone first.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, validatorErrorf("ToDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			x, _ = m.At(i, j)
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}
