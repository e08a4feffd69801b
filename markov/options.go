// SPDX-License-Identifier: MIT

package markov

import "fmt"

// Variant selects the diagonal (self-transition) strategy.
type Variant int

const (
	// Variant1 transposes the random walk and redistributes rejected mass:
	// t[i,i] = rw[i,i] + Σ_k rw[i,k]·(1 − min(1, r[i,k])).
	Variant1 Variant = 1
	// Variant2 assigns the residual mass: t[i,i] = 1 − Σ_{j≠i} t[i,j].
	Variant2 Variant = 2
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Variant1:
		return "v1"
	case Variant2:
		return "v2"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Orientation selects the memory layout of the returned matrix. ColumnMajor
// is a pure presentation transpose of the RowMajor result.
type Orientation int

const (
	// RowMajor returns t with t[i,j] = P(i → j); rows sum to 1.
	RowMajor Orientation = iota
	// ColumnMajor returns tᵀ; columns sum to 1.
	ColumnMajor
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

type config struct {
	variant     Variant
	orientation Orientation
	strict      bool
}

func defaultConfig() config {
	return config{variant: Variant2, orientation: RowMajor}
}

// Option configures MetropolisHastings.
type Option func(*config)

// WithVariant selects the diagonal strategy. Panics on values other than
// Variant1 and Variant2.
func WithVariant(v Variant) Option {
	if v != Variant1 && v != Variant2 {
		panic(fmt.Sprintf("markov: WithVariant(%d): unknown variant", int(v)))
	}
	return func(c *config) { c.variant = v }
}

// WithOrientation selects the output layout. Panics on unknown values.
func WithOrientation(o Orientation) Option {
	if o != RowMajor && o != ColumnMajor {
		panic(fmt.Sprintf("markov: WithOrientation(%d): unknown orientation", int(o)))
	}
	return func(c *config) { c.orientation = o }
}

// WithStrictRatios makes MetropolisHastings fail with ErrDegenerateRatio
// when a nonzero proposal meets a NaN or ±Inf ratio.
func WithStrictRatios() Option {
	return func(c *config) { c.strict = true }
}
