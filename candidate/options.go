// SPDX-License-Identifier: MIT

package candidate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mixrate/markov"
)

type config struct {
	validate bool
	tol      float64
	markov   []markov.Option
}

// Option configures a producer.
type Option func(*config)

// WithValidation checks every produced transition with
// markov.ValidateTransition at tolerance tol; a failing matrix is reported
// as infeasible. Panics on a negative or NaN tol.
func WithValidation(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("candidate: WithValidation(%g): tolerance must be finite and ≥ 0", tol))
	}
	return func(c *config) {
		c.validate = true
		c.tol = tol
	}
}

// WithMarkovOptions forwards options to markov.MetropolisHastings for the
// producers that call it ("mh" and "sdp-mh"). Orientation options are
// ignored: producers always work on row-major matrices.
func WithMarkovOptions(opts ...markov.Option) Option {
	return func(c *config) { c.markov = append(c.markov, opts...) }
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) markovOptions() []markov.Option {
	out := make([]markov.Option, 0, len(c.markov)+1)
	out = append(out, c.markov...)

	return append(out, markov.WithOrientation(markov.RowMajor))
}
