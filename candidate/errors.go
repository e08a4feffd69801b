// SPDX-License-Identifier: MIT

package candidate

import "errors"

var (
	// ErrInfeasible is what Optimizer and TransitionOptimizer implementations
	// return when the problem has no solution. Producers turn it into an
	// infeasible Result.
	ErrInfeasible = errors.New("candidate: infeasible problem")

	// ErrUnknownProducer reports a producer name that is not registered.
	ErrUnknownProducer = errors.New("candidate: unknown producer")
)
