// SPDX-License-Identifier: MIT

package engine

import "errors"

var (
	// ErrUnavailable reports that the engine could not be started or reached,
	// or answered with something other than a transition or an infeasibility.
	ErrUnavailable = errors.New("engine: unavailable")

	// ErrInfeasible reports that the engine ran but found no transition matrix.
	ErrInfeasible = errors.New("engine: infeasible problem")

	// ErrReleased reports a Submit through a Handle that was already released.
	ErrReleased = errors.New("engine: handle released")
)
