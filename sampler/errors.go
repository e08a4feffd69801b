// SPDX-License-Identifier: MIT

package sampler

import "errors"

// ErrInvalidConfig reports a Config that cannot be run.
var ErrInvalidConfig = errors.New("sampler: invalid configuration")
