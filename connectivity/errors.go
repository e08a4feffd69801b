// SPDX-License-Identifier: MIT

package connectivity

import "fmt"

// connectivityErrorf attaches the entry point name to a lower-level error.
// Sentinels come from package matrix; callers match them with errors.Is.
func connectivityErrorf(op string, err error) error {
	return fmt.Errorf("connectivity.%s: %w", op, err)
}
