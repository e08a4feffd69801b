// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce the parameter
// contracts of the generators.
package builder

// validateSize ensures size ≥ MinSize.
// Complexity: O(1) time and space.
func validateSize(method string, size int) error {
	if size < MinSize {
		return builderErrorf(method, ErrTooFewVertices, "size must be ≥ %d, got %d", MinSize, size)
	}

	return nil
}

// validateLoopPolicy rejects the contradictory "forbid and force" combination.
// Complexity: O(1) time and space.
func validateLoopPolicy(method string, allowSelfLoops, forceSelfLoops bool) error {
	if !allowSelfLoops && forceSelfLoops {
		return builderErrorf(method, ErrInvalidConfiguration,
			"allowSelfLoops=false conflicts with forceSelfLoops=true")
	}

	return nil
}
