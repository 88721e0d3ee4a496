// SPDX-License-Identifier: MIT

// Package gauss: shared constants and the uniform error wrapper.
// Kernels live in gauss.go (factorization) and solve.go (consumers);
// this file keeps the operation tags and counting weights in one place.

package gauss

import "fmt"

// Operation-counter weights. The counter is pedagogical instrumentation with
// an exact, frozen rule: every inner-loop update (one multiply + one subtract)
// costs opsPerUpdate, and each processed row pair additionally costs
// opsPerRow for its multiplier division. The rule is load-bearing for the
// regression fixtures, so treat these as part of the public contract.
const (
	// opsPerUpdate is charged for each Ac[j][k] -= multi*Ac[i][k] update.
	opsPerUpdate = 2

	// opsPerRow is charged once per processed row pair (the division that
	// produces the multiplier).
	opsPerRow = 1
)

// ZeroEntry is the exact-zero sentinel of the skip rule: a row whose
// sub-pivot entry equals it is left untouched (no multiplier, no count).
// Near-zero values still trigger full elimination — no epsilon is applied.
const ZeroEntry = 0.0

// unitDiagonal is the implicit diagonal value of the lower factor L.
const unitDiagonal = 1.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opPacked      = "Packed"
	opSplitLU     = "SplitLU"
	opEliminate   = "Eliminate"
	opSolve       = "Solve"
	opDeterminant = "Determinant"
)

// gaussErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can match the underlying matrix sentinel with errors.Is.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Time: O(1). Space: O(1).
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("gauss.%s: %w", tag, err)
}
