// Package gauss computes LU factorizations by Gaussian elimination WITHOUT
// pivoting, packing the multipliers in place and counting the elementary
// arithmetic operations performed along the way.
//
// 🚀 What is packed elimination?
//
//	Classic Gaussian elimination zeroes each sub-diagonal entry by
//	subtracting a scaled pivot row.  Instead of discarding the scale
//	factor ("multiplier"), the engine stores it in the slot it just
//	zeroed.  One matrix then carries BOTH factors:
//	  • strictly below the diagonal — L's multipliers (L's diagonal is 1)
//	  • on and above the diagonal   — U's entries
//	This packing is the standard storage trick of LINPACK/LAPACK-style
//	factorizations, kept here in its plain unblocked form.
//
// ✨ Key operations:
//   - Packed      — factor A into the combined matrix Ac plus an op count
//   - SplitLU     — unpack Ac into unit-lower L and upper U
//   - Eliminate   — Packed + SplitLU in one call: (L, U, opCount)
//   - Solve       — Ly = b, Ux = y over the packed factor
//   - Determinant — product of the packed diagonal (no row exchanges occur)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gausskit/gauss"
//
//	l, u, ops, err := gauss.Eliminate(a)
//	if err != nil {
//	  // non-square or nil input; factors are never produced on error
//	}
//	// l·u reconstructs a element-for-element; ops is the exact count
//
// The operation counter charges 2 per inner-loop update (one multiply, one
// subtract) plus 1 per processed row pair (the multiplier division). Rows
// whose sub-pivot entry is exactly zero are skipped and contribute nothing.
//
// ⚠️ No pivoting, no safety net: a zero pivot is NOT detected. The division
// yields ±Inf/NaN which silently poisons the remaining computation — that
// determinism-over-stability trade is intentional and applies to every
// routine in this package.
//
// Performance:
//
//   - Time:   O(n³) for factorization, O(n²) for Solve's substitutions
//   - Memory: O(n²) for the private working copy (inputs are never mutated)
//
// See example_test.go for runnable walkthroughs.
package gauss
