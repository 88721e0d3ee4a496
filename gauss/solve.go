// SPDX-License-Identifier: MIT
// Package gauss: consumers of the packed factor.
//
// Purpose:
//   - Solve       — A·x = b through forward/backward substitution over Packed's output.
//   - Determinant — product of the packed diagonal (valid: no row exchanges occur).
//
// Determinism & Policy:
//   - Fixed substitution orders (forward i ascending, backward i descending).
//   - Same no-guard policy as the engine: zero pivots yield ±Inf/NaN in x.

package gauss

import (
	"github.com/katalvlaran/gausskit/matrix"
)

// Solve computes x with A·x = b by factoring A (Packed) and running the two
// triangular substitutions over the combined factor: Ly = b, then Ux = y.
//
// Implementation:
//   - Stage 1: Packed(a) → combined factor + op count; ValidateVecLen(b, n).
//   - Stage 2: Forward substitution against the strictly-lower multipliers
//     (unit diagonal, no division), then backward substitution against the
//     upper rows (divides by the U diagonal; no zero guard).
//
// Behavior highlights:
//   - Neither a nor b is mutated; x and the internal y are fresh slices.
//   - The returned count covers the ELIMINATION only (the frozen counting
//     rule has no clause for substitutions).
//
// Inputs:
//   - a: square matrix (n×n).
//   - b: right-hand side of length n.
//
// Returns:
//   - []float64: the solution x.
//   - int: the elimination operation count.
//   - error: validation failures wrapped with the Solve tag.
//
// Errors:
//   - matrix.ErrNilMatrix          (nil matrix or nil vector).
//   - matrix.ErrDimensionMismatch  (non-square a).
//   - matrix.ErrVectorLength       (len(b) != n).
//
// Determinism:
//   - Fixed substitution orders; identical inputs yield identical x.
//
// Complexity:
//   - Time O(n³) factorization + O(n²) substitutions, Space O(n²).
//
// Notes:
//   - A zero U diagonal entry divides through to ±Inf/NaN in x, exactly as
//     in the elimination itself — singularity is not an error here.
//
// AI-Hints:
//   - For repeated right-hand sides, call Packed once and keep the combined
//     factor; the substitutions below are cheap relative to refactoring.
func Solve(a matrix.Matrix, b []float64) ([]float64, int, error) {
	// Factor first: Packed validates shape and owns the working copy.
	ac, ops, err := Packed(a)
	if err != nil {
		return nil, 0, gaussErrorf(opSolve, err)
	}

	// Validate the right-hand side against the factored dimension.
	n := ac.Rows()
	if err = matrix.ValidateVecLen(b, n); err != nil {
		return nil, 0, gaussErrorf(opSolve, err)
	}

	buf := ac.Data() // flat packed factor: L strictly below, U on/above
	var (
		i, k int     // loop iterators
		base int     // flat offset of row i
		sum  float64 // dot-product accumulator
	)

	// Forward substitution: Ly = b with L's implicit unit diagonal.
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		base = i * n
		sum = matrix.ZeroSum
		for k = 0; k < i; k++ {
			sum += buf[base+k] * y[k] // strictly-lower multipliers are L
		}
		y[i] = b[i] - sum // unit diagonal: no division in this pass
	}

	// Backward substitution: Ux = y, dividing by the U diagonal (unguarded).
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		sum = matrix.ZeroSum
		for k = i + 1; k < n; k++ {
			sum += buf[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / buf[base+i] // zero diagonal → ±Inf/NaN, by policy
	}

	return x, ops, nil
}

// Determinant returns det(A) as the product of the packed factor's diagonal.
// Because the engine performs no row exchanges, the permutation sign is
// always +1 and the U diagonal's product IS the determinant.
//
// Implementation:
//   - Stage 1: Packed(a) → combined factor.
//   - Stage 2: Multiply the diagonal entries in a fixed ascending scan.
//
// Inputs:
//   - a: square matrix (n×n).
//
// Returns:
//   - float64: the determinant (±Inf/NaN when a zero pivot poisoned the factor).
//   - error: validation failures wrapped with the Determinant tag.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed left-to-right product; identical input yields an identical value.
//
// Complexity:
//   - Time O(n³) (dominated by the factorization), Space O(n²).
//
// AI-Hints:
//   - On benign inputs this matches a pivoting LU's determinant; with zero
//     pivots the non-pivoting factor degenerates instead of erroring.
func Determinant(a matrix.Matrix) (float64, error) {
	// Factor into the packed combined matrix.
	ac, _, err := Packed(a)
	if err != nil {
		return 0, gaussErrorf(opDeterminant, err)
	}

	// Multiply the diagonal in a fixed scan.
	n := ac.Rows()
	buf := ac.Data()
	det := unitDiagonal // multiplicative identity
	for i := 0; i < n; i++ {
		det *= buf[i*n+i]
	}

	return det, nil
}
