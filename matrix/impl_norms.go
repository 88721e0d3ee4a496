// SPDX-License-Identifier: MIT
// Package matrix: induced matrix norms.
//
// Purpose:
//   - Norm1    — maximum absolute COLUMN sum (the matrix 1-norm).
//   - NormInf  — maximum absolute ROW sum (the matrix ∞-norm).
//
// Determinism & Performance:
//   - Fixed loop orders; *Dense fast path walks the flat buffer once.
//   - No allocations beyond the column accumulator in Norm1's fallback-free design.
//
// AI-Hints:
//   - Norm1 of (A − L·U) against ~0 is the canonical reconstruction check
//     for the elimination engine; NormInf is the showcase driver's summary stat.

package matrix

import (
	"fmt"
	"math"
)

// Norm1 returns the matrix 1-norm: max_j Σ_i |m[i,j]|.
// Implementation:
//   - Stage 1: ValidateNotNil(m); read shape once.
//   - Stage 2: accumulate per-column absolute sums in a single row-major pass,
//     then take the maximum (fixed j order).
//
// Behavior highlights:
//   - One O(c) accumulator; the input is never mutated.
//   - NaN entries propagate into the result (no numeric policy applied here).
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - float64: the maximum absolute column sum (0 for the 1×1 zero matrix).
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Row-major accumulation, then a fixed left-to-right max scan.
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// AI-Hints:
//   - Pair with Sub to measure reconstruction drift: Norm1(Diff(A, L·U)).
func Norm1(m Matrix) (float64, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return NormZero, matrixErrorf(opNorm1, err)
	}

	// Read shape once and allocate the per-column accumulator.
	rows, cols := m.Rows(), m.Cols()
	colSums := make([]float64, cols)

	// Fast-path for *Dense: one pass over the flat row-major buffer.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i := 0; i < rows; i++ {
			base = i * cols
			for j := 0; j < cols; j++ {
				colSums[j] += math.Abs(dm.data[base+j])
			}
		}
	} else {
		// Generic fallback via At with fixed i→j order.
		var v float64
		var err error
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return NormZero, matrixErrorf(opNorm1, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				colSums[j] += math.Abs(v)
			}
		}
	}

	// Take the maximum column sum in a fixed left-to-right scan.
	maxSum := NormZero
	for j := 0; j < cols; j++ {
		if colSums[j] > maxSum {
			maxSum = colSums[j]
		}
	}

	return maxSum, nil
}

// NormInf returns the matrix ∞-norm: max_i Σ_j |m[i,j]|.
// Implementation:
//   - Stage 1: ValidateNotNil(m); read shape once.
//   - Stage 2: accumulate each row's absolute sum and track the running maximum
//     (fixed i→j order).
//
// Behavior highlights:
//   - O(1) extra space; the input is never mutated.
//   - NaN entries propagate into the result (no numeric policy applied here).
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - float64: the maximum absolute row sum.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed i→j accumulation; the first maximal row wins ties (no effect on value).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - NormInf(U) for the packed upper factor is a cheap magnitude summary of
//     the pivot growth produced by non-pivoting elimination.
func NormInf(m Matrix) (float64, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return NormZero, matrixErrorf(opNormInf, err)
	}

	// Read shape once.
	rows, cols := m.Rows(), m.Cols()

	var rowSum, maxSum float64

	// Fast-path for *Dense: contiguous row walks.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i := 0; i < rows; i++ {
			base = i * cols
			rowSum = NormZero
			for j := 0; j < cols; j++ {
				rowSum += math.Abs(dm.data[base+j])
			}
			if rowSum > maxSum {
				maxSum = rowSum
			}
		}
		return maxSum, nil
	}

	// Generic fallback via At with fixed i→j order.
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		rowSum = NormZero
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return NormZero, matrixErrorf(opNormInf, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			rowSum += math.Abs(v)
		}
		if rowSum > maxSum {
			maxSum = rowSum
		}
	}

	return maxSum, nil
}
