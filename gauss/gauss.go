// SPDX-License-Identifier: MIT
// Package gauss: the elimination engine.
//
// Purpose:
//   - Packed     — in-place Gaussian elimination (no pivoting) on a private copy.
//   - SplitLU    — unpack a combined factor into unit-lower L and upper U.
//   - Eliminate  — the one-call contract: (L, U, opCount) or an error.
//
// Determinism & Policy:
//   - Fixed loop orders: pivot column i ascending, row j ascending, column k ascending.
//   - The skip rule compares against exact zero (ZeroEntry); no epsilon.
//   - Zero pivots are NOT guarded: ±Inf/NaN propagate through values, never errors.

package gauss

import (
	"fmt"

	"github.com/katalvlaran/gausskit/matrix"
)

// workingCopy clones a into a freshly allocated *matrix.Dense the call owns.
// Fast-path clones the concrete Dense; the fallback copies elementwise via At
// with a fixed i→j order.
// Time: O(n²). Space: O(n²).
func workingCopy(a matrix.Matrix, opTag string) (*matrix.Dense, error) {
	// Fast path: Dense → Dense deep copy via the polymorphic Clone.
	if da, ok := a.(*matrix.Dense); ok {
		return da.Clone().(*matrix.Dense), nil
	}

	// Fallback: materialize a Dense of the same shape and copy via At.
	rows, cols := a.Rows(), a.Cols()
	cp, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, gaussErrorf(opTag, err)
	}
	buf := cp.Data() // flat destination view
	var i, j int     // loop iterators (deterministic order)
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, gaussErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v
		}
	}

	return cp, nil
}

// Packed factors a square matrix by Gaussian elimination without pivoting and
// returns the combined factor: multipliers strictly below the diagonal (L),
// the reduced rows on and above it (U), plus the exact operation count.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a); clone a into a private working copy.
//   - Stage 2: For each pivot column i, eliminate every row j>i whose
//     sub-pivot entry is nonzero: compute multi = Ac[j][i]/Ac[i][i], update
//     Ac[j][k] -= multi*Ac[i][k] for k>i, then store multi into Ac[j][i].
//
// Behavior highlights:
//   - The caller's matrix is NEVER mutated; the copy is owned by this call.
//   - Rows with an exactly-zero sub-pivot entry are skipped entirely
//     (no multiplier stored, no count charged).
//   - Counting rule: opsPerUpdate (2) per inner update + opsPerRow (1) per
//     processed row pair. Deterministic and reproducible for a fixed input.
//
// Inputs:
//   - a: square matrix (n×n), any Matrix implementation.
//
// Returns:
//   - *matrix.Dense: the packed combined factor Ac.
//   - int: the operation count.
//   - error: validation failures wrapped with the Packed tag.
//
// Errors:
//   - matrix.ErrNilMatrix          (nil input).
//   - matrix.ErrDimensionMismatch  (non-square input); no factors are produced.
//
// Determinism:
//   - Fixed i→j→k loop nest; identical input yields identical factor and count.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// Notes:
//   - A zero pivot Ac[i][i] is NOT detected: the division yields ±Inf/NaN and
//     poisons the remaining rows. Pivoting/stability is an explicit non-goal.
//
// AI-Hints:
//   - Feed *matrix.Dense to skip the elementwise copy of the fallback path.
//   - The packed layout feeds SplitLU, Solve and Determinant without rework.
func Packed(a matrix.Matrix) (*matrix.Dense, int, error) {
	// Validate shape first: non-square input must never reach the loop.
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, 0, gaussErrorf(opPacked, err)
	}

	// Clone into the private working copy this call owns.
	ac, err := workingCopy(a, opPacked)
	if err != nil {
		return nil, 0, err // already wrapped by workingCopy
	}

	// Eliminate in place over the flat row-major buffer.
	n := ac.Rows()
	buf := ac.Data() // aliases ac's storage; all writes land in the copy
	var (
		i, j, k       int     // loop iterators (deterministic order)
		pivotBase     int     // flat offset of the pivot row i
		rowBase       int     // flat offset of the row j being reduced
		multi         float64 // the multiplier packed into the L slot
		ops           int     // running operation count
	)
	for i = 0; i < n; i++ { // pivot columns, ascending
		pivotBase = i * n
		for j = i + 1; j < n; j++ { // rows below the pivot, ascending
			rowBase = j * n
			// Skip rule: an exactly-zero entry needs no elimination.
			if buf[rowBase+i] == ZeroEntry {
				continue
			}
			// No zero-pivot guard: Inf/NaN propagate by design.
			multi = buf[rowBase+i] / buf[pivotBase+i]
			for k = i + 1; k < n; k++ { // trailing columns, ascending
				buf[rowBase+k] -= multi * buf[pivotBase+k]
				ops += opsPerUpdate // one multiply + one subtract
			}
			ops += opsPerRow // the multiplier division
			// Pack the multiplier where the zero would sit: this IS the L entry.
			buf[rowBase+i] = multi
		}
	}

	// Return the combined factor and the count.
	return ac, ops, nil
}

// SplitLU unpacks a combined factor into its two triangular parts:
// L = strictly-lower(ac) + I (unit diagonal), U = upper(ac) including diagonal.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(ac); allocate L and U (n×n).
//   - Stage 2: One row-major pass routes each entry to L (j<i), U (j≥i),
//     and writes L's unit diagonal.
//
// Behavior highlights:
//   - ac is never mutated; both factors are freshly allocated.
//   - Works on any square matrix, packed or not — the split is positional.
//
// Inputs:
//   - ac: square combined factor (typically the output of Packed).
//
// Returns:
//   - l: unit-lower-triangular *matrix.Dense.
//   - u: upper-triangular *matrix.Dense (including diagonal).
//   - error: validation failures wrapped with the SplitLU tag.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j pass; output depends only on ac's values.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the two factors.
//
// AI-Hints:
//   - L·U reconstructs Packed's working copy element-for-element — an exact
//     algebraic identity of the packing, not a floating-point approximation.
func SplitLU(ac matrix.Matrix) (l, u *matrix.Dense, err error) {
	// Validate shape: the positional split is only defined for squares.
	if err = matrix.ValidateSquareNonNil(ac); err != nil {
		return nil, nil, gaussErrorf(opSplitLU, err)
	}

	// Allocate both factors.
	n := ac.Rows()
	l, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, gaussErrorf(opSplitLU, err)
	}
	u, err = matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, gaussErrorf(opSplitLU, err)
	}

	lbuf, ubuf := l.Data(), u.Data() // flat destination views
	var i, j, base int               // loop iterators and row offset

	// Fast path: read the source through its flat buffer.
	if dac, ok := ac.(*matrix.Dense); ok {
		src := dac.Data()
		for i = 0; i < n; i++ {
			base = i * n
			for j = 0; j < i; j++ { // strict lower → L
				lbuf[base+j] = src[base+j]
			}
			lbuf[base+i] = unitDiagonal // L's implicit unit diagonal
			for j = i; j < n; j++ {     // diagonal and upper → U
				ubuf[base+j] = src[base+j]
			}
		}
		return l, u, nil
	}

	// Fallback: generic interface reads with fixed i→j order.
	var v float64
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < i; j++ {
			v, err = ac.At(i, j)
			if err != nil {
				return nil, nil, gaussErrorf(opSplitLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			lbuf[base+j] = v
		}
		lbuf[base+i] = unitDiagonal
		for j = i; j < n; j++ {
			v, err = ac.At(i, j)
			if err != nil {
				return nil, nil, gaussErrorf(opSplitLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			ubuf[base+j] = v
		}
	}

	return l, u, nil
}

// Eliminate is the one-call contract of the engine:
// eliminate(A) → (L, U, opCount), or an error and no factors.
//
// Implementation:
//   - Stage 1: Packed(a) — factor into the combined matrix + count.
//   - Stage 2: SplitLU — unpack into the two triangular factors.
//
// Behavior highlights:
//   - Idempotent with respect to its input: a is never mutated, so repeated
//     calls on the same matrix yield identical L, U and count.
//
// Inputs:
//   - a: square matrix (n×n).
//
// Returns:
//   - l: unit-lower-triangular factor.
//   - u: upper-triangular factor.
//   - ops: the elimination operation count.
//   - err: validation failures wrapped with the Eliminate tag.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Determinism:
//   - Inherited from Packed and SplitLU (fixed loop orders throughout).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Verify results with matrix.Product(l, u) against the input and
//     matrix.Norm1 of the difference — the reconstruction is exact up to
//     the rounding of the elimination itself.
func Eliminate(a matrix.Matrix) (l, u *matrix.Dense, ops int, err error) {
	// Factor into the packed combined matrix.
	ac, ops, err := Packed(a)
	if err != nil {
		return nil, nil, 0, gaussErrorf(opEliminate, err)
	}

	// Unpack into the triangular factors.
	l, u, err = SplitLU(ac)
	if err != nil {
		return nil, nil, 0, gaussErrorf(opEliminate, err)
	}

	return l, u, ops, nil
}
