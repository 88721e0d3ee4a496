// SPDX-License-Identifier: MIT
// Package: gonumconv
//
// Purpose:
//  - Bridge matrix.Dense and gonum's mat.Dense without either side importing
//    the other's representation details.
//  - Keep conversions copy-based: the returned matrix never aliases the input.
//
// Determinism & Performance:
//  - Both directions are single-pass copies, O(r·c) time, O(r·c) space.
//  - *matrix.Dense inputs take a flat-buffer fast path; any other Matrix
//    falls back to At in fixed row-major order.
//
// AI-Hints:
//  - Use ToDense before mat.Formatted for aligned pretty-printing.
//  - Use FromDense to feed gonum-built fixtures into the elimination engine.

package gonumconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gausskit/matrix"
)

// Operation tags used in wrapped conversion errors.
const (
	opToDense   = "ToDense"
	opFromDense = "FromDense"
)

// convErrorf wraps an underlying error with the conversion operation tag.
func convErrorf(opTag string, err error) error {
	return fmt.Errorf("gonumconv.%s: %w", opTag, err)
}

// ToDense converts any Matrix into a freshly allocated gonum *mat.Dense.
//
// Implementation:
//  1. Validate the input is non-nil.
//  2. Copy the values into a new row-major buffer (never alias the source).
//  3. Hand the buffer to mat.NewDense.
//
// Behavior highlights:
//   - *matrix.Dense sources are copied with a single copy() over the flat buffer.
//   - Other Matrix implementations are read element-wise via At in row-major order.
//
// Inputs:
//   - m : source matrix, r×c, non-nil.
//
// Returns:
//   - *mat.Dense holding an independent copy of m's values.
//   - error when m is nil or an At read fails.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange (wrapped).
// Determinism: same input bits → same output bits.
// Complexity: O(r·c) time, O(r·c) space.
func ToDense(m matrix.Matrix) (*mat.Dense, error) {
	// Stage 1: guard against nil before touching dimensions.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convErrorf(opToDense, err)
	}

	// Predeclare everything used below.
	var (
		r   = m.Rows()       // row count
		c   = m.Cols()       // column count
		buf []float64        // destination row-major buffer
		i   int              // row cursor
		j   int              // column cursor
		v   float64          // fetched element (fallback path)
		err error            // At error carrier (fallback path)
	)
	buf = make([]float64, r*c)

	// Stage 2: fast path — one flat copy for the native dense type.
	if d, ok := m.(*matrix.Dense); ok {
		copy(buf, d.Data())

		return mat.NewDense(r, c, buf), nil
	}

	// Stage 2': generic fallback — fixed row-major read order.
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, convErrorf(opToDense, err)
			}
			buf[i*c+j] = v
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromDense converts a gonum *mat.Dense into a freshly allocated *matrix.Dense.
//
// Implementation:
//  1. Validate the input is non-nil.
//  2. Allocate the destination and copy gonum's raw row-major data.
//
// Inputs:
//   - d : source gonum matrix, non-nil.
//
// Returns:
//   - *matrix.Dense holding an independent copy of d's values.
//   - error when d is nil.
//
// Errors: matrix.ErrNilMatrix (wrapped).
// Complexity: O(r·c) time, O(r·c) space.
func FromDense(d *mat.Dense) (*matrix.Dense, error) {
	// Stage 1: nil guard, reusing the unified sentinel.
	if d == nil {
		return nil, convErrorf(opFromDense, matrix.ErrNilMatrix)
	}

	// Predeclare everything used below.
	var (
		r, c = d.Dims()     // source dimensions
		raw  = d.RawMatrix() // gonum's backing descriptor
		out  *matrix.Dense   // destination matrix
		buf  []float64       // destination flat buffer
		i    int             // row cursor
		err  error           // construction error carrier
	)
	if out, err = matrix.NewDense(r, c); err != nil {
		return nil, convErrorf(opFromDense, err)
	}
	buf = out.Data()

	// Stage 2: copy row by row — gonum's stride may exceed the column count.
	for i = 0; i < r; i++ {
		copy(buf[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}

	return out, nil
}
