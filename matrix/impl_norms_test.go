// Package matrix_test contains unit tests for the induced matrix norms.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gausskit/matrix"
)

func TestNorm1_HandComputed(t *testing.T) {
	t.Parallel()

	// Column abs sums: |1|+|-4| = 5, |2|+|5| = 7, |-3|+|6| = 9 → max 9.
	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, -3,
		-4, 5, 6,
	})
	got, err := matrix.Norm1(m)
	if err != nil {
		t.Fatalf("Norm1: %v", err)
	}
	if got != 9 {
		t.Fatalf("Norm1 = %v, want 9", got)
	}
}

func TestNormInf_HandComputed(t *testing.T) {
	t.Parallel()

	// Row abs sums: 1+2+3 = 6, 4+5+6 = 15 → max 15.
	m := NewFilledDense(t, 2, 3, []float64{
		1, 2, -3,
		-4, 5, 6,
	})
	got, err := matrix.NormInf(m)
	if err != nil {
		t.Fatalf("NormInf: %v", err)
	}
	if got != 15 {
		t.Fatalf("NormInf = %v, want 15", got)
	}
}

func TestNorms_ZeroMatrix(t *testing.T) {
	m := MustDense(t, 3, 3)

	n1, err := matrix.Norm1(m)
	if err != nil {
		t.Fatalf("Norm1: %v", err)
	}
	ni, err := matrix.NormInf(m)
	if err != nil {
		t.Fatalf("NormInf: %v", err)
	}
	if n1 != 0 || ni != 0 {
		t.Fatalf("norms of zero matrix = (%v, %v), want (0, 0)", n1, ni)
	}
}

func TestNorms_TransposeDuality(t *testing.T) {
	t.Parallel()

	// Norm1(A) == NormInf(Aᵀ): the induced norms swap under transposition.
	m := MustDense(t, 4, 3)
	RandomFill(t, m, 31)

	mt, err := matrix.T(m)
	if err != nil {
		t.Fatalf("T: %v", err)
	}
	n1, err := matrix.Norm1(m)
	if err != nil {
		t.Fatalf("Norm1: %v", err)
	}
	niT, err := matrix.NormInf(mt)
	if err != nil {
		t.Fatalf("NormInf: %v", err)
	}
	if n1 != niT {
		t.Fatalf("Norm1(A)=%v, NormInf(Aᵀ)=%v; must match exactly", n1, niT)
	}
}

func TestNorms_Fallback_MatchesFast(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 5, 5)
	RandomFill(t, m, 47)

	fast1, err := matrix.Norm1(m)
	if err != nil {
		t.Fatalf("Norm1(fast): %v", err)
	}
	slow1, err := matrix.Norm1(hide{m})
	if err != nil {
		t.Fatalf("Norm1(fallback): %v", err)
	}
	if fast1 != slow1 {
		t.Fatalf("Norm1 path mismatch: %v vs %v", fast1, slow1)
	}

	fastI, err := matrix.NormInf(m)
	if err != nil {
		t.Fatalf("NormInf(fast): %v", err)
	}
	slowI, err := matrix.NormInf(hide{m})
	if err != nil {
		t.Fatalf("NormInf(fallback): %v", err)
	}
	if fastI != slowI {
		t.Fatalf("NormInf path mismatch: %v vs %v", fastI, slowI)
	}
}

func TestNorms_NilInput(t *testing.T) {
	_, err := matrix.Norm1(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.NormInf(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
