// SPDX-License-Identifier: MIT
// Command gausskit runs the elimination showcase: it builds the reference
// matrix B(n) = I − strictlyLowerOnes(n) with its last column forced to ones,
// factors it with gauss.Eliminate, and prints the factors, the operation
// count, the reconstruction verdict and the infinity norm of U.
//
// Usage:
//
//	gausskit [--n 7] [--tol 1e-8]
//
// For the default order n=7 the run is a fixed regression scenario: 203
// operations, ‖U‖∞ = 64, verdict "Si!".
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gausskit/gauss"
	"github.com/katalvlaran/gausskit/gonumconv"
	"github.com/katalvlaran/gausskit/matrix"
)

// Defaults of the showcase flags.
const (
	defaultOrder     = 7    // order of the showcase matrix
	defaultTolerance = 1e-8 // absolute tolerance of the reconstruction verdict
)

// Verdict tokens printed after the reconstruction check.
const (
	verdictYes = "Si!"
	verdictNo  = "No!"
)

// showcaseOptions carries the flag values of the root command.
type showcaseOptions struct {
	order     int     // matrix order, --n
	tolerance float64 // verdict tolerance, --tol
}

// addFlags registers the showcase flags on the given flag set.
func (o *showcaseOptions) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.order, "n", defaultOrder, "order of the showcase matrix")
	fs.Float64Var(&o.tolerance, "tol", defaultTolerance, "absolute tolerance of the reconstruction verdict")
}

// validate rejects flag values the showcase cannot run on.
func (o *showcaseOptions) validate() error {
	if o.order < 1 {
		return fmt.Errorf("--n must be at least 1, got %d", o.order)
	}
	if o.tolerance < 0 {
		return fmt.Errorf("--tol must be non-negative, got %g", o.tolerance)
	}

	return nil
}

// newRootCommand wires the showcase into a cobra command.
func newRootCommand(w io.Writer) *cobra.Command {
	opts := &showcaseOptions{}
	cmd := &cobra.Command{
		Use:          "gausskit",
		Short:        "LU elimination showcase (Gaussian elimination without pivoting)",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			return run(w, opts)
		},
	}
	opts.addFlags(cmd.Flags())

	return cmd
}

// buildShowcase constructs B(n) = I − strictlyLowerOnes(n) with the last
// column forced to all ones. Every pivot of B stays nonzero during naive
// elimination, which keeps the showcase free of Inf/NaN poisoning.
func buildShowcase(n int) (matrix.Matrix, error) {
	// Predeclare everything used below.
	var (
		identity *matrix.Dense // I(n)
		lower    *matrix.Dense // strictly lower ones
		b        matrix.Matrix // the showcase matrix
		i        int           // row cursor
		err      error         // error carrier
	)

	if identity, err = matrix.NewIdentity(n); err != nil {
		return nil, err
	}
	if lower, err = matrix.NewLowerOnes(n); err != nil {
		return nil, err
	}
	if b, err = matrix.Diff(identity, lower); err != nil {
		return nil, err
	}

	// Force the last column to ones.
	for i = 0; i < n; i++ {
		if err = b.Set(i, n-1, 1); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// printMatrix writes a labeled, column-aligned rendering of m.
func printMatrix(w io.Writer, label string, m matrix.Matrix) error {
	gd, err := gonumconv.ToDense(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n%v\n", label, mat.Formatted(gd, mat.Prefix(""), mat.Squeeze()))

	return nil
}

// run executes the showcase scenario and writes the report to w.
func run(w io.Writer, opts *showcaseOptions) error {
	// Predeclare everything used below.
	var (
		b       matrix.Matrix // showcase matrix
		l, u    matrix.Matrix // the factors
		product matrix.Matrix // L·U
		resid   matrix.Matrix // B − L·U
		ops     int           // elimination operation count
		norm    float64       // norm scratch
		verdict string        // Si! / No!
		err     error         // error carrier
	)

	if b, err = buildShowcase(opts.order); err != nil {
		return err
	}
	if err = printMatrix(w, "Matrix B", b); err != nil {
		return err
	}

	if l, u, ops, err = gauss.Eliminate(b); err != nil {
		return err
	}
	if err = printMatrix(w, "Matrix L", l); err != nil {
		return err
	}
	if err = printMatrix(w, "Matrix U", u); err != nil {
		return err
	}
	fmt.Fprintln(w, "Operation count:", ops)

	// Reconstruction verdict: ‖B − L·U‖₁ compared against zero.
	if product, err = matrix.Product(l, u); err != nil {
		return err
	}
	if resid, err = matrix.Diff(b, product); err != nil {
		return err
	}
	if norm, err = matrix.Norm1(resid); err != nil {
		return err
	}
	verdict = verdictNo
	if norm <= opts.tolerance {
		verdict = verdictYes
	}
	fmt.Fprintln(w, "B = L·U?", verdict)

	if norm, err = matrix.NormInf(u); err != nil {
		return err
	}
	fmt.Fprintln(w, "Infinity norm of U:", norm)

	return nil
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
