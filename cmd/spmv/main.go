// SPDX-License-Identifier: MIT

// Command spmv exercises the sparse package end to end: it loads a Matrix
// Market file (or a built-in 5×3 demo matrix), prints the matrix, computes
// the three norms in both representations, and times the matrix-vector
// product before and after compression, verifying that both paths agree.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/jasmine-elga/sparsemat/mmarket"
	"github.com/jasmine-elga/sparsemat/sparse"
)

// agreeTol is the tolerance used to compare the uncompressed and compressed
// product results (they differ only by floating-point reassociation).
const agreeTol = 1e-9

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		columnMajor bool
		seed        int64
	)
	cmd := &cobra.Command{
		Use:   "spmv [file.mtx[.gz]]",
		Short: "Sparse matrix-vector product demo over COO and CSR/CSC storage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if columnMajor {
				return run[sparse.ColumnMajor](path, seed)
			}

			return run[sparse.RowMajor](path, seed)
		},
		SilenceUsage: true,
	}
	cmd.Flags().BoolVar(&columnMajor, "column", false, "use column-major (CSC) storage instead of row-major (CSR)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the random multiplication vector")

	return cmd
}

// run executes the full scenario under the chosen ordering policy.
func run[O sparse.Ordering](path string, seed int64) error {
	m, vec, err := load[O](path, seed)
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("Uncompressed (coordinate map)")
	pterm.Println(m.String())
	if err = reportNorms(m); err != nil {
		return err
	}
	resUnc, err := timedMulVec(m, vec)
	if err != nil {
		return err
	}

	pterm.DefaultSection.Println("Compressed")
	m.Compress()
	pterm.Println(m.String())
	if err = reportNorms(m); err != nil {
		return err
	}
	resComp, err := timedMulVec(m, vec)
	if err != nil {
		return err
	}

	if floats.EqualApprox(resUnc, resComp, agreeTol) {
		pterm.Success.Println("uncompressed and compressed products agree")
	} else {
		pterm.Error.Println("representation mismatch in product results")
	}

	// Same product with the vector supplied as a single-column matrix.
	col, err := columnMatrix[O](vec)
	if err != nil {
		return err
	}
	col.Compress()
	resMat, err := sparse.MulMat(m, col)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("matrix x single-column matrix: result length %d (rows %d)", len(resMat), m.Rows())

	return nil
}

// load builds the scenario input: a matrix from path when given, otherwise
// the built-in 5×3 demo, plus a multiplication vector of matching length.
func load[O sparse.Ordering](path string, seed int64) (*sparse.Matrix[float64, O], []float64, error) {
	if path == "" {
		m, err := demoMatrix[O]()
		if err != nil {
			return nil, nil, err
		}

		return m, []float64{1, 2, 3}, nil
	}

	m, err := mmarket.ReadFile[float64, O](path)
	if err != nil {
		return nil, nil, err
	}
	pterm.Info.Printfln("loaded %s: %d x %d, %d non-zeros", path, m.Rows(), m.Cols(), m.NNZ())

	return m, randomVector(m.Cols(), seed), nil
}

// demoMatrix is the 5×3 example with known norms and product.
func demoMatrix[O sparse.Ordering]() (*sparse.Matrix[float64, O], error) {
	m, err := sparse.New[float64, O](5, 3)
	if err != nil {
		return nil, err
	}
	entries := []sparse.Entry[float64]{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 2, Val: 3},
		{Row: 1, Col: 0, Val: 4}, {Row: 1, Col: 1, Val: 5},
		{Row: 2, Col: 1, Val: 8}, {Row: 2, Col: 2, Val: 6},
		{Row: 3, Col: 1, Val: 1}, {Row: 4, Col: 0, Val: 2},
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Val); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// randomVector returns a deterministic pseudo-random vector of length n with
// components in [-1, 1).
func randomVector(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// columnMatrix packs vec into an n×1 matrix.
func columnMatrix[O sparse.Ordering](vec []float64) (*sparse.Matrix[float64, O], error) {
	col, err := sparse.New[float64, O](len(vec), 1)
	if err != nil {
		return nil, err
	}
	for i, v := range vec {
		if err = col.Set(i, 0, v); err != nil {
			return nil, err
		}
	}

	return col, nil
}

// reportNorms renders the three norms of m as a table.
func reportNorms[O sparse.Ordering](m *sparse.Matrix[float64, O]) error {
	data := pterm.TableData{{"norm", "value"}}
	for _, kind := range []sparse.NormKind{sparse.NormOne, sparse.NormInf, sparse.NormFrobenius} {
		val, err := m.Norm(kind)
		if err != nil {
			return err
		}
		data = append(data, []string{kind.String(), fmt.Sprintf("%g", val)})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// timedMulVec runs the matrix-vector product once and reports the duration.
func timedMulVec[O sparse.Ordering](m *sparse.Matrix[float64, O], vec []float64) ([]float64, error) {
	start := time.Now()
	res, err := sparse.MulVec(m, vec)
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	pterm.Info.Printfln("A*v took %s (result length %d)", elapsed, len(res))

	return res, nil
}
