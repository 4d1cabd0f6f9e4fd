// SPDX-License-Identifier: MIT

// Package sparse - diagnostic rendering.
//
// String output is a debugging aid, not a stable wire format. Small
// uncompressed matrices render as a dense grid (every cell, zero or not);
// small compressed matrices render their three raw arrays. Anything larger
// than the dense threshold on either axis renders as a listing of
// (row, column, value) triples: the grid form does not scale to
// production-size matrices.

package sparse

import (
	"fmt"
	"strings"
)

// DenseRenderLimit is the largest extent (per axis) still rendered as a
// dense grid or as raw compressed arrays.
const DenseRenderLimit = 20

// Formatting literals.
const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64, RowMajor])(nil)

// String renders the matrix for diagnostics, dispatching on representation
// and size as documented on the package.
// Complexity: O(rows·cols) for the grid form, O(nnz) otherwise.
func (m *Matrix[T, O]) String() string {
	small := m.rows <= DenseRenderLimit && m.cols <= DenseRenderLimit
	switch {
	case !small:
		return m.renderTriples()
	case m.IsCompressed():
		return m.renderArrays()
	default:
		return m.renderGrid()
	}
}

// renderGrid prints every cell of a small uncompressed matrix.
func (m *Matrix[T, O]) renderGrid() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sparse %d x %d, %d nnz (uncompressed)\n", m.rows, m.cols, m.NNZ())
	for i := 0; i < m.rows; i++ {
		b.WriteString(fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			v, _ := m.At(i, j) // in-bounds by loop construction
			fmt.Fprintf(&b, "%v", v)
			if j < m.cols-1 {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}

// renderArrays prints the three raw arrays of a small compressed matrix,
// labeled by the axis roles of the ordering policy.
func (m *Matrix[T, O]) renderArrays() string {
	primary, secondary := axisLabels(m.ord)
	var b strings.Builder
	fmt.Fprintf(&b, "sparse %d x %d, %d nnz (compressed, %s-major)\n",
		m.rows, m.cols, m.NNZ(), primary)
	fmt.Fprintf(&b, "%s offsets: %v\n", primary, m.comp.offsets)
	fmt.Fprintf(&b, "%s indices: %v\n", secondary, m.comp.indices)
	fmt.Fprintf(&b, "values: %v\n", m.comp.values)

	return b.String()
}

// renderTriples prints non-zero entries only, one (row, column, value)
// triple per line, in policy order.
func (m *Matrix[T, O]) renderTriples() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sparse %d x %d, %d nnz\n", m.rows, m.cols, m.NNZ())
	m.Entries(func(i, j int, v T) bool {
		fmt.Fprintf(&b, "(%d,%d): %v\n", i, j, v)

		return true
	})

	return b.String()
}
