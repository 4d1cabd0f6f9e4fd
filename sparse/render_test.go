// SPDX-License-Identifier: MIT

// Package sparse_test: diagnostic rendering tests. Only the dispatch and the
// structural content are asserted; the exact layout is not a stable format.
package sparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasmine-elga/sparsemat/sparse"
)

func TestStringDenseGrid(t *testing.T) {
	m := newDemo[sparse.RowMajor](t)
	out := m.String()

	require.Contains(t, out, "uncompressed")   // small + uncompressed → grid
	require.Contains(t, out, "[1, 0, 3]")      // first row, zeros included
	require.Contains(t, out, "[2, 0, 0]")      // last row
	require.Equal(t, 6, strings.Count(out, "\n")) // header + five grid rows
}

func TestStringCompressedArrays(t *testing.T) {
	m := newDemo[sparse.RowMajor](t)
	m.Compress()
	out := m.String()

	require.Contains(t, out, "row-major")                    // policy labeled
	require.Contains(t, out, "row offsets: [0 2 4 6 7 8]")   // CSR offsets
	require.Contains(t, out, "column indices: [0 2 0 1 1 2 1 0]")
	require.Contains(t, out, "values: [1 3 4 5 8 6 1 2]")

	c := newDemo[sparse.ColumnMajor](t)
	c.Compress()
	out = c.String()
	require.Contains(t, out, "column-major")                  // CSC labeling
	require.Contains(t, out, "column offsets: [0 3 6 8]")     // per-column slices
	require.Contains(t, out, "row indices: [0 1 4 1 2 3 0 2]")
}

func TestStringLargeFallsBackToTriples(t *testing.T) {
	m, err := sparse.New[float64, sparse.RowMajor](100, 100) // beyond the grid threshold
	require.NoError(t, err)
	require.NoError(t, m.Set(7, 9, 3.5))

	out := m.String()
	require.Contains(t, out, "(7,9): 3.5")        // triples listing only
	require.NotContains(t, out, "[")              // no grid rendering
	require.Equal(t, 2, strings.Count(out, "\n")) // header + one triple
}
