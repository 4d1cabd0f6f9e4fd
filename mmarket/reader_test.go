// SPDX-License-Identifier: MIT

// Package mmarket_test verifies Matrix Market parsing: the happy path must
// reproduce exactly the declared entries with 0-based coordinates, and every
// malformed shape must report a sentinel without populating anything.
package mmarket_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/jasmine-elga/sparsemat/mmarket"
	"github.com/jasmine-elga/sparsemat/sparse"
)

// demoFile is the 5×3 demo matrix in coordinate form, 1-based.
const demoFile = `%%MatrixMarket matrix coordinate real general
% demo matrix
5 3 8
1 1 1.0
1 3 3.0
2 1 4.0
2 2 5.0
3 2 8.0
3 3 6.0
4 2 1.0
5 1 2.0
`

func TestReadDemoFile(t *testing.T) {
	m, err := mmarket.Read[float64, sparse.RowMajor](strings.NewReader(demoFile))
	require.NoError(t, err)

	require.False(t, m.IsCompressed()) // populated in uncompressed form
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 8, m.NNZ()) // exactly the 8 declared entries, no others

	// 0-based coordinates are one less than the file's 1-based values.
	want := map[[2]int]float64{
		{0, 0}: 1, {0, 2}: 3, {1, 0}: 4, {1, 1}: 5,
		{2, 1}: 8, {2, 2}: 6, {3, 1}: 1, {4, 0}: 2,
	}
	for k, v := range want {
		got, atErr := m.At(k[0], k[1])
		require.NoError(t, atErr)
		require.Equal(t, v, got)
	}

	res, err := sparse.MulVec(m, []float64{1, 2, 3}) // imported data is usable directly
	require.NoError(t, err)
	require.Equal(t, []float64{10, 14, 34, 2, 2}, res)
}

func TestReadMalformedHeader(t *testing.T) {
	cases := map[string]string{
		"empty input":     "",
		"missing banner":  "5 3 8\n1 1 1.0\n",
		"truncated":       "%%MatrixMarket matrix coordinate\n",
		"not matrixmkt":   "%%SomethingElse matrix coordinate real general\n5 3 8\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mmarket.Read[float64, sparse.RowMajor](strings.NewReader(input))
			require.ErrorIs(t, err, mmarket.ErrMalformedHeader)
		})
	}
}

func TestReadUnsupportedFormat(t *testing.T) {
	cases := map[string]string{
		"array format":  "%%MatrixMarket matrix array real general\n",
		"complex field": "%%MatrixMarket matrix coordinate complex general\n",
		"skew symmetry": "%%MatrixMarket matrix coordinate real skew-symmetric\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mmarket.Read[float64, sparse.RowMajor](strings.NewReader(input))
			require.ErrorIs(t, err, mmarket.ErrUnsupportedFormat)
		})
	}
}

func TestReadMalformedInput(t *testing.T) {
	cases := map[string]string{
		"bad size line":    "%%MatrixMarket matrix coordinate real general\n5 3\n",
		"missing size":     "%%MatrixMarket matrix coordinate real general\n% only comments\n",
		"negative size":    "%%MatrixMarket matrix coordinate real general\n-1 3 0\n",
		"too few entries":  "%%MatrixMarket matrix coordinate real general\n5 3 2\n1 1 1.0\n",
		"too many entries": "%%MatrixMarket matrix coordinate real general\n1 1 1\n1 1 1.0\n1 1 2.0\n",
		"bad value":        "%%MatrixMarket matrix coordinate real general\n5 3 1\n1 1 abc\n",
		"out of bounds":    "%%MatrixMarket matrix coordinate real general\n5 3 1\n6 1 1.0\n",
		"zero coordinate":  "%%MatrixMarket matrix coordinate real general\n5 3 1\n0 1 1.0\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mmarket.Read[float64, sparse.RowMajor](strings.NewReader(input))
			require.ErrorIs(t, err, mmarket.ErrMalformedInput)
		})
	}
}

func TestReadPattern(t *testing.T) {
	const input = "%%MatrixMarket matrix coordinate pattern general\n2 2 2\n1 1\n2 2\n"
	m, err := mmarket.Read[float64, sparse.ColumnMajor](strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 2, m.NNZ())
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // pattern entries carry unit value
}

func TestReadSymmetric(t *testing.T) {
	const input = "%%MatrixMarket matrix coordinate real symmetric\n3 3 2\n2 1 5.0\n3 3 7.0\n"
	m, err := mmarket.Read[float64, sparse.RowMajor](strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, m.NNZ()) // off-diagonal entry mirrored, diagonal not
	upper, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 5.0, upper) // mirror of the stored lower triangle
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.mtx.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(demoFile))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	m, err := mmarket.ReadFile[float64, sparse.RowMajor](path) // transparent gunzip
	require.NoError(t, err)
	require.Equal(t, 8, m.NNZ())
}

func TestReadFileMissing(t *testing.T) {
	_, err := mmarket.ReadFile[float64, sparse.RowMajor](filepath.Join(t.TempDir(), "absent.mtx"))
	require.Error(t, err) // surfaced to the caller untouched
}

func TestReadIntegerFieldAndComplexTarget(t *testing.T) {
	const input = "%%MatrixMarket matrix coordinate integer general\n2 2 1\n1 2 3\n"
	m, err := mmarket.Read[complex128, sparse.RowMajor](strings.NewReader(input))
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, complex(3, 0), v) // real magnitude lands in the real part
}
