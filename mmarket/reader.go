// SPDX-License-Identifier: MIT

// Package mmarket - coordinate-format reader.
//
// Parsing is line-oriented: one banner line, any number of '%' comment
// lines, one size line ("rows cols nnz"), then exactly nnz entry lines
// ("row col value", 1-based). A failed read reports a sentinel to the caller
// and populates nothing: fatal to this read, not to the program.

package mmarket

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/jasmine-elga/sparsemat/sparse"
)

// Banner and qualifier tokens of the coordinate format (compared
// case-insensitively, as the format specifies).
const (
	banner = "%%matrixmarket"

	objectMatrix     = "matrix"
	formatCoordinate = "coordinate"

	fieldReal    = "real"
	fieldInteger = "integer"
	fieldPattern = "pattern"

	symGeneral   = "general"
	symSymmetric = "symmetric"

	commentMarker = "%"
	gzipSuffix    = ".gz"
)

// header carries the parsed banner qualifiers that influence entry parsing.
type header struct {
	pattern   bool // entries have no value token; value is 1
	symmetric bool // mirror off-diagonal entries
}

// Read parses Matrix Market coordinate input from r into a freshly created
// uncompressed matrix.
//
// Implementation:
//   - Stage 1: parse and validate the banner; skip comments; parse the size
//     line (rows, cols, nnz).
//   - Stage 2: create a rows×cols matrix and insert one entry per data line,
//     converting 1-based coordinates to 0-based and the real-valued
//     magnitude to the element type T.
//   - Stage 3: verify exactly nnz entry lines were present.
//
// Errors:
//   - ErrMalformedHeader, ErrUnsupportedFormat, ErrMalformedInput; read
//     failures from r are returned as-is.
//
// Complexity:
//   - Time O(nnz·log nnz), Space O(nnz).
func Read[T sparse.Scalar, O sparse.Ordering](r io.Reader) (*sparse.Matrix[T, O], error) {
	sc := bufio.NewScanner(r)

	hdr, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}
	rows, cols, nnz, err := parseSize(sc)
	if err != nil {
		return nil, err
	}

	m, err := sparse.New[T, O](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("mmarket: size line: %w", err)
	}
	seen := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if seen == nnz {
			return nil, fmt.Errorf("mmarket: entry %d exceeds declared count %d: %w", seen+1, nnz, ErrMalformedInput)
		}
		i, j, val, entryErr := parseEntry(line, hdr, rows, cols)
		if entryErr != nil {
			return nil, fmt.Errorf("mmarket: entry %d: %w", seen+1, entryErr)
		}
		if err = m.Set(i, j, sparse.FromFloat64[T](val)); err != nil {
			return nil, fmt.Errorf("mmarket: entry %d: %w", seen+1, err)
		}
		if hdr.symmetric && i != j {
			if err = m.Set(j, i, sparse.FromFloat64[T](val)); err != nil {
				return nil, fmt.Errorf("mmarket: entry %d (mirrored): %w", seen+1, err)
			}
		}
		seen++
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if seen != nnz {
		return nil, fmt.Errorf("mmarket: got %d entries, size line declared %d: %w", seen, nnz, ErrMalformedInput)
	}

	return m, nil
}

// ReadFile opens path and parses it with Read, transparently gunzipping
// paths that end in ".gz".
// Complexity: as Read, plus decompression.
func ReadFile[T sparse.Scalar, O sparse.Ordering](path string) (*sparse.Matrix[T, O], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzipSuffix) {
		gz, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return nil, fmt.Errorf("mmarket: %s: %w", path, gzErr)
		}
		defer gz.Close()
		r = gz
	}

	return Read[T, O](r)
}

// parseHeader reads the banner line and returns the qualifiers.
// The banner shape is "%%MatrixMarket object format field symmetry".
func parseHeader(sc *bufio.Scanner) (header, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return header{}, err
		}

		return header{}, fmt.Errorf("mmarket: empty input: %w", ErrMalformedHeader)
	}
	fields := strings.Fields(strings.ToLower(sc.Text()))
	if len(fields) != 5 || fields[0] != banner {
		return header{}, ErrMalformedHeader
	}
	if fields[1] != objectMatrix || fields[2] != formatCoordinate {
		return header{}, fmt.Errorf("mmarket: %s %s: %w", fields[1], fields[2], ErrUnsupportedFormat)
	}

	var hdr header
	switch fields[3] {
	case fieldReal, fieldInteger:
	case fieldPattern:
		hdr.pattern = true
	default:
		return header{}, fmt.Errorf("mmarket: field %q: %w", fields[3], ErrUnsupportedFormat)
	}
	switch fields[4] {
	case symGeneral:
	case symSymmetric:
		hdr.symmetric = true
	default:
		return header{}, fmt.Errorf("mmarket: symmetry %q: %w", fields[4], ErrUnsupportedFormat)
	}

	return hdr, nil
}

// parseSize skips comment/blank lines and parses the "rows cols nnz" line.
func parseSize(sc *bufio.Scanner) (rows, cols, nnz int, err error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return 0, 0, 0, fmt.Errorf("mmarket: size line %q: %w", line, ErrMalformedInput)
		}
		dims := make([]int, 3)
		for k, f := range fields {
			dims[k], err = strconv.Atoi(f)
			if err != nil || dims[k] < 0 {
				return 0, 0, 0, fmt.Errorf("mmarket: size line %q: %w", line, ErrMalformedInput)
			}
		}

		return dims[0], dims[1], dims[2], nil
	}
	if err = sc.Err(); err != nil {
		return 0, 0, 0, err
	}

	return 0, 0, 0, fmt.Errorf("mmarket: missing size line: %w", ErrMalformedInput)
}

// parseEntry parses one data line into 0-based coordinates and a value,
// validating against the declared dimensions.
func parseEntry(line string, hdr header, rows, cols int) (i, j int, val float64, err error) {
	fields := strings.Fields(line)
	want := 3
	if hdr.pattern {
		want = 2
	}
	if len(fields) != want {
		return 0, 0, 0, fmt.Errorf("line %q: %w", line, ErrMalformedInput)
	}

	i, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("line %q: %w", line, ErrMalformedInput)
	}
	j, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("line %q: %w", line, ErrMalformedInput)
	}
	val = 1
	if !hdr.pattern {
		val, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("line %q: %w", line, ErrMalformedInput)
		}
	}
	// Convert from the file's 1-based convention.
	i--
	j--
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return 0, 0, 0, fmt.Errorf("line %q: coordinate out of declared bounds: %w", line, ErrMalformedInput)
	}

	return i, j, val, nil
}
