// SPDX-License-Identifier: MIT

// Package mmarket: sentinel error set. Matched via errors.Is; context is
// added at the detection site with line numbers where available.

package mmarket

import "errors"

var (
	// ErrMalformedHeader indicates a missing or unrecognizable
	// "%%MatrixMarket ..." banner line.
	ErrMalformedHeader = errors.New("mmarket: malformed header line")

	// ErrUnsupportedFormat indicates a well-formed banner requesting a
	// format this reader does not handle (dense "array" files, complex or
	// hermitian fields, skew-symmetric input).
	ErrUnsupportedFormat = errors.New("mmarket: unsupported matrix market format")

	// ErrMalformedInput indicates a bad size line, a bad or out-of-bounds
	// entry line, or an entry count that contradicts the size line.
	ErrMalformedInput = errors.New("mmarket: malformed input")
)
