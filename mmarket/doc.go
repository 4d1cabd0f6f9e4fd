// SPDX-License-Identifier: MIT

// Package mmarket imports sparse matrices from Matrix Market coordinate
// files (the NIST "%%MatrixMarket" plain-text format).
//
// The package's whole contract with the core is to supply a set of
// (row, column, value) triples: a successful Read yields an uncompressed
// sparse.Matrix populated with one entry per data line, coordinates
// converted from the file's 1-based convention to 0-based.
//
// Supported header shapes: object "matrix", format "coordinate", field
// "real", "integer" or "pattern" (pattern entries get value 1), symmetry
// "general" or "symmetric" (symmetric input mirrors off-diagonal entries).
// ReadFile transparently gunzips paths ending in ".gz", the form sparse
// matrix corpora are usually distributed in.
package mmarket
