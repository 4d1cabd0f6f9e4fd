// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse-matrix container with two
// interchangeable internal representations:
//
//   - An ordered coordinate map (COO) for flexible construction and random
//     mutation. Keys are (row, column) pairs ordered by the storage policy,
//     values are the non-zero elements. Absence means zero; explicit zeros
//     are never stored.
//   - A compressed layout (CSR under RowMajor, CSC under ColumnMajor) built
//     from three parallel arrays: per-slice offsets, secondary-axis indices
//     and values. Optimized for traversal and arithmetic; forbids insertion
//     of new non-zero entries.
//
// A Matrix owns exactly one live representation at a time and converts
// between them losslessly via Compress and Uncompress. Element type and
// storage ordering are compile-time parameters:
//
//	m, err := sparse.New[float64, sparse.RowMajor](5, 3)
//	_ = m.Set(0, 0, 1)
//	m.Compress()
//	res, err := sparse.MulVec(m, []float64{1, 2, 3})
//
// The package provides order-aware element access, matrix-vector and
// matrix-(single-column-matrix) multiplication, and the One, Infinity and
// Frobenius norms, each computed over element magnitudes (modulus for
// complex element types).
//
// All user-triggered error conditions are reported through package-level
// sentinel errors (see errors.go) matched via errors.Is; the package never
// panics on user input and performs no logging.
package sparse
