// SPDX-License-Identifier: MIT

// Package sparse: central validation helpers and error wrapping.
// Purpose:
//   - Provide a single source of truth for the shape/bounds checks shared by
//     accessors, operators and norms.
//   - Keep kernels minimal: they delegate guard logic here and wrap the
//     returned sentinel with an operation tag.
//
// All checks are pure, deterministic and allocation-free.

package sparse

import "fmt"

// Operation tags for unified error wrapping (no magic strings at call sites).
const (
	opNew    = "New"
	opAt     = "At"
	opSet    = "Set"
	opResize = "Resize"
	opNorm   = "Norm"
	opMulVec = "MulVec"
	opMulMat = "MulMat"
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w so
// callers still match with errors.Is. Call only with a non-nil err.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("sparse.%s: %w", tag, err)
}

// coordErrorf wraps err with an operation tag and the offending coordinates
// for precise diagnostics.
// Complexity: O(1).
func coordErrorf(tag string, i, j int, err error) error {
	return fmt.Errorf("sparse.%s(%d,%d): %w", tag, i, j, err)
}

// validateShape ensures a requested shape is non-negative. Zero extents are
// legal: a 0×0 matrix is grown later via Set or Resize.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateInBounds ensures 0 ≤ i < rows and 0 ≤ j < cols.
// Complexity: O(1).
func validateInBounds(i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// ValidateVecLen ensures the operand vector has exactly length n. A nil
// vector of the right length (n == 0) is accepted; any other mismatch is a
// dimension error. Use for every MatVec-like operation instead of ad hoc
// length checks.
// Complexity: O(1).
func ValidateVecLen[T Scalar](x []T, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
