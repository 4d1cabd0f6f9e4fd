// SPDX-License-Identifier: MIT

// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All operations return these sentinels and tests check them via
// errors.Is. Context is added at the detection site with opErrorf; the
// sentinels themselves are never re-created.

package sparse

import "errors"

// Every message carries the "sparse: ..." prefix for consistent grepping
// across logs.
var (
	// ErrInvalidDimensions is returned when a requested shape is negative.
	// Zero dimensions are legal: a 0×0 matrix may be grown via Set or Resize.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be non-negative")

	// ErrOutOfRange indicates a coordinate outside the declared dimensions,
	// or an attempt to create a new non-zero entry while the matrix is in
	// compressed form (the compressed layout is structurally fixed).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates an operand incompatible with the left
	// matrix: a vector whose length differs from Cols(), or a right-hand
	// matrix operand that is not single-column.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrCompressed is returned by operations that are only legal in
	// uncompressed form (Resize). Call Uncompress first.
	ErrCompressed = errors.New("sparse: operation requires uncompressed form")

	// ErrUnknownNorm is returned by Norm for an unrecognized NormKind.
	ErrUnknownNorm = errors.New("sparse: unknown norm kind")
)
