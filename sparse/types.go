// SPDX-License-Identifier: MIT

// Package sparse: element-type capability constraints and domain types.
// This file gates which scalar types may instantiate Matrix and centralizes
// the magnitude/conversion helpers that the norm and multiplication kernels
// rely on. Ordering policy types live in ordering.go; errors in errors.go.

package sparse

import (
	"math"
	"math/cmplx"
)

// Real is the set of arithmetic numeric element types.
type Real interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Complex is the set of complex element types, exposing real and imaginary
// components.
type Complex interface {
	complex64 | complex128
}

// Scalar is the full capability set for matrix elements: any arithmetic
// numeric type or any complex type. The constraint is enforced at compile
// time; no run-time capability checks exist anywhere in the package.
type Scalar interface {
	Real | Complex
}

// NormKind selects the norm computed by Matrix.Norm.
type NormKind int

// Supported norm kinds.
const (
	// NormOne is the maximum absolute column sum.
	NormOne NormKind = iota
	// NormInf is the maximum absolute row sum.
	NormInf
	// NormFrobenius is the square root of the sum of squared magnitudes.
	NormFrobenius
)

// normKindNames maps NormKind values to stable display names.
var normKindNames = [...]string{"One", "Infinity", "Frobenius"}

// String returns the stable display name of the norm kind.
// Complexity: O(1).
func (k NormKind) String() string {
	if k < NormOne || k > NormFrobenius {
		return "Unknown"
	}

	return normKindNames[k]
}

// Entry is a single non-zero element as a (row, column, value) triple.
// Rows and columns are zero-based.
type Entry[T Scalar] struct {
	Row, Col int
	Val      T
}

// magnitude returns |v| as a float64: absolute value for real element types,
// modulus for complex ones. Norm kernels compare and accumulate magnitudes
// only: complex values have no natural total order.
//
// Implementation:
//   - Stage 1: widen v through a type switch on the concrete element type.
//   - Stage 2: apply math.Abs or cmplx.Abs accordingly.
//
// Complexity:
//   - Time O(1), Space O(1).
func magnitude[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case int:
		return math.Abs(float64(x))
	case int8:
		return math.Abs(float64(x))
	case int16:
		return math.Abs(float64(x))
	case int32:
		return math.Abs(float64(x))
	case int64:
		return math.Abs(float64(x))
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		// Unreachable: the Scalar type set is closed over the cases above.
		return 0
	}
}

// FromFloat64 converts a real-valued magnitude into the element type T.
// Complex element types receive f as their real component. Used by importers
// whose wire format carries real values (Matrix Market coordinate real).
//
// Complexity:
//   - Time O(1), Space O(1).
func FromFloat64[T Scalar](f float64) T {
	var zero T
	var v any
	switch any(zero).(type) {
	case int:
		v = int(f)
	case int8:
		v = int8(f)
	case int16:
		v = int16(f)
	case int32:
		v = int32(f)
	case int64:
		v = int64(f)
	case uint:
		v = uint(f)
	case uint8:
		v = uint8(f)
	case uint16:
		v = uint16(f)
	case uint32:
		v = uint32(f)
	case uint64:
		v = uint64(f)
	case float32:
		v = float32(f)
	case float64:
		v = f
	case complex64:
		v = complex64(complex(f, 0))
	case complex128:
		v = complex(f, 0)
	default:
		return zero
	}

	return v.(T)
}
