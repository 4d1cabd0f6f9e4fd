// SPDX-License-Identifier: MIT

// Package sparse - free multiplication operators.
//
// Purpose:
//   - MulVec: matrix × vector for both representations and both orderings.
//   - MulMat: matrix × single-column matrix, materializing the column and
//     reusing the MulVec path.
//
// Both operators consume the matrix through its read-only surface (Entries
// plus the compressed slice bounds); they never mutate an operand. The
// result length is ALWAYS the left operand's row count, never the operand
// dimension, in every storage/order combination.

package sparse

// MulVec computes m·v and returns a freshly allocated result vector.
//
// Implementation:
//   - Stage 1: validate len(v) == m.Cols(); else ErrDimensionMismatch.
//   - Stage 2 (uncompressed): one pass over the stored entries accumulating
//     res[i] += val·v[j]; the accumulation order is the store's fixed policy
//     order, so results are reproducible.
//   - Stage 2 (compressed, row-primary): per-row slice dot product.
//   - Stage 2 (compressed, column-primary): per-column scaled accumulation;
//     the result index is the secondary coordinate, not the slice index.
//
// Behavior highlights:
//   - The result has length m.Rows() and every slot starts at zero.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != m.Cols().
//
// Complexity:
//   - Time O(nnz), Space O(rows).
func MulVec[T Scalar, O Ordering](m *Matrix[T, O], v []T) ([]T, error) {
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, opErrorf(opMulVec, err)
	}

	res := make([]T, m.Rows())
	if !m.IsCompressed() {
		m.Entries(func(i, j int, val T) bool {
			res[i] += val * v[j]

			return true
		})

		return res, nil
	}

	pd := m.ord.primaryDim(m.rows, m.cols)
	if m.ord.rowsPrimary() {
		// CSR: classic sparse row-dot-product.
		for i := 0; i < pd; i++ {
			start, end := m.comp.bounds(i)
			for k := start; k < end; k++ {
				res[i] += m.comp.values[k] * v[m.comp.indices[k]]
			}
		}

		return res, nil
	}
	// CSC: classic scaled-column accumulation.
	for j := 0; j < pd; j++ {
		start, end := m.comp.bounds(j)
		for k := start; k < end; k++ {
			res[m.comp.indices[k]] += m.comp.values[k] * v[j]
		}
	}

	return res, nil
}

// MulMat computes m·b where b is a single-column matrix, returning a result
// vector of length m.Rows(). The shared ordering parameter O makes mixing
// row-major and column-major operands a compile-time error.
//
// Implementation:
//   - Stage 1: validate b.Cols() == 1; else ErrDimensionMismatch.
//   - Stage 2: materialize b's column into a plain vector by structural
//     position: rows of b with no stored entry contribute zero.
//   - Stage 3: reuse the MulVec path (which validates b.Rows() == m.Cols()).
//
// Errors:
//   - ErrDimensionMismatch when b is not single-column or b.Rows() differs
//     from m.Cols().
//
// Complexity:
//   - Time O(nnz(m) + nnz(b)), Space O(rows(m) + rows(b)).
func MulMat[T Scalar, O Ordering](m, b *Matrix[T, O]) ([]T, error) {
	if b.Cols() != 1 {
		return nil, opErrorf(opMulMat, ErrDimensionMismatch)
	}

	col := make([]T, b.Rows())
	b.Entries(func(i, _ int, v T) bool {
		col[i] = v

		return true
	})

	res, err := MulVec(m, col)
	if err != nil {
		return nil, opErrorf(opMulMat, err)
	}

	return res, nil
}
