// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/jasmine-elga/sparsemat/sparse"
)

// ExampleMulVec builds a small row-major matrix, compresses it and computes
// the matrix-vector product in both representations.
func ExampleMulVec() {
	m, _ := sparse.New[float64, sparse.RowMajor](5, 3)
	for _, e := range []sparse.Entry[float64]{
		{Row: 0, Col: 0, Val: 1}, {Row: 0, Col: 2, Val: 3},
		{Row: 1, Col: 0, Val: 4}, {Row: 1, Col: 1, Val: 5},
		{Row: 2, Col: 1, Val: 8}, {Row: 2, Col: 2, Val: 6},
		{Row: 3, Col: 1, Val: 1}, {Row: 4, Col: 0, Val: 2},
	} {
		_ = m.Set(e.Row, e.Col, e.Val)
	}
	v := []float64{1, 2, 3}

	before, _ := sparse.MulVec(m, v)
	m.Compress()
	after, _ := sparse.MulVec(m, v)

	fmt.Println(before)
	fmt.Println(after)
	// Output:
	// [10 14 34 2 2]
	// [10 14 34 2 2]
}

// ExampleMatrix_Norm computes the three norms of a matrix whose entry
// magnitudes form a 3-4-5 right triangle.
func ExampleMatrix_Norm() {
	m, _ := sparse.New[float64, sparse.ColumnMajor](2, 2)
	_ = m.Set(0, 0, 3)
	_ = m.Set(1, 1, -4)

	for _, kind := range []sparse.NormKind{sparse.NormOne, sparse.NormInf, sparse.NormFrobenius} {
		val, _ := m.Norm(kind)
		fmt.Printf("%s: %g\n", kind, val)
	}
	// Output:
	// One: 4
	// Infinity: 4
	// Frobenius: 5
}
