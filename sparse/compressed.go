// SPDX-License-Identifier: MIT

// Package sparse: the compressed (CSR/CSC) representation.
// Three parallel sequences hold the matrix: offsets (one start index per
// primary-axis slice, plus a closing total), indices (the secondary-axis
// coordinate of each entry) and values. Within a slice the indices are
// strictly increasing: the compressor emits them from an ordered walk, so
// the invariant holds by construction.

package sparse

// compressedStore is the compressed representation. Invariants:
//   - len(offsets) == primaryDim+1, offsets[0] == 0, offsets non-decreasing;
//   - len(indices) == len(values) == offsets[primaryDim];
//   - indices strictly increasing within each [offsets[p], offsets[p+1]) run.
type compressedStore[T Scalar] struct {
	offsets []int // slice start positions, length primaryDim+1
	indices []int // secondary-axis coordinate per entry
	values  []T   // entry values, parallel to indices
}

// nnz returns the stored entry count.
// Complexity: O(1).
func (c *compressedStore[T]) nnz() int {
	return len(c.values)
}

// bounds returns the half-open [start, end) range of slice p in
// indices/values.
// Complexity: O(1).
func (c *compressedStore[T]) bounds(p int) (start, end int) {
	return c.offsets[p], c.offsets[p+1]
}

// find locates secondary coordinate s inside slice p with a linear scan
// between the slice's offset bounds, returning the flat entry position and
// whether it exists. Slices are short for sparse data, so a scan beats the
// constant overhead of binary search in practice.
// Complexity: O(slice length).
func (c *compressedStore[T]) find(p, s int) (int, bool) {
	start, end := c.bounds(p)
	for k := start; k < end; k++ {
		if c.indices[k] == s {
			return k, true
		}
	}

	return 0, false
}
