// SPDX-License-Identifier: MIT

// Package sparse - the Matrix engine.
//
// Purpose:
//   - Tie the coordinate and compressed stores together under one type with
//     exactly one live representation at a time (tagged by store pointers:
//     precisely one of coord/comp is non-nil).
//   - Guarantee safety at the public surface: accessors return sentinel
//     errors instead of panicking, mutation rules of the compressed layout
//     are enforced, conversions are lossless in both directions.
//
// Complexity quicksheet:
//   - At/Set: O(log nnz) uncompressed, O(slice) compressed; Compress:
//     O(nnz + primaryDim); Uncompress: O(nnz·log nnz); Norm/MulVec: O(nnz).

package sparse

// Matrix is a sparse matrix with element type T and storage ordering O.
// The zero value is not usable; construct with New. A Matrix owns its stores
// outright and is not safe for concurrent mutation; concurrent reads are
// safe while no writer is active.
type Matrix[T Scalar, O Ordering] struct {
	rows, cols int
	ord        O                   // zero-size ordering policy instance
	coord      *coordStore[T]      // live while uncompressed, nil otherwise
	comp       *compressedStore[T] // live while compressed, nil otherwise
}

// New creates a rows×cols matrix in uncompressed form.
//
// Implementation:
//   - Stage 1: validate rows ≥ 0 and cols ≥ 0; else ErrInvalidDimensions.
//   - Stage 2: allocate an empty ordered coordinate store.
//
// Behavior highlights:
//   - A 0×0 matrix is legal and grows on demand through Set or Resize.
//
// Errors:
//   - ErrInvalidDimensions on negative extents.
//
// Complexity:
//   - Time O(1), Space O(1).
func New[T Scalar, O Ordering](rows, cols int) (*Matrix[T, O], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}

	return &Matrix[T, O]{
		rows:  rows,
		cols:  cols,
		coord: newCoordStore[T](),
	}, nil
}

// Rows returns the declared row count.
// Complexity: O(1).
func (m *Matrix[T, O]) Rows() int { return m.rows }

// Cols returns the declared column count.
// Complexity: O(1).
func (m *Matrix[T, O]) Cols() int { return m.cols }

// IsCompressed reports whether the compressed representation is active.
// Complexity: O(1).
func (m *Matrix[T, O]) IsCompressed() bool { return m.comp != nil }

// NNZ returns the number of stored non-zero entries.
// Complexity: O(1).
func (m *Matrix[T, O]) NNZ() int {
	if m.IsCompressed() {
		return m.comp.nnz()
	}

	return m.coord.size()
}

// At returns the element at (i, j) without mutating the matrix.
//
// Implementation:
//   - Stage 1: bounds check against the declared dimensions.
//   - Stage 2: point lookup in the active store; absent-but-in-range
//     coordinates yield the zero value with a nil error.
//
// Behavior highlights:
//   - "Structurally absent" and "out of bounds" are distinct: only the
//     latter is an error.
//
// Errors:
//   - ErrOutOfRange when (i, j) lies outside the declared dimensions.
//
// Complexity:
//   - Time O(log nnz) uncompressed, O(slice length) compressed.
func (m *Matrix[T, O]) At(i, j int) (T, error) {
	var zero T
	if err := validateInBounds(i, j, m.rows, m.cols); err != nil {
		return zero, coordErrorf(opAt, i, j, err)
	}

	p, s := m.ord.toStorage(i, j)
	if m.IsCompressed() {
		if k, ok := m.comp.find(p, s); ok {
			return m.comp.values[k], nil
		}

		return zero, nil
	}
	if v, ok := m.coord.get(storageKey{p: p, s: s}); ok {
		return v, nil
	}

	return zero, nil
}

// Set assigns v to the element at (i, j). This is the mutable access form.
//
// Implementation:
//   - Stage 1 (uncompressed): grow the declared dimensions to cover (i, j)
//     when needed (growing never shrinks and never drops entries), then
//     store v, or delete the entry when v is the zero value (the coordinate
//     store holds no explicit zeros).
//   - Stage 2 (compressed): reject out-of-bounds coordinates, then locate
//     the slot with a slice scan; overwrite in place when present, fail when
//     absent: compressed form never creates new non-zero entries.
//
// Behavior highlights:
//   - Creation-on-access is the point of the uncompressed form; the
//     compressed form is structurally fixed.
//
// Errors:
//   - ErrOutOfRange on negative indices, on out-of-bounds coordinates in
//     compressed form, and on structurally absent coordinates in compressed
//     form.
//
// Complexity:
//   - Time O(log nnz) uncompressed, O(slice length) compressed.
func (m *Matrix[T, O]) Set(i, j int, v T) error {
	if i < 0 || j < 0 {
		return coordErrorf(opSet, i, j, ErrOutOfRange)
	}

	var zero T
	p, s := m.ord.toStorage(i, j)
	if m.IsCompressed() {
		if err := validateInBounds(i, j, m.rows, m.cols); err != nil {
			return coordErrorf(opSet, i, j, err)
		}
		k, ok := m.comp.find(p, s)
		if !ok {
			// The slot does not exist; inserting would require re-packing
			// all three arrays, which the compressed contract forbids.
			return coordErrorf(opSet, i, j, ErrOutOfRange)
		}
		m.comp.values[k] = v

		return nil
	}

	// Uncompressed: grow to include (i, j) if it lies outside the current
	// bounds. New dimensions are max(existing, index+1) along each axis.
	if i >= m.rows {
		m.rows = i + 1
	}
	if j >= m.cols {
		m.cols = j + 1
	}
	if v == zero {
		m.coord.remove(storageKey{p: p, s: s})

		return nil
	}
	m.coord.put(storageKey{p: p, s: s}, v)

	return nil
}

// Compress migrates the matrix into the compressed representation.
//
// Implementation:
//   - Stage 1: no-op when already compressed.
//   - Stage 2: one ordered walk over the coordinate store. Whenever the
//     primary coordinate advances, the running entry count is recorded as
//     the offset of every slice in between (empty slices included); each
//     entry appends its secondary coordinate and value.
//   - Stage 3: close the offsets with the final total, discard the
//     coordinate store and activate the compressed store.
//
// Behavior highlights:
//   - The store's ordering guarantees ascending secondary coordinates within
//     each slice, so the strict-increase invariant holds by construction.
//   - Idempotent: compressing twice is the same as compressing once.
//
// Complexity:
//   - Time O(nnz + primaryDim), Space O(nnz + primaryDim).
func (m *Matrix[T, O]) Compress() {
	if m.IsCompressed() {
		return
	}

	pd := m.ord.primaryDim(m.rows, m.cols)
	nnz := m.coord.size()
	comp := &compressedStore[T]{
		offsets: make([]int, pd+1),
		indices: make([]int, 0, nnz),
		values:  make([]T, 0, nnz),
	}

	count := 0 // running non-zero total, becomes the next offsets entries
	cur := 0   // primary slice currently being emitted
	m.coord.each(func(k storageKey, v T) bool {
		for cur < k.p { // close every slice up to the entry's primary index
			cur++
			comp.offsets[cur] = count
		}
		comp.indices = append(comp.indices, k.s)
		comp.values = append(comp.values, v)
		count++

		return true
	})
	for cur < pd { // close trailing empty slices and the final total
		cur++
		comp.offsets[cur] = count
	}

	m.comp = comp
	m.coord = nil
}

// Uncompress migrates the matrix back into the coordinate representation.
//
// Implementation:
//   - Stage 1: no-op when already uncompressed.
//   - Stage 2: walk every primary slice and insert (primary, secondary) →
//     value into a fresh ordered coordinate store.
//   - Stage 3: discard the compressed arrays and activate the map.
//
// Behavior highlights:
//   - Round-trip law: Uncompress(Compress(M)) is pointwise identical to M
//     under At for every in-range coordinate; the rebuilt iteration order is
//     determined solely by the ordering policy.
//   - Idempotent.
//
// Complexity:
//   - Time O(nnz·log nnz), Space O(nnz).
func (m *Matrix[T, O]) Uncompress() {
	if !m.IsCompressed() {
		return
	}

	coord := newCoordStore[T]()
	pd := m.ord.primaryDim(m.rows, m.cols)
	for p := 0; p < pd; p++ {
		start, end := m.comp.bounds(p)
		for k := start; k < end; k++ {
			coord.put(storageKey{p: p, s: m.comp.indices[k]}, m.comp.values[k])
		}
	}

	m.coord = coord
	m.comp = nil
}

// Resize sets the declared dimensions. Legal only in uncompressed form.
//
// Implementation:
//   - Stage 1: reject the call in compressed form (dimensions are fixed once
//     compressed; Uncompress first) and validate the new shape.
//   - Stage 2: when shrinking, prune every entry that falls out of range so
//     the in-bounds invariant of the coordinate store stays unconditional;
//     orphaned values are not resurrected by a later regrow.
//
// Errors:
//   - ErrCompressed in compressed form; ErrInvalidDimensions on negatives.
//
// Complexity:
//   - Time O(nnz·log nnz) worst case when pruning, O(1) when growing.
func (m *Matrix[T, O]) Resize(rows, cols int) error {
	if m.IsCompressed() {
		return opErrorf(opResize, ErrCompressed)
	}
	if err := validateShape(rows, cols); err != nil {
		return opErrorf(opResize, err)
	}

	shrinking := rows < m.rows || cols < m.cols
	m.rows, m.cols = rows, cols
	if !shrinking {
		return nil
	}
	for _, k := range m.coord.keys() {
		i, j := m.ord.fromStorage(k.p, k.s)
		if i >= rows || j >= cols {
			m.coord.remove(k)
		}
	}

	return nil
}

// Entries visits every stored non-zero entry as (row, column, value) in the
// policy order of the active representation. The walk stops early when fn
// returns false. This is the read-only capability surface the free operators
// and norms are built on.
// Complexity: O(nnz).
func (m *Matrix[T, O]) Entries(fn func(i, j int, v T) bool) {
	if m.IsCompressed() {
		pd := m.ord.primaryDim(m.rows, m.cols)
		for p := 0; p < pd; p++ {
			start, end := m.comp.bounds(p)
			for k := start; k < end; k++ {
				i, j := m.ord.fromStorage(p, m.comp.indices[k])
				if !fn(i, j, m.comp.values[k]) {
					return
				}
			}
		}

		return
	}
	m.coord.each(func(k storageKey, v T) bool {
		i, j := m.ord.fromStorage(k.p, k.s)

		return fn(i, j, v)
	})
}

// NonZeros materializes the stored entries as a slice of triples in policy
// order. Diagnostic/export convenience over Entries.
// Complexity: O(nnz) time and space.
func (m *Matrix[T, O]) NonZeros() []Entry[T] {
	out := make([]Entry[T], 0, m.NNZ())
	m.Entries(func(i, j int, v T) bool {
		out = append(out, Entry[T]{Row: i, Col: j, Val: v})

		return true
	})

	return out
}

// Clone returns a deep copy preserving dimensions, representation and
// entries. The copy is fully independent of the original.
// Complexity: O(nnz·log nnz) uncompressed, O(nnz) compressed.
func (m *Matrix[T, O]) Clone() *Matrix[T, O] {
	out := &Matrix[T, O]{rows: m.rows, cols: m.cols}
	if m.IsCompressed() {
		out.comp = &compressedStore[T]{
			offsets: append([]int(nil), m.comp.offsets...),
			indices: append([]int(nil), m.comp.indices...),
			values:  append([]T(nil), m.comp.values...),
		}

		return out
	}
	out.coord = newCoordStore[T]()
	m.coord.each(func(k storageKey, v T) bool {
		out.coord.put(k, v)

		return true
	})

	return out
}
