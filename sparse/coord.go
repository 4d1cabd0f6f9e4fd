// SPDX-License-Identifier: MIT

// Package sparse: the uncompressed (coordinate map) representation.
// An ordered associative container maps (primary, secondary) keys to values.
// Coordinates are converted to storage order at the boundary (Matrix does the
// toStorage/fromStorage translation), so the key comparator is a plain
// lexicographic order and map iteration is exactly the policy order the
// compressor relies on.

package sparse

import (
	"github.com/emirpasic/gods/v2/maps/treemap"
)

// storageKey is a coordinate already translated to (primary, secondary) form.
type storageKey struct {
	p int // primary-axis index
	s int // secondary-axis index
}

// compareKeys is the total order over storage keys: primary first, then
// secondary. Together with the boundary translation this realizes row-major
// or column-major ordering without a policy-dependent comparator.
// Complexity: O(1).
func compareKeys(a, b storageKey) int {
	switch {
	case a.p != b.p && a.p < b.p:
		return -1
	case a.p != b.p:
		return 1
	case a.s < b.s:
		return -1
	case a.s > b.s:
		return 1
	default:
		return 0
	}
}

// coordStore is the uncompressed representation: a red-black tree map with
// O(log n) point access and ordered iteration. No explicit zero is ever
// stored (callers delete instead of storing zeros); every key is within the
// owning matrix's declared bounds.
type coordStore[T Scalar] struct {
	m *treemap.Map[storageKey, T]
}

// newCoordStore returns an empty ordered coordinate store.
// Complexity: O(1).
func newCoordStore[T Scalar]() *coordStore[T] {
	return &coordStore[T]{m: treemap.NewWith[storageKey, T](compareKeys)}
}

// get returns the value stored at k and whether it is present.
// Complexity: O(log n).
func (c *coordStore[T]) get(k storageKey) (T, bool) {
	return c.m.Get(k)
}

// put stores v at k, overwriting any previous value.
// Complexity: O(log n).
func (c *coordStore[T]) put(k storageKey, v T) {
	c.m.Put(k, v)
}

// remove deletes the entry at k if present.
// Complexity: O(log n).
func (c *coordStore[T]) remove(k storageKey) {
	c.m.Remove(k)
}

// size returns the number of stored entries.
// Complexity: O(1).
func (c *coordStore[T]) size() int {
	return c.m.Size()
}

// each visits every entry in ascending key order (the policy order). The
// visit stops early when fn returns false.
// Complexity: O(n) full walk.
func (c *coordStore[T]) each(fn func(k storageKey, v T) bool) {
	it := c.m.Iterator()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// keys returns every key in ascending order. Used by Resize to prune without
// mutating the map mid-iteration.
// Complexity: O(n) time and space.
func (c *coordStore[T]) keys() []storageKey {
	return c.m.Keys()
}
