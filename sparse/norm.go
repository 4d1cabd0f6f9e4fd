// SPDX-License-Identifier: MIT

// Package sparse - norm computation.
//
// Purpose:
//   - One-norm (max absolute column sum), Infinity-norm (max absolute row
//     sum) and Frobenius norm over the stored entries.
//
// Every kernel works on element magnitudes (modulus for complex element
// types): complex values admit no natural total order, so comparisons never
// touch the raw values. Which algorithm runs depends on the storage state
// and on whether the target axis is the primary one under the ordering
// policy.

package sparse

import "math"

// Norm computes the requested norm of the matrix as a float64 magnitude.
//
// Implementation:
//   - Frobenius: sqrt of the sum of squared magnitudes over all stored
//     entries; identical in every layout/ordering combination.
//   - One: maximum per-column magnitude sum (see maxAxisSum).
//   - Infinity: maximum per-row magnitude sum, symmetric to One with the
//     axes swapped.
//
// Behavior highlights:
//   - An empty matrix has norm 0 for every kind.
//
// Errors:
//   - ErrUnknownNorm for an unrecognized kind.
//
// Complexity:
//   - Time O(nnz) (plus O(secondaryDim) scratch for the accumulator path),
//     Space O(1) or O(secondaryDim) depending on the path taken.
func (m *Matrix[T, O]) Norm(kind NormKind) (float64, error) {
	switch kind {
	case NormFrobenius:
		var sum float64
		m.Entries(func(_, _ int, v T) bool {
			mag := magnitude(v)
			sum += mag * mag

			return true
		})

		return math.Sqrt(sum), nil
	case NormOne:
		return m.maxAxisSum(false), nil
	case NormInf:
		return m.maxAxisSum(true), nil
	default:
		return 0, opErrorf(opNorm, ErrUnknownNorm)
	}
}

// maxAxisSum returns the maximum magnitude sum over the target axis (rows
// when overRows is true, columns otherwise).
//
// Two paths exist:
//   - Target axis primary: entries arrive grouped by the target index (slice
//     by slice when compressed, key-ordered when not), so a running group
//     sum suffices: no scratch array.
//   - Target axis secondary: no grouped traversal is available, so the sums
//     accumulate into a scratch array sized by the axis extent and the
//     maximum is taken at the end.
//
// Complexity: O(nnz) time; O(1) or O(axis extent) space as described.
func (m *Matrix[T, O]) maxAxisSum(overRows bool) float64 {
	if m.ord.rowsPrimary() == overRows {
		// Grouped traversal: close the running sum whenever the primary
		// index advances.
		var best, run float64
		cur := -1
		m.Entries(func(i, j int, v T) bool {
			p, _ := m.ord.toStorage(i, j)
			if p != cur {
				best = math.Max(best, run)
				run = 0
				cur = p
			}
			run += magnitude(v)

			return true
		})

		return math.Max(best, run)
	}

	// Scatter path: the target axis is the secondary one.
	extent := m.cols
	if overRows {
		extent = m.rows
	}
	acc := make([]float64, extent)
	m.Entries(func(i, j int, v T) bool {
		t := j
		if overRows {
			t = i
		}
		acc[t] += magnitude(v)

		return true
	})
	var best float64
	for _, s := range acc {
		best = math.Max(best, s)
	}

	return best
}
