// SPDX-License-Identifier: MIT

// Package sparse: compile-time storage ordering policy.
// The policy decides which axis is "primary": the axis whose index selects an
// offset slice in compressed form and leads the comparison in the coordinate
// map. RowMajor yields CSR-style storage, ColumnMajor yields CSC-style
// storage. The choice is a type parameter, so there is no run-time flag to
// keep consistent and no mixed-ordering operand can ever reach an operator.

package sparse

// RowMajor orders coordinates primarily by row, then by column. Under this
// policy the compressed store is a classic CSR layout: one offset slice per
// row, column indices stored per entry.
type RowMajor struct{}

// ColumnMajor orders coordinates primarily by column, then by row. Under
// this policy the compressed store is a classic CSC layout: one offset slice
// per column, row indices stored per entry.
type ColumnMajor struct{}

// Ordering is the constraint satisfied by exactly RowMajor and ColumnMajor.
// The unexported methods keep the policy set closed: no external type can
// introduce a third ordering with inconsistent axis bookkeeping.
type Ordering interface {
	RowMajor | ColumnMajor

	// toStorage maps a (row, column) coordinate to (primary, secondary).
	toStorage(i, j int) (p, s int)
	// fromStorage is the inverse of toStorage.
	fromStorage(p, s int) (i, j int)
	// primaryDim selects the primary-axis extent from (rows, cols).
	primaryDim(rows, cols int) int
	// secondaryDim selects the secondary-axis extent from (rows, cols).
	secondaryDim(rows, cols int) int
	// rowsPrimary reports whether rows are the primary axis.
	rowsPrimary() bool
}

func (RowMajor) toStorage(i, j int) (int, int)   { return i, j }
func (RowMajor) fromStorage(p, s int) (int, int) { return p, s }
func (RowMajor) primaryDim(rows, _ int) int      { return rows }
func (RowMajor) secondaryDim(_, cols int) int    { return cols }
func (RowMajor) rowsPrimary() bool               { return true }

func (ColumnMajor) toStorage(i, j int) (int, int)   { return j, i }
func (ColumnMajor) fromStorage(p, s int) (int, int) { return s, p }
func (ColumnMajor) primaryDim(_, cols int) int      { return cols }
func (ColumnMajor) secondaryDim(rows, _ int) int    { return rows }
func (ColumnMajor) rowsPrimary() bool               { return false }

// Axis labels used by the diagnostic renderer (render.go).
const (
	labelRow    = "row"
	labelColumn = "column"
)

// axisLabels returns the (primary, secondary) axis names under policy o.
// Complexity: O(1).
func axisLabels[O Ordering](o O) (primary, secondary string) {
	if o.rowsPrimary() {
		return labelRow, labelColumn
	}

	return labelColumn, labelRow
}
