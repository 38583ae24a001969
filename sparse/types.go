// Package sparse: domain types shared by the builder, the matrix and the
// lap solver. Errors live in errors.go per the package conventions.
package sparse

import "math"

// InfCost is the sentinel for an absent (implicitly infinite) cell.
//
// It is strictly greater than dimension × max feasible edge cost for any
// realistic instance, and leaves three bits of headroom below MaxInt64 so
// that the solver may add a handful of InfCost-scale terms during label
// correction without overflowing int64.
const InfCost int64 = math.MaxInt64 / 8

// Entry is one stored cell of a sparse row: the column index and the
// integer cost at that column.
type Entry struct {
	// Col is the column index of the stored cell.
	Col int
	// Cost is the integer cost of assigning the row to Col.
	Cost int64
}
