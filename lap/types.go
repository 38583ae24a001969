// Package lap: public types and the cost-matrix contract consumed by the
// solver. Errors live in errors.go per the package conventions.
package lap

import "github.com/katalvlaran/lapjv/sparse"

// Unassigned marks a row or column with no partner in RowSol / ColSol.
const Unassigned = -1

// CostMatrix is the read-only contract the solver needs from a sparse
// cost matrix. *sparse.Matrix satisfies it; any caller-owned structure
// (e.g. an equation/variable incidence sigma matrix) may implement it
// directly instead of copying into one.
//
// Implementations must be immutable for the duration of a solve call.
type CostMatrix interface {
	// Dimension returns n for the n×n matrix.
	Dimension() int

	// Cost returns the stored cost at (row, col), or sparse.InfCost when
	// the cell is absent. Called sparingly (finalization, delta duals).
	Cost(row, col int) int64

	// Row returns the stored entries of a row in ascending column order.
	// The solver never mutates the returned slice.
	Row(row int) []sparse.Entry

	// SmallestCostRow returns the row achieving the minimum cost in the
	// given column; ties must resolve deterministically.
	SmallestCostRow(col int) int
}

// Solution is a complete assignment plus its certifying dual variables.
//
// RowSol[i] is the column matched to row i and ColSol[j] the row matched
// to column j; both are Unassigned-free after a successful solve and are
// mutual inverses. For every stored entry, cost(i,j) − U[i] − V[j] ≥ 0,
// with equality on matched pairs — together these certify optimality.
//
// A Solution is returned by value and shares no memory with the solver's
// scratch state.
type Solution struct {
	// Cost is the total cost of the matched pairs.
	Cost int64
	// RowSol maps row → matched column.
	RowSol []int
	// ColSol maps column → matched row.
	ColSol []int
	// U holds the row duals, derived from V and the assignment.
	U []int64
	// V holds the column duals threaded through the augmentation phases.
	V []int64
}

// clone returns a deep copy of s, so DeltaSolve can mutate its working
// assignment without aliasing the caller's prior Solution.
func (s Solution) clone() Solution {
	c := Solution{
		Cost:   s.Cost,
		RowSol: make([]int, len(s.RowSol)),
		ColSol: make([]int, len(s.ColSol)),
		U:      make([]int64, len(s.U)),
		V:      make([]int64, len(s.V)),
	}
	copy(c.RowSol, s.RowSol)
	copy(c.ColSol, s.ColSol)
	copy(c.U, s.U)
	copy(c.V, s.V)

	return c
}
