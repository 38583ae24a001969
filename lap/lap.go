package lap

import "github.com/katalvlaran/lapjv/sparse"

// Solve computes a minimum-cost complete assignment for the given square
// sparse cost matrix, together with dual variables certifying optimality.
//
// Three cheap reduction phases resolve most assignments up front; the
// rows still free afterwards are matched one by one with the shortest
// augmenting path search, reusing a single scratch state.
//
// Returns ErrNilMatrix / ErrZeroDimension on malformed input and
// ErrInfeasible when no perfect matching of finite cost exists.
//
// Complexity: O(n · nnz · log n) worst case, O(n + nnz) space.
func Solve(cm CostMatrix) (Solution, error) {
	if cm == nil {
		return Solution{}, ErrNilMatrix
	}
	dim := cm.Dimension()
	if dim <= 0 {
		return Solution{}, ErrZeroDimension
	}

	v := make([]int64, dim)
	rowsol := make([]int, dim)
	colsol := make([]int, dim)
	for i := range rowsol {
		rowsol[i] = Unassigned
		colsol[i] = Unassigned
	}

	matches := make([]int, dim) // per-row claim count during column reduction
	free := make([]int, dim)    // list of unassigned rows
	numfree := 0

	// COLUMN REDUCTION. Descending column order gives better starting
	// duals for the later phases. Each column dual drops to its cheapest
	// row; the first column a row claims sticks.
	for j := dim - 1; j >= 0; j-- {
		imin := cm.SmallestCostRow(j)
		if imin < 0 {
			return Solution{}, ErrInfeasible
		}
		v[j] = cm.Cost(imin, j)
		matches[imin]++
		if matches[imin] == 1 {
			rowsol[imin] = j
			colsol[j] = imin
		}
	}

	// REDUCTION TRANSFER. Rows claimed by exactly one column push their
	// slack — the minimum reduced cost over their other columns — back
	// onto that column's dual. Rows with no claim become free.
	for i := 0; i < dim; i++ {
		switch matches[i] {
		case 0:
			free[numfree] = i
			numfree++
		case 1:
			j1 := rowsol[i]
			min := sparse.InfCost
			for _, e := range cm.Row(i) {
				if e.Col != j1 && e.Cost-v[e.Col] < min {
					min = e.Cost - v[e.Col]
				}
			}
			v[j1] -= min
		}
	}

	// AUGMENTING ROW REDUCTION, run exactly twice. Each free row grabs
	// its cheapest column, tightening that column's dual up to the
	// second-cheapest slack; a displaced row is rescanned immediately
	// when the dual moved, or deferred to the next pass otherwise.
	for loop := 0; loop < 2; loop++ {
		k := 0
		prvnumfree := numfree
		numfree = 0
		for k < prvnumfree {
			i := free[k]
			k++

			// Find the two smallest reduced costs over the row's columns.
			row := cm.Row(i)
			j1 := row[0].Col
			umin := row[0].Cost - v[j1]
			usubmin := sparse.InfCost
			j2 := Unassigned
			for _, e := range row[1:] {
				h := e.Cost - v[e.Col]
				if h < usubmin {
					if h >= umin {
						usubmin = h
						j2 = e.Col
					} else {
						usubmin = umin
						umin = h
						j2 = j1
						j1 = e.Col
					}
				}
			}

			i0 := colsol[j1]
			if umin < usubmin {
				// Raise the row's minimum reduced cost to the subminimum.
				v[j1] -= usubmin - umin
			} else if i0 >= 0 && j2 >= 0 {
				// Minimum and subminimum equal and j1 taken: switch to
				// the alternate column, which may still be free.
				j1 = j2
				i0 = colsol[j2]
			}

			rowsol[i] = j1
			colsol[j1] = i

			if i0 >= 0 { // j1 was assigned earlier; row i0 is displaced
				if umin < usubmin {
					// The dual moved: rescan i0 right away to keep
					// chasing the alternating chain.
					k--
					free[k] = i0
				} else {
					// No further reduction here; defer i0 to the next pass.
					free[numfree] = i0
					numfree++
				}
			}
		}
	}

	// AUGMENTATION. Whatever is still free gets a shortest augmenting
	// path, all searches sharing one scratch state.
	st := newAugmentState(dim)
	for f := 0; f < numfree; f++ {
		if err := augment(st, cm, v, free[f], rowsol, colsol); err != nil {
			return Solution{}, err
		}
	}

	return finish(cm, rowsol, colsol, v), nil
}

// finish derives the row duals from the final column duals and the
// assignment, sums the total cost and assembles the Solution.
func finish(cm CostMatrix, rowsol, colsol []int, v []int64) Solution {
	dim := cm.Dimension()
	u := make([]int64, dim)
	var total int64
	for i := 0; i < dim; i++ {
		c := cm.Cost(i, rowsol[i])
		u[i] = c - v[rowsol[i]]
		total += c
	}

	return Solution{Cost: total, RowSol: rowsol, ColSol: colsol, U: u, V: v}
}
