package lap

import "github.com/katalvlaran/lapjv/sparse"

// DeltaSolve completes a prior, possibly partial, assignment after the
// problem changed — typically when new rows appeared unassigned. The
// cheap reduction phases are skipped: column duals of still-matched
// columns carry over, unmatched columns get a fresh dual from the prior
// row duals, and only the free rows are augmented.
//
// Precondition: prior's U, V, RowSol and ColSol are mutually consistent
// for every pair still assigned, i.e. cost(i,j) − U[i] − V[j] ≥ 0 on all
// stored entries with equality on matched pairs. A Solution produced by
// Solve or DeltaSolve with some rows unassigned afterwards satisfies this.
//
// The prior Solution is not mutated; the result is an independent value.
func DeltaSolve(cm CostMatrix, prior Solution) (Solution, error) {
	if cm == nil {
		return Solution{}, ErrNilMatrix
	}
	dim := cm.Dimension()
	if dim <= 0 {
		return Solution{}, ErrZeroDimension
	}
	if len(prior.RowSol) != dim || len(prior.ColSol) != dim ||
		len(prior.U) != dim || len(prior.V) != dim {
		return Solution{}, ErrPriorShape
	}

	work := prior.clone()
	rowsol, colsol := work.RowSol, work.ColSol

	// Matched columns keep their prior dual. Unmatched columns get
	// v[j] = min over rows of cost(i,j) − u_prior[i], computed in one
	// sweep over the stored entries.
	v := make([]int64, dim)
	for j := 0; j < dim; j++ {
		if colsol[j] >= 0 {
			v[j] = prior.V[j]
		} else {
			v[j] = sparse.InfCost
		}
	}
	for i := 0; i < dim; i++ {
		for _, e := range cm.Row(i) {
			if colsol[e.Col] >= 0 {
				continue
			}
			if c := e.Cost - prior.U[i]; c < v[e.Col] {
				v[e.Col] = c
			}
		}
	}

	// Augment each row left unassigned by the prior solution, in row
	// order, sharing one scratch state.
	st := newAugmentState(dim)
	for i := 0; i < dim; i++ {
		if rowsol[i] != Unassigned {
			continue
		}
		if err := augment(st, cm, v, i, rowsol, colsol); err != nil {
			return Solution{}, err
		}
	}

	return finish(cm, rowsol, colsol, v), nil
}
