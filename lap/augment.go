package lap

// augmentState is the per-invocation scratch space of the augmenting path
// search: distance labels, predecessor links, the finalized-column record
// and the decrease-key priority queue. One instance is allocated per solve
// call and reset before every augmentation, so the queue and label arrays
// are not reallocated n times.
type augmentState struct {
	dist    []int64 // best known reduced-cost label per column
	prev    []int   // predecessor row per column along the best path
	inTodo  []bool  // column is in the frontier, label still improvable
	isReady []bool  // column finalized; its shortest-path label is fixed
	ready   []int   // finalized columns, in finalization order
	scan    []int   // finalized columns not yet expanded
	pq      *colHeap
}

// newAugmentState allocates scratch space for a dim-column search.
func newAugmentState(dim int) *augmentState {
	st := &augmentState{
		dist:    make([]int64, dim),
		prev:    make([]int, dim),
		inTodo:  make([]bool, dim),
		isReady: make([]bool, dim),
		ready:   make([]int, 0, dim),
		scan:    make([]int, 0, dim),
	}
	st.pq = newColHeap(dim, st.dist)

	return st
}

// reset prepares the state for a search rooted at start: every column
// leaves the frontier, every predecessor link points back at the root
// (so a column finalized without a better predecessor still closes the
// path), and the queue and worklists empty. Idempotent.
func (st *augmentState) reset(start int) {
	for j := range st.inTodo {
		st.inTodo[j] = false
		st.isReady[j] = false
		st.prev[j] = start
	}
	st.ready = st.ready[:0]
	st.scan = st.scan[:0]
	st.pq.clear()
}

// finalize fixes column j's label as optimal for the rest of the search
// and queues it for expansion.
func (st *augmentState) finalize(j int) {
	st.isReady[j] = true
	st.ready = append(st.ready, j)
	st.scan = append(st.scan, j)
}

// augment matches the free row start by finding a shortest alternating
// path to some free column over reduced costs cost(i,j) − v[j], then
// flipping assignments along it. On return start is matched, v has been
// updated for every finalized column, and the reduced-cost invariant
// holds for all touched columns.
//
// Precondition: rowsol[start] == Unassigned.
func augment(st *augmentState, cm CostMatrix, v []int64, start int, rowsol, colsol []int) error {
	st.reset(start)

	// Seed the frontier with every column reachable from the start row.
	for _, e := range cm.Row(start) {
		st.dist[e.Col] = e.Cost - v[e.Col]
		st.pq.push(e.Col)
		st.inTodo[e.Col] = true
	}

	end, min, err := st.search(cm, v, colsol)
	if err != nil {
		return err
	}

	// Update column duals for every finalized column, in finalization
	// order. Columns of the last batch satisfy dist == min, so their
	// update is a no-op; earlier columns absorb the label gap, which
	// preserves reduced-cost non-negativity on all touched edges.
	for _, j := range st.ready {
		v[j] += st.dist[j] - min
	}

	// Flip row/column assignments backward along the predecessor chain
	// until the walk returns to the start row.
	for {
		i := st.prev[end]
		colsol[end] = i
		j1 := end
		end = rowsol[i]
		rowsol[i] = j1
		if i == start {
			break
		}
	}

	return nil
}

// search runs the label-correcting loop and returns the free column
// ending the shortest augmenting path, together with the final minimum
// label. ErrInfeasible is returned if the queue exhausts first, which
// for a well-formed matrix cannot happen.
func (st *augmentState) search(cm CostMatrix, v []int64, colsol []int) (int, int64, error) {
	var min int64
	for {
		if len(st.scan) == 0 {
			// Drop queue heads whose column already left the frontier:
			// stale entries from the zero-reduced-cost shortcut below.
			for !st.pq.empty() && !st.inTodo[st.pq.min()] {
				st.pq.pop()
			}
			if st.pq.empty() {
				return 0, 0, ErrInfeasible
			}
			min = st.dist[st.pq.min()]

			// Finalize the whole batch of columns at the minimum label
			// before expanding any of them; the shortest-path labels are
			// only valid under this batch discipline.
			for !st.pq.empty() {
				j := st.pq.min()
				if !st.inTodo[j] {
					st.pq.pop()
					continue
				}
				if st.dist[j] != min {
					break
				}
				if colsol[j] < 0 {
					return j, min, nil // free column: path complete
				}
				st.pq.pop()
				st.inTodo[j] = false
				st.finalize(j)
			}
		}

		// Expand the most recently finalized column through the row
		// currently holding it.
		j1 := st.scan[len(st.scan)-1]
		st.scan = st.scan[:len(st.scan)-1]
		i := colsol[j1]
		h := cm.Cost(i, j1) - v[j1]
		for _, e := range cm.Row(i) {
			j := e.Col
			if st.isReady[j] {
				continue
			}
			cred := e.Cost - v[j] - h
			if st.inTodo[j] && min+cred >= st.dist[j] {
				continue
			}
			st.dist[j] = min + cred
			st.prev[j] = i

			switch {
			case cred == 0 && colsol[j] < 0:
				return j, min, nil // zero-cost extension to a free column
			case cred == 0:
				// Zero-cost extension: finalize immediately, no need to
				// route through the queue. Any queue entry goes stale
				// and is skipped lazily above.
				st.inTodo[j] = false
				st.finalize(j)
			case st.inTodo[j]:
				st.pq.decreaseKey(j)
			default:
				st.pq.push(j)
				st.inTodo[j] = true
			}
		}
	}
}
