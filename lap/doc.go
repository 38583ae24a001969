// Package lap solves the square Linear Assignment Problem over a sparse
// integer cost matrix with the Jonker–Volgenant shortest augmenting path
// algorithm.
//
// Overview:
//
//   - Solve finds a bijection rows → columns minimizing the total cost,
//     together with dual variables (u, v) certifying optimality.
//   - DeltaSolve warm-starts from a prior (possibly partial) Solution:
//     it recomputes duals for unmatched columns and augments only the
//     rows left unassigned, skipping the cheap reduction phases.
//
// Algorithm (Jonker & Volgenant, "A Shortest Augmenting Path Algorithm
// for Dense and Sparse Linear Assignment Problems", Computing 38, 1987):
//
//  1. Column reduction — every column dual drops to its cheapest row;
//     first-claim rows take their column.
//  2. Reduction transfer — singly-claimed rows push slack back onto
//     their column dual.
//  3. Augmenting row reduction — two passes of cheap local reassignment
//     over the free rows, chasing alternating chains of length two.
//  4. Shortest augmenting paths — each remaining free row is matched by
//     a Dijkstra-like search over reduced costs, using a decrease-key
//     priority queue with batch finalization of equal labels.
//
// Invariants maintained at every checkpoint:
//
//   - reduced-cost non-negativity: cost(i,j) − u[i] − v[j] ≥ 0 for every
//     stored entry (i,j);
//   - complementary slackness: equality holds on every matched pair;
//   - RowSol and ColSol are mutual inverses wherever assigned.
//
// Complexity:
//
//   - Time:  O(n · nnz · log n) worst case — n augmentations, each a
//     label-correcting search over the stored entries with O(log n)
//     heap operations.
//   - Space: O(n + nnz); one scratch state is allocated per solve call
//     and reused across all augmentations.
//
// Error handling (sentinel errors, matched with errors.Is):
//
//   - ErrNilMatrix     if the cost matrix is nil.
//   - ErrZeroDimension if the matrix dimension is not positive.
//   - ErrPriorShape    if a DeltaSolve prior's vectors do not match the
//     matrix dimension.
//   - ErrInfeasible    if the augmenting search exhausts its queue, i.e.
//     some free row cannot reach any free column (no perfect matching).
//
// Determinism:
//
//   - No map iteration or randomness anywhere on the solve path; the
//     same matrix always yields the identical Solution.
//
// See also:
//
//   - sparse.Matrix / sparse.Builder — the canonical CostMatrix
//     implementation and how to construct one.
package lap
