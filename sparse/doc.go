// Package sparse provides the sparse, integer-valued cost matrix consumed
// by the lap solver.
//
// Overview:
//
//   - A Matrix is an n×n cost matrix in which each row stores only its
//     explicit (column, cost) entries, sorted by ascending column index.
//     Absent cells carry an implicit infinite cost (InfCost) and can never
//     belong to a finite-cost assignment.
//   - Matrices are built through a Builder and are immutable afterwards,
//     so a solver call can iterate rows without defensive copying.
//   - Row(i) returns a zero-copy view of row i — a finite, restartable
//     sequence of entries in ascending column order.
//   - SmallestCostRow(j) answers "which row is cheapest in column j" in
//     O(1), from an index precomputed once at Build time.
//
// Validation (at Build, sentinel errors):
//
//   - ErrBadDimension      if the requested dimension is not positive.
//   - ErrIndexOutOfRange   if Set addresses a cell outside the matrix.
//   - ErrEmptyRow          if some row has no stored entry — such a row
//     could never be assigned.
//   - ErrEmptyColumn       if some column has no stored entry — a perfect
//     matching would be impossible.
//
// Interop:
//
//   - FromDense ingests a gonum mat.Matrix: math.Inf(1) marks an absent
//     cell, NaN is rejected (ErrNaNCost), and non-integral values are
//     rejected (ErrNonIntegralCost) because the solver is exact over
//     integers.
//
// Note that Build validation is structural only: it guarantees no empty
// row or column, which is necessary but not sufficient for a perfect
// matching. Feasibility proper is the caller's contract with the solver.
package sparse
