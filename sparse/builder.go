package sparse

import "sort"

// Builder accumulates cells of an n×n sparse cost matrix and produces an
// immutable Matrix via Build. Setting the same cell twice keeps the last
// written cost.
//
// A Builder is not safe for concurrent use; build the matrix first, then
// share the immutable result freely.
type Builder struct {
	dim  int
	rows []map[int]int64 // per-row column → cost; compacted into CSR at Build
}

// NewBuilder returns a Builder for a dim×dim matrix.
// Returns ErrBadDimension if dim <= 0.
func NewBuilder(dim int) (*Builder, error) {
	if dim <= 0 {
		return nil, ErrBadDimension
	}

	return &Builder{dim: dim, rows: make([]map[int]int64, dim)}, nil
}

// Dimension returns the matrix dimension the Builder was created with.
func (b *Builder) Dimension() int { return b.dim }

// Set stores cost at (row, col), overwriting any previous value there.
// Returns ErrIndexOutOfRange if either index lies outside [0, dim).
func (b *Builder) Set(row, col int, cost int64) error {
	if row < 0 || row >= b.dim || col < 0 || col >= b.dim {
		return ErrIndexOutOfRange
	}
	if b.rows[row] == nil {
		b.rows[row] = make(map[int]int64)
	}
	b.rows[row][col] = cost

	return nil
}

// Build compacts the accumulated cells into an immutable Matrix.
//
// Validation performed here, in order:
//  1. every row has at least one stored entry (ErrEmptyRow);
//  2. every column has at least one stored entry (ErrEmptyColumn).
//
// Row entries are sorted by ascending column index, and the per-column
// cheapest row is precomputed so that SmallestCostRow answers in O(1).
// Ties on the column minimum go to the lowest row index, which keeps the
// downstream solver fully deterministic.
//
// Complexity: O(nnz log nnz) for the per-row sorts, O(nnz) otherwise.
func (b *Builder) Build() (*Matrix, error) {
	// 1) Reject rows with no entries before allocating anything.
	nnz := 0
	for i := 0; i < b.dim; i++ {
		if len(b.rows[i]) == 0 {
			return nil, ErrEmptyRow
		}
		nnz += len(b.rows[i])
	}

	// 2) Compact into CSR: one shared entry slice plus row offsets.
	m := &Matrix{
		dim:       b.dim,
		rowStart:  make([]int, b.dim+1),
		entries:   make([]Entry, 0, nnz),
		colMinRow: make([]int, b.dim),
	}
	for j := range m.colMinRow {
		m.colMinRow[j] = -1
	}
	for i := 0; i < b.dim; i++ {
		m.rowStart[i] = len(m.entries)
		for col, cost := range b.rows[i] {
			m.entries = append(m.entries, Entry{Col: col, Cost: cost})
		}
		row := m.entries[m.rowStart[i]:]
		sort.Slice(row, func(a, c int) bool { return row[a].Col < row[c].Col })
	}
	m.rowStart[b.dim] = len(m.entries)

	// 3) Precompute the cheapest row of every column; strict improvement
	//    only, so the lowest row index wins ties.
	for i := 0; i < b.dim; i++ {
		for _, e := range m.Row(i) {
			jmin := m.colMinRow[e.Col]
			if jmin < 0 || e.Cost < m.costAt(jmin, e.Col) {
				m.colMinRow[e.Col] = i
			}
		}
	}

	// 4) A column nobody stores can never be matched.
	for j := 0; j < b.dim; j++ {
		if m.colMinRow[j] < 0 {
			return nil, ErrEmptyColumn
		}
	}

	return m, nil
}
