package sparse

import "sort"

// Matrix is an immutable n×n sparse cost matrix in CSR layout: all stored
// entries live in one slice, rows are delimited by rowStart offsets, and
// each row is sorted by ascending column index.
//
// Absent cells carry the implicit cost InfCost. A Matrix is safe for
// concurrent readers because nothing mutates it after Build.
type Matrix struct {
	dim       int
	rowStart  []int   // len dim+1; row i occupies entries[rowStart[i]:rowStart[i+1]]
	entries   []Entry // all stored cells, row-major, each row sorted by Col
	colMinRow []int   // per column: row index achieving the minimum cost
}

// Dimension returns n for this n×n matrix.
func (m *Matrix) Dimension() int { return m.dim }

// NonZeros returns the number of stored entries.
func (m *Matrix) NonZeros() int { return len(m.entries) }

// Row returns the stored entries of row i in ascending column order.
// The returned slice is a view into the matrix and must not be modified.
// Out-of-range rows yield nil.
//
// Complexity: O(1).
func (m *Matrix) Row(row int) []Entry {
	if row < 0 || row >= m.dim {
		return nil
	}

	return m.entries[m.rowStart[row]:m.rowStart[row+1]]
}

// Cost returns the cost stored at (row, col), or InfCost when the cell is
// absent or either index is out of range.
//
// Complexity: O(log k), k = number of entries in the row.
func (m *Matrix) Cost(row, col int) int64 {
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		return InfCost
	}

	return m.costAt(row, col)
}

// costAt performs the binary search within a row; indices must be valid.
func (m *Matrix) costAt(row, col int) int64 {
	r := m.Row(row)
	k := sort.Search(len(r), func(i int) bool { return r[i].Col >= col })
	if k < len(r) && r[k].Col == col {
		return r[k].Cost
	}

	return InfCost
}

// SmallestCostRow returns the row achieving the minimum cost in column col,
// with ties resolved to the lowest row index. Returns -1 for an
// out-of-range column. Build guarantees a valid row for every column.
//
// Complexity: O(1) — precomputed at Build time.
func (m *Matrix) SmallestCostRow(col int) int {
	if col < 0 || col >= m.dim {
		return -1
	}

	return m.colMinRow[col]
}
