// Package sparse_test contains unit tests for the sparse cost matrix:
// builder validation, CSR lookups, row views and the per-column minimum
// index.
package sparse_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lapjv/sparse"
)

// buildSmall constructs the 3×3 matrix used across these tests:
//
//	row0: (0:2) (1:2)
//	row1: (0:0) (2:2)
//	row2: (1:0) (2:2)
func buildSmall(t *testing.T) *sparse.Matrix {
	t.Helper()
	b, err := sparse.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 2))
	require.NoError(t, b.Set(0, 1, 2))
	require.NoError(t, b.Set(1, 0, 0))
	require.NoError(t, b.Set(1, 2, 2))
	require.NoError(t, b.Set(2, 1, 0))
	require.NoError(t, b.Set(2, 2, 2))
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func TestNewBuilder_BadDimension(t *testing.T) {
	_, err := sparse.NewBuilder(0)
	assert.ErrorIs(t, err, sparse.ErrBadDimension)
	_, err = sparse.NewBuilder(-3)
	assert.ErrorIs(t, err, sparse.ErrBadDimension)
}

func TestBuilder_SetOutOfRange(t *testing.T) {
	b, err := sparse.NewBuilder(2)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Set(-1, 0, 1), sparse.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(0, 2, 1), sparse.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(2, 0, 1), sparse.ErrIndexOutOfRange)
}

func TestBuilder_EmptyRowRejected(t *testing.T) {
	b, err := sparse.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(0, 1, 1))
	// Row 1 never received an entry.
	_, err = b.Build()
	assert.ErrorIs(t, err, sparse.ErrEmptyRow)
}

func TestBuilder_EmptyColumnRejected(t *testing.T) {
	b, err := sparse.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(1, 0, 1))
	// Column 1 never received an entry.
	_, err = b.Build()
	assert.ErrorIs(t, err, sparse.ErrEmptyColumn)
}

func TestBuilder_LastWriteWins(t *testing.T) {
	b, err := sparse.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 9))
	require.NoError(t, b.Set(0, 0, 3)) // overwrite
	require.NoError(t, b.Set(0, 1, 1))
	require.NoError(t, b.Set(1, 1, 1))
	require.NoError(t, b.Set(1, 0, 1))
	m, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, int64(3), m.Cost(0, 0))
	assert.Equal(t, 4, m.NonZeros())
}

func TestMatrix_CostLookups(t *testing.T) {
	m := buildSmall(t)
	assert.Equal(t, 3, m.Dimension())
	assert.Equal(t, 6, m.NonZeros())
	assert.Equal(t, int64(2), m.Cost(0, 0))
	assert.Equal(t, int64(0), m.Cost(2, 1))
	// Absent cells and out-of-range indices are infinite.
	assert.Equal(t, sparse.InfCost, m.Cost(0, 2))
	assert.Equal(t, sparse.InfCost, m.Cost(-1, 0))
	assert.Equal(t, sparse.InfCost, m.Cost(0, 3))
}

func TestMatrix_RowViewsSortedByColumn(t *testing.T) {
	// Insert columns out of order; Row must still come back sorted.
	b, err := sparse.NewBuilder(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Set(i, 3, 1))
		require.NoError(t, b.Set(i, 0, 1))
		require.NoError(t, b.Set(i, 2, 1))
		require.NoError(t, b.Set(i, 1, 1))
	}
	m, err := b.Build()
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		row := m.Row(i)
		require.Len(t, row, 4)
		sorted := sort.SliceIsSorted(row, func(a, c int) bool { return row[a].Col < row[c].Col })
		assert.True(t, sorted, "row %d not in ascending column order: %v", i, row)
	}
	assert.Nil(t, m.Row(-1))
	assert.Nil(t, m.Row(4))
}

func TestMatrix_SmallestCostRow(t *testing.T) {
	m := buildSmall(t)
	assert.Equal(t, 1, m.SmallestCostRow(0)) // cost 0 beats 2
	assert.Equal(t, 2, m.SmallestCostRow(1)) // cost 0 beats 2
	assert.Equal(t, 1, m.SmallestCostRow(2)) // tie at 2: lowest row wins
	assert.Equal(t, -1, m.SmallestCostRow(3))
	assert.Equal(t, -1, m.SmallestCostRow(-1))
}
