package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lapjv/sparse"
)

func TestFromDense_Basic(t *testing.T) {
	inf := math.Inf(1)
	d := mat.NewDense(3, 3, []float64{
		2, 2, inf,
		0, inf, 2,
		inf, 0, 2,
	})

	m, err := sparse.FromDense(d)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dimension())
	assert.Equal(t, 6, m.NonZeros())
	assert.Equal(t, int64(2), m.Cost(0, 0))
	assert.Equal(t, sparse.InfCost, m.Cost(0, 2), "Inf cell must be absent")
	assert.Equal(t, int64(0), m.Cost(2, 1))
}

func TestFromDense_NilMatrix(t *testing.T) {
	_, err := sparse.FromDense(nil)
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestFromDense_NonSquare(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err := sparse.FromDense(d)
	assert.ErrorIs(t, err, sparse.ErrBadDimension)
}

func TestFromDense_RejectsNaNAndNegInf(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, math.NaN(), 1, 1})
	_, err := sparse.FromDense(d)
	assert.ErrorIs(t, err, sparse.ErrNaNCost)

	d = mat.NewDense(2, 2, []float64{1, math.Inf(-1), 1, 1})
	_, err = sparse.FromDense(d)
	assert.ErrorIs(t, err, sparse.ErrNaNCost)
}

func TestFromDense_RejectsNonIntegral(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{1, 2.5, 3, 4})
	_, err := sparse.FromDense(d)
	assert.ErrorIs(t, err, sparse.ErrNonIntegralCost)
}

func TestFromDense_AllInfRow(t *testing.T) {
	inf := math.Inf(1)
	d := mat.NewDense(2, 2, []float64{inf, inf, 1, 1})
	_, err := sparse.FromDense(d)
	assert.ErrorIs(t, err, sparse.ErrEmptyRow)
}

func TestFromDense_AllInfColumn(t *testing.T) {
	inf := math.Inf(1)
	d := mat.NewDense(2, 2, []float64{1, inf, 1, inf})
	_, err := sparse.FromDense(d)
	assert.ErrorIs(t, err, sparse.ErrEmptyColumn)
}
