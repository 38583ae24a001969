package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDense converts a square gonum matrix into a sparse cost Matrix.
//
// Cell policy during ingestion:
//
//   - math.Inf(1) marks an absent cell (implicit InfCost) and is skipped;
//   - NaN and math.Inf(-1) are rejected with ErrNaNCost;
//   - finite non-integral values are rejected with ErrNonIntegralCost,
//     because the solver is exact over integers;
//   - every other finite value is stored as int64.
//
// The usual Build validation applies afterwards, so a dense matrix with an
// all-Inf row (or column) yields ErrEmptyRow (or ErrEmptyColumn).
//
// Complexity: O(n²) scan plus the Build cost.
func FromDense(d mat.Matrix) (*Matrix, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	r, c := d.Dims()
	if r != c {
		return nil, ErrBadDimension
	}

	b, err := NewBuilder(r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			switch {
			case math.IsNaN(v), math.IsInf(v, -1):
				return nil, ErrNaNCost
			case math.IsInf(v, 1):
				continue // absent cell
			case v != math.Trunc(v):
				return nil, ErrNonIntegralCost
			}
			if err = b.Set(i, j, int64(v)); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}
