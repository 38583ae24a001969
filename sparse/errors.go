package sparse

import "errors"

var (
	// ErrBadDimension indicates a non-positive matrix dimension.
	ErrBadDimension = errors.New("sparse: dimension must be positive")
	// ErrIndexOutOfRange indicates a row or column index outside [0, dim).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")
	// ErrEmptyRow indicates a row with no stored entry; it could never be assigned.
	ErrEmptyRow = errors.New("sparse: row has no stored entries")
	// ErrEmptyColumn indicates a column with no stored entry; no perfect matching can exist.
	ErrEmptyColumn = errors.New("sparse: column has no stored entries")
	// ErrNilMatrix indicates a nil *mat.Matrix (or nil gonum matrix) was supplied.
	ErrNilMatrix = errors.New("sparse: matrix is nil")
	// ErrNaNCost indicates a NaN value was encountered during dense ingestion.
	ErrNaNCost = errors.New("sparse: NaN cost encountered")
	// ErrNonIntegralCost indicates a finite but non-integral value during dense ingestion.
	ErrNonIntegralCost = errors.New("sparse: cost is not integral")
)
