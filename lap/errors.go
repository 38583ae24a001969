package lap

import "errors"

var (
	// ErrNilMatrix indicates a nil CostMatrix was passed to Solve or DeltaSolve.
	ErrNilMatrix = errors.New("lap: cost matrix is nil")
	// ErrZeroDimension indicates the cost matrix has a non-positive dimension.
	ErrZeroDimension = errors.New("lap: cost matrix dimension must be positive")
	// ErrPriorShape indicates the prior Solution's vectors do not all have
	// length equal to the matrix dimension.
	ErrPriorShape = errors.New("lap: prior solution shape does not match matrix dimension")
	// ErrInfeasible indicates the augmenting search ran out of reachable
	// columns: some free row cannot be completed into a perfect matching.
	ErrInfeasible = errors.New("lap: no feasible complete assignment")
)
