package reducer

import "errors"

var (
	// ErrWorkerFailed wraps the failure of any single worker. The reduction
	// that observed it produces no output.
	ErrWorkerFailed = errors.New("reducer: worker failed")

	// ErrIncompleteMerge is returned when partial results do not cover every
	// row exactly once.
	ErrIncompleteMerge = errors.New("reducer: partial results do not cover every row exactly once")

	// ErrNegativeWorkers is returned by New for a worker count below zero.
	ErrNegativeWorkers = errors.New("reducer: worker count must be >= 0")
)
