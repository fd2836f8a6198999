// Package reducer adds two square matrices, either on the calling goroutine or
// split across a fixed number of workers by stride row partitioning.
package reducer

import (
	"github.com/tensorplex-labs/matsum/internal/matrix"
	"github.com/tensorplex-labs/matsum/internal/utils/logger"
)

type Reducer struct {
	workers int
	kernel  RowKernel
}

type Option func(*Reducer)

// WithWorkers sets the worker count. Zero selects the sequential path.
func WithWorkers(workers int) Option {
	return func(r *Reducer) {
		r.workers = workers
	}
}

// WithKernel replaces the per-row addition kernel.
func WithKernel(kernel RowKernel) Option {
	return func(r *Reducer) {
		r.kernel = kernel
	}
}

func New(opts ...Option) (*Reducer, error) {
	r := &Reducer{kernel: AddRows}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 0 {
		return nil, ErrNegativeWorkers
	}
	if r.kernel == nil {
		r.kernel = AddRows
	}
	return r, nil
}

func (r *Reducer) Workers() int {
	return r.workers
}

// Reduce returns a new matrix holding a + b. It returns only after every
// worker has finished. Operands of different sizes panic.
func (r *Reducer) Reduce(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	mustSameSize(a, b)
	logger.Sugar().Debugw("Reducing matrices", "size", a.Size(), "workers", r.workers)

	if r.workers == 0 {
		out := matrix.MustNew(a.Size())
		sequential(a, b, out, r.kernel)
		return out, nil
	}
	return r.parallel(a, b)
}
