package reducer

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tensorplex-labs/matsum/internal/matrix"
)

// Partial is one worker's share of the result: its computed rows, each tagged
// with the row index it belongs to in the output.
type Partial struct {
	Worker  int
	Indices []int
	Rows    [][]int32
}

// Parallel returns a + b computed by workers goroutines using the default
// kernel. workers == 0 runs the sequential path.
func Parallel(a, b *matrix.Matrix, workers int) (*matrix.Matrix, error) {
	r, err := New(WithWorkers(workers))
	if err != nil {
		return nil, err
	}
	return r.Reduce(a, b)
}

// parallel spawns one goroutine per worker, waits for all of them and merges
// their partials into a fresh output matrix. a and b are shared read-only.
func (r *Reducer) parallel(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	n := a.Size()
	partials := make([]Partial, r.workers)

	var g errgroup.Group
	for w := range r.workers {
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("worker %d: %v: %w", w, p, ErrWorkerFailed)
				}
			}()
			partials[w] = computePartial(a, b, w, r.workers, r.kernel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := matrix.MustNew(n)
	if err := Merge(out, partials); err != nil {
		return nil, err
	}
	return out, nil
}

func computePartial(a, b *matrix.Matrix, worker, workers int, kernel RowKernel) Partial {
	n := a.Size()
	indices := StrideRows(worker, workers, n)
	p := Partial{
		Worker:  worker,
		Indices: indices,
		Rows:    make([][]int32, len(indices)),
	}
	for k, i := range indices {
		row := make([]int32, n)
		kernel(row, a.Row(i), b.Row(i))
		p.Rows[k] = row
	}
	return p
}

// Merge writes every partial row into out at its tagged index. It fails if a
// row is tagged twice, tagged out of range, or never tagged at all.
func Merge(out *matrix.Matrix, partials []Partial) error {
	n := out.Size()
	written := make([]bool, n)
	for _, p := range partials {
		if len(p.Indices) != len(p.Rows) {
			return fmt.Errorf("worker %d: %d indices for %d rows: %w", p.Worker, len(p.Indices), len(p.Rows), ErrIncompleteMerge)
		}
		for k, i := range p.Indices {
			if i < 0 || i >= n {
				return fmt.Errorf("worker %d: row %d outside [0,%d): %w", p.Worker, i, n, ErrIncompleteMerge)
			}
			if written[i] {
				return fmt.Errorf("worker %d: row %d written twice: %w", p.Worker, i, ErrIncompleteMerge)
			}
			if err := out.SetRow(i, p.Rows[k]); err != nil {
				return fmt.Errorf("worker %d: %w: %w", p.Worker, err, ErrIncompleteMerge)
			}
			written[i] = true
		}
	}
	missing := 0
	for _, ok := range written {
		if !ok {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d of %d rows missing: %w", missing, n, ErrIncompleteMerge)
	}
	return nil
}
