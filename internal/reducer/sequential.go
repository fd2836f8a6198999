package reducer

import (
	"fmt"

	"github.com/tensorplex-labs/matsum/internal/matrix"
)

// RowKernel writes a[j]+b[j] into dst[j] for every column j. All three slices
// have the same length.
type RowKernel func(dst, a, b []int32)

// AddRows is the default kernel. Sums wrap on int32 overflow.
func AddRows(dst, a, b []int32) {
	for j := range dst {
		dst[j] = a[j] + b[j]
	}
}

// Sequential sets out = a + b cell by cell on the calling goroutine.
// Operands of different sizes are a programming error and panic.
func Sequential(a, b, out *matrix.Matrix) {
	sequential(a, b, out, AddRows)
}

func sequential(a, b, out *matrix.Matrix, kernel RowKernel) {
	mustSameSize(a, b, out)
	for i := range out.Size() {
		kernel(out.Row(i), a.Row(i), b.Row(i))
	}
}

func mustSameSize(ms ...*matrix.Matrix) {
	if err := matrix.SameSize(ms...); err != nil {
		panic(fmt.Errorf("reducer: %w", err))
	}
}
