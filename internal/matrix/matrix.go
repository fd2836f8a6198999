// Package matrix holds the square int32 matrix used by the reducers, together
// with its random generator and text printer.
package matrix

import (
	"fmt"
	"slices"
)

// Matrix is a square N×N matrix of int32 values stored row-major in one flat
// slice. The size is bound at construction and never changes.
type Matrix struct {
	n    int
	data []int32
}

// New returns a zeroed n×n matrix.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("new %d×%d: %w", n, n, ErrBadShape)
	}
	return &Matrix{n: n, data: make([]int32, n*n)}, nil
}

// MustNew is New for sizes already validated by the caller.
func MustNew(n int) *Matrix {
	m, err := New(n)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows copies rows into a new matrix. Every row must have len(rows) elements.
func FromRows(rows [][]int32) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("from rows: %w", ErrBadShape)
	}
	m := &Matrix{n: n, data: make([]int32, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("from rows: row %d has %d columns, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// Row returns row i as a subslice of the backing storage. Writes through the
// returned slice mutate the matrix.
func (m *Matrix) Row(i int) []int32 {
	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// SetRow copies row into position i.
func (m *Matrix) SetRow(i int, row []int32) error {
	if i < 0 || i >= m.n {
		return fmt.Errorf("set row %d: %w", i, ErrOutOfRange)
	}
	if len(row) != m.n {
		return fmt.Errorf("set row %d: got %d columns, want %d: %w", i, len(row), m.n, ErrDimensionMismatch)
	}
	copy(m.Row(i), row)
	return nil
}

// At returns the value at (i, j).
func (m *Matrix) At(i, j int) (int32, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("at (%d,%d): %w", i, j, ErrOutOfRange)
	}
	return m.data[i*m.n+j], nil
}

// Set stores v at (i, j).
func (m *Matrix) Set(i, j int, v int32) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("set (%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.data[i*m.n+j] = v
	return nil
}

// Rows returns a copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]int32 {
	out := make([][]int32, m.n)
	for i := range m.n {
		out[i] = slices.Clone(m.Row(i))
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{n: m.n, data: slices.Clone(m.data)}
}

// Equal reports whether both matrices have the same size and cells.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.n == other.n && slices.Equal(m.data, other.data)
}

// SameSize returns ErrDimensionMismatch unless every matrix is non-nil and has
// the size of the first one.
func SameSize(ms ...*Matrix) error {
	if len(ms) == 0 {
		return nil
	}
	for i, m := range ms {
		if m == nil {
			return fmt.Errorf("operand %d is nil: %w", i, ErrDimensionMismatch)
		}
		if m.n != ms[0].n {
			return fmt.Errorf("operand %d is %d×%d, want %d×%d: %w", i, m.n, m.n, ms[0].n, ms[0].n, ErrDimensionMismatch)
		}
	}
	return nil
}
