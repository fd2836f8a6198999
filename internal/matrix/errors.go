package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is not positive or rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare is returned when row data does not describe an N×N matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch marks operands of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadRange is returned by NewGenerator when low >= high.
	ErrBadRange = errors.New("matrix: empty value range")

	// ErrUnknownSeedMode is returned for a seed mode other than fixed or entropy.
	ErrUnknownSeedMode = errors.New("matrix: unknown seed mode")
)
