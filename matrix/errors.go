// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (optionally wrapped with a call-site
// tag) and tests match them via errors.Is. No routine panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so it greps well in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the call site when context matters.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0)
	// or when input rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotAscending signals that an axis is not strictly ascending.
	ErrNotAscending = errors.New("matrix: values not strictly ascending")

	// ErrNonPositive signals a zero or negative value where only positive
	// values make sense (fermentation hours, yeast percentages).
	ErrNonPositive = errors.New("matrix: value must be positive")

	// ErrNotMonotone signals that a row increases somewhere, or never decreases.
	ErrNotMonotone = errors.New("matrix: row not monotonically non-increasing")
)

// matrixErrorf tags err with the failing operation and position.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
