// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/RichardSartori/sudoku.
package grid

import (
	"errors"
	"fmt"
)

// MaxSide is the largest supported side length. CandidateSet is a 32-bit
// mask, one bit per digit, so 25 (the largest perfect square ≤ 32) is the
// ceiling.
const MaxSide = 25

// Sentinel errors for grid operations.
var (
	// ErrSideLength indicates the side length is not a perfect square in [1, MaxSide].
	ErrSideLength = errors.New("grid: side length must be a perfect square in [1,25]")
	// ErrCellCount indicates the value sequence length differs from side².
	ErrCellCount = errors.New("grid: value count must equal side*side")
	// ErrValueRange indicates a cell value outside [1, side] (0 marks an empty cell).
	ErrValueRange = errors.New("grid: cell value out of range")
	// ErrBadSymbol indicates an unrecognized character in a textual grid.
	ErrBadSymbol = errors.New("grid: unrecognized cell symbol")
	// ErrOutOfBounds indicates a row or column index outside the grid.
	ErrOutOfBounds = errors.New("grid: cell index out of bounds")
	// ErrConstraintViolation indicates a placement that duplicates a value
	// within a row, column, or box.
	ErrConstraintViolation = errors.New("grid: placement violates row/column/box uniqueness")
)

// Coord identifies a cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (p Coord) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Conflict records one broken uniqueness constraint: Value appears at both
// A and B within the same row, column, or box.
type Conflict struct {
	A, B  Coord
	Value int
}

// ConflictError is returned when a grid is constructed from values that
// already break a uniqueness constraint. It names the first conflicting
// pair so callers can diagnose the input, and matches
// ErrConstraintViolation under errors.Is.
type ConflictError struct {
	Conflict
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grid: value %d appears at both %s and %s", e.Value, e.A, e.B)
}

// Is reports ErrConstraintViolation as the sentinel this error refines.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConstraintViolation
}
