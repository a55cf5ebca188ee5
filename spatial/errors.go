package spatial

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a point lies outside a grid's canvas.
var ErrOutOfBounds = errors.New("spatial: point outside canvas")

// InvalidCellSizeError is returned by NewGrid when cellSize is not a
// positive power of two.
type InvalidCellSizeError struct {
	CellSize int
}

func (e *InvalidCellSizeError) Error() string {
	return fmt.Sprintf("spatial: invalid cell size %d: must be a positive power of two", e.CellSize)
}
