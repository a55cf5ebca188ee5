package scribblecolor

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three error kinds named in the engine's error
// handling design.
var (
	// ErrOutOfBounds is returned when an operation references a point or
	// rect outside the canvas: NewContext returns it, with a nil Context,
	// for an input point outside the canvas. Scribble rasterization does
	// not return it; contour points outside the canvas are skipped, so
	// scribbles may extend past the canvas freely.
	ErrOutOfBounds = errors.New("scribblecolor: point or rect outside canvas")

	// ErrNullContext identifies the null-context error kind. Colorize
	// itself never returns it: calling Colorize on an uninitialized
	// (zero-rect) Context produces an empty result with a nil error,
	// the same "null result rather than failing loudly" convention
	// ErrOutOfBounds follows. It is exposed for callers building their
	// own operations on top of Context that want to signal the same
	// condition as an actual error.
	ErrNullContext = errors.New("scribblecolor: colorize on null context")

	// ErrSolverFailure identifies the min-cut solver failure kind. The
	// bundled internal/maxflow solver cannot fail, so Colorize never
	// returns it.
	ErrSolverFailure = errors.New("scribblecolor: min-cut solver failure")
)

// InvalidCellSizeError is returned by NewContext when cellSize is not a
// positive power of two.
type InvalidCellSizeError struct {
	CellSize int
}

func (e *InvalidCellSizeError) Error() string {
	return fmt.Sprintf("scribblecolor: invalid cell size %d: must be a positive power of two", e.CellSize)
}

// InvalidScribbleIndexError is returned by Context.Insert, Context.Remove,
// and Context.Replace when the supplied index is out of range for the
// current scribble list.
type InvalidScribbleIndexError struct {
	Index, Len int
}

func (e *InvalidScribbleIndexError) Error() string {
	return fmt.Sprintf("scribblecolor: scribble index %d out of range [0, %d)", e.Index, e.Len)
}
