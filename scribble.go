package scribblecolor

// Scribble is a labeled, filled 2D region painted by the user. A
// Context never inspects a scribble's storage representation — only
// these four operations.
type Scribble interface {
	// Rect returns a bounding box for the scribble. It need not be tight,
	// but every point where ContainsPoint is true must lie within it.
	Rect() Rect

	// Label returns the scribble's label.
	Label() Label

	// ContainsPoint is the authoritative inside/outside test.
	ContainsPoint(p Point) bool

	// ContourPoints returns the scribble's one-pixel-wide outline. May be
	// computed lazily and cached; a Context treats it as a pure function
	// of the scribble's current state.
	ContourPoints() []Point
}
