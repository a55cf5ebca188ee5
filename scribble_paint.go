package scribblecolor

// PaintedScribble is a dense-raster Scribble backed by a pixel mask,
// suitable for an interactive brush tool: StampDisc paints a filled
// circle into the mask, ContainsPoint reads it directly, and
// ContourPoints walks the mask once to find its boundary pixels.
//
// The contour cache is invalidated by the next paint call, matching the
// Scribble interface's contract that ContourPoints is a pure function of
// the scribble's current state.
type PaintedScribble struct {
	label  Label
	bounds Rect
	mask   []bool // row-major, bounds.Width() x bounds.Height()

	contour      []Point
	contourValid bool
}

// NewPaintedScribble returns an empty scribble labeled label, with its
// mask initially sized to cover bounds. bounds grows automatically as
// later stamps extend past it (see growToContain); an empty, invalid
// bounds is a valid starting point for a scribble built up entirely by
// later strokes.
func NewPaintedScribble(label Label, bounds Rect) *PaintedScribble {
	s := &PaintedScribble{label: label, bounds: bounds}
	if bounds.IsValid() {
		s.mask = make([]bool, bounds.Width()*bounds.Height())
	}
	return s
}

func (s *PaintedScribble) index(p Point) (int, bool) {
	if !s.bounds.Contains(p) {
		return 0, false
	}
	w := s.bounds.Width()
	return (p.Y-s.bounds.Top)*w + (p.X - s.bounds.Left), true
}

// growToContain reallocates the mask to the union of bounds and r,
// copying the existing mask into the new one at its unchanged offset, so
// a stroke extending past bounds never loses paint. A no-op if r already
// lies within bounds. Mirrors the original brush's resizeImageToContain:
// every stamp unions its own footprint into the scribble's rect before
// painting, rather than clipping to a fixed canvas.
func (s *PaintedScribble) growToContain(r Rect) {
	if !r.IsValid() {
		return
	}
	if s.bounds.IsValid() && s.bounds.Contains(r.TopLeft()) && s.bounds.Contains(Point{X: r.Right, Y: r.Bottom}) {
		return
	}

	newBounds := s.bounds.Union(r)
	newMask := make([]bool, newBounds.Width()*newBounds.Height())
	if s.bounds.IsValid() {
		oldW := s.bounds.Width()
		newW := newBounds.Width()
		offsetX := s.bounds.Left - newBounds.Left
		offsetY := s.bounds.Top - newBounds.Top
		for y := 0; y < s.bounds.Height(); y++ {
			srcRow := y * oldW
			dstRow := (y+offsetY)*newW + offsetX
			copy(newMask[dstRow:dstRow+oldW], s.mask[srcRow:srcRow+oldW])
		}
	}

	s.bounds = newBounds
	s.mask = newMask
}

// StampDisc paints every pixel within radius of center (inclusive,
// measured as squared Euclidean distance) into the mask, growing bounds
// first if the disc extends past it.
func (s *PaintedScribble) StampDisc(center Point, radius int) {
	if radius < 0 {
		return
	}
	s.growToContain(Rect{
		Left: center.X - radius, Top: center.Y - radius,
		Right: center.X + radius, Bottom: center.Y + radius,
	})

	r2 := radius * radius
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			dx, dy := x-center.X, y-center.Y
			if dx*dx+dy*dy > r2 {
				continue
			}
			if idx, ok := s.index(Point{X: x, Y: y}); ok {
				s.mask[idx] = true
			}
		}
	}
	s.contourValid = false
}

// SetPixel paints or clears a single mask pixel directly, letting a
// caller build a scribble from an externally rasterized shape (e.g. an
// ingested mask image) rather than a sequence of disc/line strokes.
// Painting a pixel outside bounds grows it; clearing one outside bounds
// is a no-op, since there is nothing there to clear.
func (s *PaintedScribble) SetPixel(p Point, filled bool) {
	if filled {
		s.growToContain(Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y})
	}
	if idx, ok := s.index(p); ok {
		s.mask[idx] = filled
		s.contourValid = false
	}
}

// StampLine paints a disc of the given radius at every point on the
// segment from a to b, approximating a brush stroke dragged between two
// mouse positions.
func (s *PaintedScribble) StampLine(a, b Point, radius int) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		s.StampDisc(a, radius)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := Point{
			X: a.X + int(float64(dx)*t),
			Y: a.Y + int(float64(dy)*t),
		}
		s.StampDisc(p, radius)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Rect returns the scribble's current bounding rect, which grows as
// stamps extend past it.
func (s *PaintedScribble) Rect() Rect {
	return s.bounds
}

// Label returns the scribble's label.
func (s *PaintedScribble) Label() Label {
	return s.label
}

// ContainsPoint reads the mask directly.
func (s *PaintedScribble) ContainsPoint(p Point) bool {
	idx, ok := s.index(p)
	return ok && s.mask[idx]
}

// ContourPoints returns every filled pixel with at least one unfilled or
// out-of-bounds 4-neighbor, in row-major order. Cached until the next
// paint call.
func (s *PaintedScribble) ContourPoints() []Point {
	if s.contourValid {
		return s.contour
	}
	s.contour = s.contour[:0]
	if s.bounds.IsValid() {
		for y := s.bounds.Top; y <= s.bounds.Bottom; y++ {
			for x := s.bounds.Left; x <= s.bounds.Right; x++ {
				p := Point{X: x, Y: y}
				idx, _ := s.index(p)
				if !s.mask[idx] {
					continue
				}
				if s.isBoundaryPixel(p) {
					s.contour = append(s.contour, p)
				}
			}
		}
	}
	s.contourValid = true
	return s.contour
}

func (s *PaintedScribble) isBoundaryPixel(p Point) bool {
	neighbors := [4]Point{
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
	}
	for _, n := range neighbors {
		idx, ok := s.index(n)
		if !ok || !s.mask[idx] {
			return true
		}
	}
	return false
}
