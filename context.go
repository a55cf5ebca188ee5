package scribblecolor

import (
	"github.com/scribblecolor/scribblecolor/spatial"
)

// noScribbleIndex marks a working leaf that no scribble has claimed.
// Distinct from LabelUndefined: this tracks which scribble set
// preferredLabel, for priority resolution during rasterization, not the
// label itself.
const noScribbleIndex = -1

// referenceCellData is the reference grid's payload: the canvas's
// original per-pixel intensity, fixed at construction.
type referenceCellData struct {
	intensity Intensity
}

// workingCellData is the working grid's payload.
type workingCellData struct {
	intensity      Intensity
	preferredLabel Label
	scribbleIndex  int
}

func defaultReferenceCellData() referenceCellData {
	return referenceCellData{intensity: IntensityMax}
}

func defaultWorkingCellData() workingCellData {
	return workingCellData{
		intensity:      IntensityMax,
		preferredLabel: LabelUndefined,
		scribbleIndex:  noScribbleIndex,
	}
}

// InputPoint is one sample fed into a Context at construction: a dark
// (or otherwise non-blank) canvas pixel and its intensity.
type InputPoint struct {
	Position  Point
	Intensity Intensity
}

// Context holds a canvas's two grids — an immutable reference grid and a
// scribble-refined working grid — plus the ordered scribble list that
// produced the working grid's current state.
//
// A Context is a single-owner aggregate: the caller must serialize
// mutation against reads, per the engine's single-threaded cooperative
// scheduling model. There is no internal locking.
type Context struct {
	referenceGrid   *spatial.Grid[referenceCellData]
	workingGrid     *spatial.Grid[workingCellData]
	scribbles       []Scribble
	rect            Rect
	cellSize        int
	backgroundLabel Label
}

// NewContext builds both grids over rect at the given cell size and
// inserts every input point into both. cellSize must be a positive power
// of two.
func NewContext(rect Rect, cellSize int, points []InputPoint) (*Context, error) {
	refGrid, err := spatial.NewGrid[referenceCellData](toSpatialRect(rect), cellSize)
	if err != nil {
		return nil, &InvalidCellSizeError{CellSize: cellSize}
	}
	workGrid, err := spatial.NewGrid[workingCellData](toSpatialRect(rect), cellSize)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		referenceGrid:   refGrid,
		workingGrid:     workGrid,
		rect:            fromSpatialRect(refGrid.CanvasRect()),
		cellSize:        cellSize,
		backgroundLabel: LabelImplicitSurrounding,
	}

	resetReferenceDefaults(ctx.referenceGrid, ctx.rect)
	resetWorkingDefaults(ctx.workingGrid, ctx.rect)

	for _, p := range points {
		if err := ctx.addInputPoint(p); err != nil {
			return nil, err
		}
	}
	Logger().Debug("scribblecolor: context constructed", "rect", rect, "cellSize", cellSize, "points", len(points))
	return ctx, nil
}

func (c *Context) addInputPoint(p InputPoint) error {
	refID, err := c.referenceGrid.AddPoint(toSpatialPoint(p.Position))
	if err != nil {
		return ErrOutOfBounds
	}
	c.referenceGrid.SetData(refID, referenceCellData{intensity: p.Intensity})

	workID, err := c.workingGrid.AddPoint(toSpatialPoint(p.Position))
	if err != nil {
		return ErrOutOfBounds
	}
	data := c.workingGrid.Data(workID)
	data.intensity = p.Intensity
	c.workingGrid.SetData(workID, data)
	return nil
}

// resetReferenceDefaults stamps referenceCellData's default sentinel
// value over every leaf of r. Only used at construction: the reference
// grid is immutable ground truth afterward and must never be reset by a
// scribble mutation.
func resetReferenceDefaults(refGrid *spatial.Grid[referenceCellData], r Rect) {
	refDefault := defaultReferenceCellData()
	refGrid.VisitRectLeaves(toSpatialRect(r), func(id spatial.CellID) bool {
		refGrid.SetData(id, refDefault)
		return true
	})
}

// resetWorkingDefaults stamps workingCellData's default sentinel value
// over every leaf of r — needed because a freshly allocated or cleared
// cell starts at T's zero value, and Label's zero value is a valid user
// label id rather than LabelUndefined.
func resetWorkingDefaults(workGrid *spatial.Grid[workingCellData], r Rect) {
	workDefault := defaultWorkingCellData()
	workGrid.VisitRectLeaves(toSpatialRect(r), func(id spatial.CellID) bool {
		workGrid.SetData(id, workDefault)
		return true
	})
}

// IsNull reports whether the context covers no canvas.
func (c *Context) IsNull() bool {
	return c == nil || c.referenceGrid.IsNull()
}

// Rect returns the canvas rect, rounded up to a multiple of CellSize.
func (c *Context) Rect() Rect {
	return c.rect
}

// CellSize returns the grid's top-level cell side.
func (c *Context) CellSize() int {
	return c.cellSize
}

// Scribbles returns the current scribble list. The returned slice must
// not be mutated by the caller.
func (c *Context) Scribbles() []Scribble {
	return c.scribbles
}

// BackgroundLabel returns the label Colorize reports for nodes resolved
// to the implicit surrounding, overriding the bare LabelImplicitSurrounding
// sentinel. Defaults to LabelImplicitSurrounding.
func (c *Context) BackgroundLabel() Label {
	return c.backgroundLabel
}

// SetBackgroundLabel overrides BackgroundLabel.
func (c *Context) SetBackgroundLabel(label Label) {
	c.backgroundLabel = label
}

// Clone deep-copies the context: both grids and the scribble list, so the
// copy can be mutated (new scribbles appended, Colorize called
// speculatively) without affecting the original. The cloned scribble
// slice aliases the same Scribble values — Scribble implementations are
// treated as immutable once appended, matching how rasterizeScribble only
// ever reads a scribble's Rect/Label/ContainsPoint/ContourPoints.
func (c *Context) Clone() *Context {
	clone := &Context{
		referenceGrid:   c.referenceGrid.Clone(),
		workingGrid:     c.workingGrid.Clone(),
		scribbles:       append([]Scribble(nil), c.scribbles...),
		rect:            c.rect,
		cellSize:        c.cellSize,
		backgroundLabel: c.backgroundLabel,
	}
	return clone
}

// Append adds s to the end of the scribble list and re-rasterizes its
// rect.
func (c *Context) Append(s Scribble) error {
	c.scribbles = append(c.scribbles, s)
	return c.clearAndAddScribblesIn(s.Rect())
}

// Insert adds s at index i, shifting later scribbles up, and
// re-rasterizes its rect.
func (c *Context) Insert(i int, s Scribble) error {
	if i < 0 || i > len(c.scribbles) {
		return &InvalidScribbleIndexError{Index: i, Len: len(c.scribbles)}
	}
	c.scribbles = append(c.scribbles, nil)
	copy(c.scribbles[i+1:], c.scribbles[i:])
	c.scribbles[i] = s
	return c.clearAndAddScribblesIn(s.Rect())
}

// Remove deletes the scribble at index i and re-rasterizes its former
// rect.
func (c *Context) Remove(i int) error {
	if i < 0 || i >= len(c.scribbles) {
		return &InvalidScribbleIndexError{Index: i, Len: len(c.scribbles)}
	}
	r := c.scribbles[i].Rect()
	c.scribbles = append(c.scribbles[:i], c.scribbles[i+1:]...)
	return c.clearAndAddScribblesIn(r)
}

// Replace swaps the scribble at index i for s and re-rasterizes the
// union of the old and new rects.
func (c *Context) Replace(i int, s Scribble) error {
	if i < 0 || i >= len(c.scribbles) {
		return &InvalidScribbleIndexError{Index: i, Len: len(c.scribbles)}
	}
	r := c.scribbles[i].Rect().Union(s.Rect())
	c.scribbles[i] = s
	return c.clearAndAddScribblesIn(r)
}

// clearAndAddScribblesIn resets the working grid within r to the
// reference grid's state (Phase A), then re-applies every scribble whose
// rect intersects r, highest index first (Phase B).
func (c *Context) clearAndAddScribblesIn(r Rect) error {
	adjusted := fromSpatialRect(c.workingGrid.AdjustedRect(toSpatialRect(r)))
	if !adjusted.IsValid() {
		return nil
	}
	sAdjusted := toSpatialRect(adjusted)

	// Phase A: reset.
	c.workingGrid.Clear(sAdjusted)
	resetWorkingDefaults(c.workingGrid, adjusted)
	c.reseedFromReference(adjusted)

	// Phase B: re-apply scribbles, most recent first.
	for i := len(c.scribbles) - 1; i >= 0; i-- {
		c.rasterizeScribble(i, adjusted)
	}

	Logger().Debug("scribblecolor: rasterized scribbles", "rect", adjusted, "scribbles", len(c.scribbles))
	return nil
}

// reseedFromReference re-inserts every 1x1 reference-grid leaf within r
// into the working grid, carrying over its intensity. This restores the
// dark-pixel skeleton that Phase A's Clear collapsed away.
func (c *Context) reseedFromReference(r Rect) {
	c.referenceGrid.VisitRectLeaves(toSpatialRect(r), func(id spatial.CellID) bool {
		if c.referenceGrid.Side(id) != 1 {
			return true
		}
		p := c.referenceGrid.Rect(id).TopLeft()
		if !r.Contains(fromSpatialPoint(p)) {
			return true
		}
		workID, err := c.workingGrid.AddPoint(p)
		if err != nil {
			return true
		}
		data := c.workingGrid.Data(workID)
		data.intensity = c.referenceGrid.Data(id).intensity
		c.workingGrid.SetData(workID, data)
		return true
	})
}

// rasterizeScribble applies scribble index i within r: first forcing
// refinement along its contour so the quadtree frontier lands exactly on
// the scribble's edge, then stamping preferredLabel over every leaf whose
// center the scribble contains.
func (c *Context) rasterizeScribble(i int, r Rect) {
	s := c.scribbles[i]
	if !s.Rect().Intersected(r).IsValid() {
		return
	}

	for _, p := range s.ContourPoints() {
		if !r.Contains(p) {
			continue
		}
		sp := toSpatialPoint(p)
		leaf := c.workingGrid.LeafCellAt(sp)
		if leaf == spatial.NilCell {
			continue
		}
		if c.workingGrid.Data(leaf).scribbleIndex > i {
			continue
		}
		if _, err := c.workingGrid.AddPoint(sp); err != nil {
			continue
		}
	}

	c.workingGrid.VisitRectLeaves(toSpatialRect(r), func(id spatial.CellID) bool {
		data := c.workingGrid.Data(id)
		if data.scribbleIndex > i {
			return true
		}
		center := fromSpatialPoint(c.workingGrid.Center(id))
		if !s.ContainsPoint(center) {
			return true
		}
		data.scribbleIndex = i
		data.preferredLabel = s.Label()
		c.workingGrid.SetData(id, data)
		return true
	})
}
