package scribblecolor

import "github.com/scribblecolor/scribblecolor/spatial"

// toSpatialPoint and fromSpatialPoint convert between this package's
// Point and spatial.Point, which are deliberately distinct types so the
// spatial package never depends on scribblecolor's coordinate system.
func toSpatialPoint(p Point) spatial.Point {
	return spatial.Point{X: p.X, Y: p.Y}
}

func fromSpatialPoint(p spatial.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func toSpatialRect(r Rect) spatial.Rect {
	return spatial.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func fromSpatialRect(r spatial.Rect) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
