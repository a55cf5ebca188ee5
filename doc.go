// Package scribblecolor implements the core of an interactive lazy-brush
// image colorizer: a space-adaptive labeling engine that takes a line-art
// raster (a mostly-white canvas with darker line pixels) and a
// time-ordered list of user scribbles (closed filled regions, each tagged
// with a label) and produces, for every pixel of the canvas, a label that
// respects the scribbles and the barriers formed by the lines.
//
// # Overview
//
// The engine is a pipeline of pieces, implemented bottom-up:
//
//   - spatial.Grid — an adaptive space partition: a
//     grid of quadtrees that coarsens homogeneous regions and refines near
//     line pixels and scribble boundaries, yielding O(#non-trivial
//     regions) rather than O(#pixels) complexity, exposed as a planar
//     graph via neighbor resolution.
//   - Context — holds a reference grid (the canvas's dark pixels, built
//     once) and a working grid (refined and labeled as scribbles are
//     painted), converting scribbles into per-cell label preferences.
//   - Colorize — reduces multi-label segmentation to a sequence of binary
//     min-cut problems (the "lazy brush" reduction) via internal/maxflow,
//     and returns the final labeling as a list of non-overlapping rects.
//
// # Quick start
//
//	ctx, err := scribblecolor.NewContext(
//		scribblecolor.Rect{Left: 0, Top: 0, Right: 255, Bottom: 255},
//		32,
//		skeletonPoints, // dark line-art pixels, Intensity 0
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx.Append(myScribble) // implements the Scribble interface
//
//	rects, err := ctx.Colorize(scribblecolor.WithImplicitSurrounding(true))
//
// # Concurrency
//
// The engine is single-threaded and cooperative: Colorize and every grid
// mutation run to completion on the caller's goroutine. Callers who need
// a responsive UI should run Colorize on a worker goroutine and must
// serialize it with respect to scribble-list mutations; concurrent
// mutation during a Colorize call is not supported.
//
// # Scope
//
// Out of scope, by design: the user-facing window, event loop, palette,
// pan/zoom, image I/O, and line-art preprocessing (binarization and
// skeletonization) are external collaborators. The Scribble interface and
// the min-cut engine's interface (internal/maxflow) are the seams where
// callers and alternate solver implementations plug in.
package scribblecolor

// Version information.
const (
	// Version is the current version of the library.
	Version = "0.1.0"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0
)
