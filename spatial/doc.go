// Package spatial implements the adaptive space partition the colorizer
// is built on: a regular grid of quadtrees. Each quadtree coarsens
// homogeneous regions and refines near points of interest (line-art
// pixels, scribble boundaries), yielding a cell count proportional to the
// number of non-trivial regions in the canvas rather than to its pixel
// count.
//
// Cells live in an arena owned by the Grid (see the package-level
// CellID type) rather than behind individually heap-allocated pointers:
// children, parent, and neighbor references are all indices into that
// arena. This sidesteps the owning-cycle that a naive parent-pointer
// design would create (a child owns a back-reference to an owner) and
// keeps same-tree traversals cache-friendly.
package spatial
