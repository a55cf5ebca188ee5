package scribblecolor

import (
	"github.com/scribblecolor/scribblecolor/internal/maxflow"
	"github.com/scribblecolor/scribblecolor/spatial"
)

// LabeledRect is one tile of a Colorize result: a leaf rect and the
// label the solver settled on for it. A full Colorize result's rects
// tile the canvas exactly — no gaps, no overlaps.
type LabeledRect struct {
	Rect  Rect
	Label Label
}

// node is one working-grid leaf flattened for the flow-graph build. It
// exists only for the duration of one Colorize call.
type node struct {
	leaf           spatial.CellID
	rect           Rect
	preferredLabel Label
	intensity      Intensity
	side           int64
	area           int64
	isBorderLeaf   bool
	connections    []nodeConnection
	wTerminal      int64
	wSmooth        int64
	computedLabel  Label
}

type nodeConnection struct {
	neighbor int
	shared   int64
}

// Colorize produces a final label for every working-grid leaf and
// returns the tiling as a list of labeled rects. It is deterministic and
// pure over the working grid's current state: two calls with no
// intervening mutation produce byte-for-byte identical output.
func (c *Context) Colorize(opts ...ColorizeOption) ([]LabeledRect, error) {
	if c.IsNull() {
		return nil, nil
	}
	options := defaultColorizeOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if !options.backgroundLabelSet {
		options.backgroundLabel = c.backgroundLabel
	}

	labels := distinctScribbleLabels(c.scribbles)

	switch {
	case len(labels) == 0, len(labels) == 1 && labels[0] == LabelUndefined:
		Logger().Warn("scribblecolor: colorize degenerate shortcut", "reason", "no scribbles")
		if options.useImplicitSurrounding {
			return []LabeledRect{{Rect: c.rect, Label: options.backgroundLabel}}, nil
		}
		return nil, nil
	case len(labels) == 1 && !options.useImplicitSurrounding:
		Logger().Warn("scribblecolor: colorize degenerate shortcut", "reason", "single label")
		return []LabeledRect{{Rect: c.rect, Label: labels[0]}}, nil
	}

	return c.colorizeMainPath(labels, options)
}

// distinctScribbleLabels returns every scribble's label, deduplicated,
// in first-appearance order.
func distinctScribbleLabels(scribbles []Scribble) []Label {
	var labels []Label
	seen := make(map[Label]bool)
	for _, s := range scribbles {
		l := s.Label()
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	return labels
}

func (c *Context) colorizeMainPath(labels []Label, options colorizeOptions) ([]LabeledRect, error) {
	// Step 1: freeze the topology.
	c.workingGrid.UpdateNeighbors(true)

	// Step 2: flatten.
	K := int64(2 * (c.rect.Width() + c.rect.Height()))
	nodes := c.flatten(K, options)

	// Step 3: the lazy-brush reduction.
	active := make([]int, len(nodes))
	for i := range active {
		active[i] = i
	}
	inActive := make([]bool, len(nodes))
	for i := range inActive {
		inActive[i] = true
	}
	processed := make(map[Label]bool, len(labels))

	for _, label := range labels {
		active = runRound(nodes, active, inActive, K, processed, label, options)
		processed[label] = true
		Logger().Info("scribblecolor: colorize round complete", "label", label, "remaining", len(active))
	}

	// Step 4: finalize.
	for _, idx := range active {
		if options.useImplicitSurrounding {
			nodes[idx].computedLabel = LabelImplicitSurrounding
		} else {
			nodes[idx].computedLabel = LabelUndefined
		}
	}

	out := make([]LabeledRect, len(nodes))
	for i, n := range nodes {
		label := n.computedLabel
		if label == LabelImplicitSurrounding {
			label = options.backgroundLabel
		}
		out[i] = LabeledRect{Rect: n.rect, Label: label}
	}
	return out, nil
}

// flatten walks the working grid's leaves in a fixed preorder and builds
// the dense node array Step 3 operates on, resolving each leaf's
// top/left neighbors to array indices as it goes.
func (c *Context) flatten(K int64, options colorizeOptions) []node {
	soft := K * int64(options.softScribblePercent) / 100

	var leaves []spatial.CellID
	c.workingGrid.VisitLeaves(func(id spatial.CellID) bool {
		leaves = append(leaves, id)
		return true
	})

	borderLeaves := make(map[spatial.CellID]bool)
	c.workingGrid.VisitBorderLeaves(func(id spatial.CellID) bool {
		borderLeaves[id] = true
		return true
	})

	idIndex := make(map[spatial.CellID]int, len(leaves))
	for i, id := range leaves {
		idIndex[id] = i
	}

	nodes := make([]node, len(leaves))
	for i, id := range leaves {
		data := c.workingGrid.Data(id)
		side := int64(c.workingGrid.Side(id))
		n := node{
			leaf:           id,
			rect:           fromSpatialRect(c.workingGrid.Rect(id)),
			preferredLabel: data.preferredLabel,
			intensity:      data.intensity,
			side:           side,
			area:           side * side,
			isBorderLeaf:   borderLeaves[id],
			computedLabel:  LabelUndefined,
		}
		n.wTerminal = soft * n.area
		n.wSmooth = 1 + K*int64(n.intensity)/255

		n.connections = c.collectConnections(id, side, idIndex)
		nodes[i] = n
	}
	return nodes
}

// collectConnections builds (neighbor_index, shared_border_length) pairs
// from id's top and left neighbors only — by the grid's symmetric
// neighbor contract, every undirected edge is found exactly once this
// way, from whichever endpoint looks up or left.
func (c *Context) collectConnections(id spatial.CellID, side int64, idIndex map[spatial.CellID]int) []nodeConnection {
	var conns []nodeConnection
	seen := make(map[spatial.CellID]bool)
	addSide := func(neighbors []spatial.CellID) {
		for _, neighborID := range neighbors {
			if seen[neighborID] {
				continue
			}
			seen[neighborID] = true
			neighborIdx, ok := idIndex[neighborID]
			if !ok {
				continue
			}
			neighborSide := int64(c.workingGrid.Side(neighborID))
			shared := side
			if neighborSide < shared {
				shared = neighborSide
			}
			conns = append(conns, nodeConnection{neighbor: neighborIdx, shared: shared})
		}
	}
	addSide(c.workingGrid.TopNeighbors(id))
	addSide(c.workingGrid.LeftNeighbors(id))
	return conns
}

// runRound builds one binary min-cut instance separating label from
// everything else, over the nodes still in active, and returns the
// shrunk active set with every SOURCE-segment node removed.
func runRound(nodes []node, active []int, inActive []bool, K int64, processed map[Label]bool, label Label, options colorizeOptions) []int {
	graph := maxflow.NewGraph(len(active)+1, len(active)*2)
	flowIndex := make(map[int]int, len(active))
	for _, idx := range active {
		flowIndex[idx] = graph.AddNode()
	}

	var surroundingNode int
	if options.useImplicitSurrounding {
		surroundingNode = graph.AddNode()
	}

	for _, idx := range active {
		n := &nodes[idx]
		fn := flowIndex[idx]

		if n.preferredLabel != LabelUndefined && !processed[n.preferredLabel] {
			if n.preferredLabel == label {
				graph.AddTweights(fn, n.wTerminal, 0)
			} else {
				graph.AddTweights(fn, 0, n.wTerminal)
			}
		}

		for _, conn := range n.connections {
			if !inActive[conn.neighbor] {
				continue
			}
			neighborFn, ok := flowIndex[conn.neighbor]
			if !ok {
				continue
			}
			neighbor := &nodes[conn.neighbor]
			graph.AddEdge(fn, neighborFn, n.wSmooth*conn.shared, neighbor.wSmooth*conn.shared)
		}

		if options.useImplicitSurrounding && n.isBorderLeaf {
			graph.AddEdge(fn, surroundingNode, n.wSmooth*n.side, (1+K)*n.side)
		}
	}

	if options.useImplicitSurrounding {
		graph.AddTweights(surroundingNode, 0, maxflow.Infinite)
	}

	graph.Maxflow()

	n := len(active)
	for i := 0; i < n; {
		idx := active[i]
		if graph.WhatSegment(flowIndex[idx]) == maxflow.SegmentSource {
			nodes[idx].computedLabel = label
			inActive[idx] = false
			active[i] = active[n-1]
			n--
			continue
		}
		i++
	}
	return active[:n]
}
