// Package overlay computes the topological overlay of two planar polygonal regions. It represents the noded boundaries as a half-edge graph, propagates per-geometry side labels around each node, and either links the labelled edges into the boundary rings of a boolean combination or evaluates the intersection area straight from the edges without constructing rings.
package overlay

import "github.com/paulmach/orb"

// Op is a boolean overlay operation on two regions.
type Op int

const (
	OpIntersection Op = iota
	OpUnion
	OpDifference
)

// contains returns true if a point with the given locations relative to both geometries lies in the result region of op. Boundary counts as inside.
func (op Op) contains(a, b Location) bool {
	aIn := a == Interior || a == Boundary
	bIn := b == Interior || b == Boundary
	switch op {
	case OpIntersection:
		return aIn && bIn
	case OpUnion:
		return aIn || bIn
	case OpDifference:
		return aIn && !bIn
	}
	panic("bug: unknown overlay operation")
}

// MarkResultEdges marks every half-edge that bounds the result region of op, ie. whose right-hand side is in the region and whose left-hand side is not. A half-edge and its sym are never both marked.
func (g *Graph) MarkResultEdges(op Op) {
	for e := range g.edges {
		label := g.edges[e].label
		inRight := op.contains(label.Location(0, SideRight), label.Location(1, SideRight))
		inLeft := op.contains(label.Location(0, SideLeft), label.Location(1, SideLeft))
		g.edges[e].inResult = inRight && !inLeft
	}
}

// labelAll propagates and merges the labels of every node.
func (g *Graph) labelAll() error {
	for _, nodeEdge := range g.nodes {
		if err := g.ComputeLabelling(nodeEdge); err != nil {
			return err
		}
	}
	for _, nodeEdge := range g.nodes {
		g.MergeSymLabels(nodeEdge)
	}
	return nil
}

// linkAll links the result edges of every node. A node where a result edge comes in but none goes out cannot close a ring.
func (g *Graph) linkAll() error {
	for _, nodeEdge := range g.nodes {
		start, incoming := -1, false
		e := nodeEdge
		for {
			if g.edges[e].inResult {
				start = e
				break
			}
			if g.edges[g.edges[e].sym].inResult {
				incoming = true
			}
			if e = g.RotNext(e); e == nodeEdge {
				break
			}
		}
		if start != -1 {
			if err := g.LinkResultEdges(start); err != nil {
				return err
			}
		} else if incoming {
			return &TopologyError{"no outgoing edge found", g.Orig(nodeEdge)}
		}
	}
	return nil
}

// Intersection returns the boundary rings of the region covered by both A and B.
func Intersection(a, b orb.Polygon) ([]orb.Ring, error) {
	return Overlay(a, b, OpIntersection)
}

// Union returns the boundary rings of the region covered by A or B.
func Union(a, b orb.Polygon) ([]orb.Ring, error) {
	return Overlay(a, b, OpUnion)
}

// Difference returns the boundary rings of the region covered by A but not by B.
func Difference(a, b orb.Polygon) ([]orb.Ring, error) {
	return Overlay(a, b, OpDifference)
}

// Overlay returns the boundary rings of the boolean combination op of A and B. Rings are clockwise with the result region on the right-hand side of travel; assembling shells and holes into polygons is left to the caller.
func Overlay(a, b orb.Polygon, op Op) ([]orb.Ring, error) {
	g := nodePolygons(a, b)
	if err := g.labelAll(); err != nil {
		return nil, err
	}
	g.MarkResultEdges(op)
	if err := g.linkAll(); err != nil {
		return nil, err
	}

	var rings []orb.Ring
	for _, ring := range g.ResultRings() {
		r := make(orb.Ring, len(ring))
		for i, p := range ring {
			r[i] = fromPoint(p)
		}
		rings = append(rings, r)
	}
	return rings, nil
}

// IntersectionArea returns the area of the region covered by both A and B without constructing its boundary rings.
func IntersectionArea(a, b orb.Polygon) (float64, error) {
	g := nodePolygons(a, b)
	if err := g.labelAll(); err != nil {
		return 0.0, err
	}
	return g.ResultArea(OpIntersection), nil
}

// Area returns the area of a simple closed ring, for either winding direction.
func Area(ring orb.Ring) float64 {
	ps := make([]Point, len(ring))
	for i, p := range ring {
		ps[i] = toPoint(p)
	}
	return RingArea(ps)
}

func toPoint(p orb.Point) Point {
	return Point{p[0], p[1]}
}

func fromPoint(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}
