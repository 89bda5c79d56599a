package overlay

import "sort"

// Segment is a noded boundary segment feeding the overlay graph. The label's sides are relative to travelling from A to B. Segments must already be split at every mutual crossing so that segments meet in shared endpoints only.
type Segment struct {
	A, B  Point
	Label Label
}

// Graph is a planar graph of directed half-edges. Every segment is represented by two half-edges, one for each direction of travel, that are each other's sym. All half-edges sharing an origin form a node and are ordered counter clockwise by their outgoing direction. Half-edges live in an arena and refer to each other by index; the graph's topology is fixed after construction, only labels and result links change.
type Graph struct {
	edges []halfEdge
	nodes []int // one member edge per node, ordered by coordinate
}

type halfEdge struct {
	orig       Point
	sym        int
	rotNext    int
	resultNext int
	label      Label
	inResult   bool
}

// NewGraph builds the half-edge graph for the given noded segments. Segments of zero length are dropped. Node identity is exact coordinate equality; the noder must emit identical coordinates for segments that meet.
func NewGraph(segs []Segment) *Graph {
	g := &Graph{}
	rings := map[Point][]int{}
	for _, seg := range segs {
		if seg.A == seg.B {
			continue
		}
		e := len(g.edges)
		g.edges = append(g.edges,
			halfEdge{orig: seg.A, sym: e + 1, resultNext: -1, label: seg.Label},
			halfEdge{orig: seg.B, sym: e, resultNext: -1, label: seg.Label.flip()},
		)
		rings[seg.A] = append(rings[seg.A], e)
		rings[seg.B] = append(rings[seg.B], e+1)
	}

	origs := make([]Point, 0, len(rings))
	for p := range rings {
		origs = append(origs, p)
	}
	sort.Slice(origs, func(i, j int) bool {
		if origs[i].X != origs[j].X {
			return origs[i].X < origs[j].X
		}
		return origs[i].Y < origs[j].Y
	})

	for _, p := range origs {
		ring := rings[p]
		sort.Slice(ring, func(i, j int) bool {
			return g.angle(ring[i]) < g.angle(ring[j])
		})
		for i, e := range ring {
			g.edges[e].rotNext = ring[(i+1)%len(ring)]
		}
		g.nodes = append(g.nodes, ring[0])
	}
	return g
}

// angle returns the angle of the half-edge's outgoing direction.
func (g *Graph) angle(e int) float64 {
	return g.Dest(e).Sub(g.Orig(e)).Angle()
}

// NumEdges returns the number of half-edges, twice the number of non-degenerate segments.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Nodes returns one member half-edge per node. The other members follow from RotNext.
func (g *Graph) Nodes() []int {
	return g.nodes
}

// Orig returns the origin coordinate of the half-edge.
func (g *Graph) Orig(e int) Point {
	return g.edges[e].orig
}

// Dest returns the destination coordinate of the half-edge.
func (g *Graph) Dest(e int) Point {
	return g.edges[g.edges[e].sym].orig
}

// Sym returns the half-edge that travels the same segment in the opposite direction.
func (g *Graph) Sym(e int) int {
	return g.edges[e].sym
}

// RotNext returns the next half-edge counter clockwise around the origin of E. A node with a single edge is its own RotNext.
func (g *Graph) RotNext(e int) int {
	return g.edges[e].rotNext
}

// Label returns the label of the half-edge.
func (g *Graph) Label(e int) Label {
	return g.edges[e].label
}

// SetLabel sets the label of the half-edge.
func (g *Graph) SetLabel(e int, label Label) {
	g.edges[e].label = label
}

// InResult returns true if the half-edge is marked as bounding the result region.
func (g *Graph) InResult(e int) bool {
	return g.edges[e].inResult
}

// SetInResult marks the half-edge as bounding the result region, with the region on its right-hand side.
func (g *Graph) SetInResult(e int, inResult bool) {
	g.edges[e].inResult = inResult
}

// ResultNext returns the half-edge that continues the result ring after E, or -1 if E has not been linked.
func (g *Graph) ResultNext(e int) int {
	return g.edges[e].resultNext
}
