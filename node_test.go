package overlay

import (
	"testing"

	"github.com/tdewolff/test"
)

// upperHalfStar is a four spoke star at the origin where geometry 0 is the upper half plane: the spokes along the x-axis are labelled with its boundary, the vertical spokes are unlabelled.
func upperHalfStar() []Segment {
	var east, west Label
	east.SetLocations(0, Boundary, Interior, Exterior)
	west.SetLocations(0, Boundary, Exterior, Interior)
	return []Segment{
		{A: Point{0.0, 0.0}, B: Point{1.0, 0.0}, Label: east},
		{A: Point{0.0, 0.0}, B: Point{0.0, 1.0}},
		{A: Point{0.0, 0.0}, B: Point{-1.0, 0.0}, Label: west},
		{A: Point{0.0, 0.0}, B: Point{0.0, -1.0}},
	}
}

func nodeAt(g *Graph, p Point) int {
	for _, nodeEdge := range g.Nodes() {
		if g.Orig(nodeEdge) == p {
			return nodeEdge
		}
	}
	panic("no node at coordinate")
}

func TestComputeLabelling(t *testing.T) {
	g := NewGraph(upperHalfStar())
	test.Error(t, g.ComputeLabelling(nodeAt(g, Point{0.0, 0.0})))

	north, south := g.Label(2), g.Label(6)
	test.T(t, north.Location(0, SideLeft), Interior)
	test.T(t, north.Location(0, SideRight), Interior)
	test.T(t, north.Location(0, SideOn), Interior)
	test.T(t, south.Location(0, SideLeft), Exterior)
	test.T(t, south.Location(0, SideRight), Exterior)
	test.T(t, south.Location(0, SideOn), Exterior)

	// geometry 1 has no labelled edge at this node and stays unknown
	test.T(t, north.HasLocation(1), false)
}

func TestComputeLabellingConflict(t *testing.T) {
	segs := upperHalfStar()
	var west Label
	west.SetLocations(0, Boundary, Interior, Exterior) // wrong way around
	segs[2].Label = west

	g := NewGraph(segs)
	err := g.ComputeLabelling(nodeAt(g, Point{0.0, 0.0}))
	test.T(t, err.Error(), "side location conflict at [0; 0]")
	terr, ok := err.(*TopologyError)
	test.That(t, ok)
	test.T(t, terr.Pos, Point{0.0, 0.0})
}

func TestComputeLabellingAbsent(t *testing.T) {
	g := NewGraph(starSegments())
	nodeEdge := nodeAt(g, Point{0.0, 0.0})
	test.Error(t, g.ComputeLabelling(nodeEdge))
	for e := 0; e < g.NumEdges(); e++ {
		test.T(t, g.Label(e).HasLocation(0), false)
		test.T(t, g.Label(e).HasLocation(1), false)
	}
}

func TestComputeLabellingDeterministic(t *testing.T) {
	g := NewGraph(upperHalfStar())
	test.Error(t, g.labelAll())
	labels := make([]Label, g.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		labels[e] = g.Label(e)
	}

	test.Error(t, g.labelAll())
	for e := 0; e < g.NumEdges(); e++ {
		test.T(t, g.Label(e), labels[e])
	}
}

func TestMergeSymLabels(t *testing.T) {
	g := NewGraph(upperHalfStar())
	center := nodeAt(g, Point{0.0, 0.0})
	test.Error(t, g.ComputeLabelling(center))

	// the sym of the north spoke is labelled only after merging
	test.T(t, g.Label(3).HasLocation(0), false)
	g.MergeSymLabels(center)
	sym := g.Label(3)
	test.T(t, sym.Location(0, SideLeft), Interior)
	test.T(t, sym.Location(0, SideRight), Interior)

	// merging again changes nothing
	g.MergeSymLabels(center)
	test.T(t, g.Label(3), sym)
}

// squareSegments is the CCW unit square with geometry 0's interior on the left.
func squareSegments() []Segment {
	var label Label
	label.SetLocations(0, Boundary, Interior, Exterior)
	return []Segment{
		{A: Point{0.0, 0.0}, B: Point{1.0, 0.0}, Label: label},
		{A: Point{1.0, 0.0}, B: Point{1.0, 1.0}, Label: label},
		{A: Point{1.0, 1.0}, B: Point{0.0, 1.0}, Label: label},
		{A: Point{0.0, 1.0}, B: Point{0.0, 0.0}, Label: label},
	}
}

func TestLinkResultEdges(t *testing.T) {
	g := NewGraph(squareSegments())
	for e := 1; e < g.NumEdges(); e += 2 {
		g.SetInResult(e, true) // the CW directions bound the square on their right
	}
	test.Error(t, g.linkAll())

	rings := g.ResultRings()
	test.T(t, len(rings), 1)
	test.T(t, len(rings[0]), 5)
	test.T(t, rings[0][0], rings[0][4])

	// linking in CCW node order produces a CW ring
	sum := 0.0
	for i := 0; i+1 < len(rings[0]); i++ {
		sum += rings[0][i].PerpDot(rings[0][i+1])
	}
	test.That(t, sum < 0.0)
}

func TestLinkResultEdgesIdempotent(t *testing.T) {
	g := NewGraph(squareSegments())
	for e := 1; e < g.NumEdges(); e += 2 {
		g.SetInResult(e, true)
	}
	test.Error(t, g.linkAll())

	links := make([]int, g.NumEdges())
	for e := 0; e < g.NumEdges(); e++ {
		links[e] = g.ResultNext(e)
	}

	test.Error(t, g.LinkResultEdges(1))
	for e := 0; e < g.NumEdges(); e++ {
		test.T(t, g.ResultNext(e), links[e])
	}
}

func TestLinkResultEdgesMissingOutgoing(t *testing.T) {
	g := NewGraph(squareSegments())
	g.SetInResult(1, true) // an in-edge at [0; 0] without an outgoing result edge
	err := g.linkAll()
	test.T(t, err.Error(), "no outgoing edge found at [0; 0]")
}
