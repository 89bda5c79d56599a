package overlay

import "fmt"

// TopologyError is returned when the labels or result edges of the overlay graph are inconsistent, which means the noded input cannot be trusted. It carries the offending coordinate.
type TopologyError struct {
	Msg string
	Pos Point
}

func (err *TopologyError) Error() string {
	return fmt.Sprintf("%s at %v", err.Msg, err.Pos)
}

// ComputeLabelling scans the ring of half-edges around the node of nodeEdge counter clockwise and propagates the known side locations of both geometries to the edges with unknown locations. The two geometries are propagated independently.
func (g *Graph) ComputeLabelling(nodeEdge int) error {
	if err := g.propagateSideLabels(nodeEdge, 0); err != nil {
		return err
	}
	return g.propagateSideLabels(nodeEdge, 1)
}

// propagateSideLabels walks the node ring CCW from an edge labelled for the geometry. Between two labelled edges there is exactly one region of the geometry, so unlabelled edges in between take on the location the walk is currently in. A labelled edge must agree on its right side with the current location and moves the walk to its left side.
func (g *Graph) propagateSideLabels(nodeEdge, geom int) error {
	eStart := g.findPropagationStart(nodeEdge, geom)
	if eStart == -1 {
		// no labelled edge, the geometry is absent from this node
		return nil
	}

	currLoc := g.edges[eStart].label.Location(geom, SideLeft)
	for e := g.RotNext(eStart); e != eStart; e = g.RotNext(e) {
		label := &g.edges[e].label
		if !label.HasLocation(geom) {
			label.SetLocations(geom, currLoc, currLoc, currLoc)
		} else {
			if locRight := label.Location(geom, SideRight); locRight != currLoc {
				return &TopologyError{"side location conflict", g.Orig(e)}
			}
			locLeft := label.Location(geom, SideLeft)
			if locLeft == Unknown {
				panic(fmt.Sprintf("bug: single unknown side at %v", g.Orig(e)))
			}
			currLoc = locLeft
		}
	}
	return nil
}

// findPropagationStart returns a half-edge in the node ring of nodeEdge that has a location for the geometry, or -1 if there is none.
func (g *Graph) findPropagationStart(nodeEdge, geom int) int {
	e := nodeEdge
	for {
		if g.edges[e].label.HasLocation(geom) {
			return e
		}
		if e = g.RotNext(e); e == nodeEdge {
			return -1
		}
	}
}

// MergeSymLabels completes the labels of the half-edges around the node of nodeEdge with the locations known on their syms. Both directions of a segment describe the same line, so a location discovered for one direction holds for the other with left and right swapped.
func (g *Graph) MergeSymLabels(nodeEdge int) {
	e := nodeEdge
	for {
		sym := g.edges[e].sym
		g.edges[e].label.merge(g.edges[sym].label.flip())
		g.edges[sym].label.merge(g.edges[e].label.flip())
		if e = g.RotNext(e); e == nodeEdge {
			break
		}
	}
}

type linkState int

const (
	findIncoming linkState = iota
	linkOutgoing
)

// LinkResultEdges links the result edges at the node of nodeEdge by setting the result link of every incoming result edge to the next outgoing result edge counter clockwise. The node edge must be in the result and is linked last, closing the cycle. Linking in CCW order puts the bounded face on the right-hand side of each edge, so that fully linked result rings are clockwise; downstream ring assembly relies on this to tell shells from holes. Returns early if the node was linked before.
func (g *Graph) LinkResultEdges(nodeEdge int) error {
	if !g.edges[nodeEdge].inResult {
		panic("bug: attempt to link non-result edge")
	}
	if g.edges[g.edges[nodeEdge].sym].inResult {
		panic("bug: both half-edges of a segment in result")
	}

	endOut := g.RotNext(nodeEdge)
	currOut := endOut
	state := findIncoming
	currResultIn := -1
	for {
		// an already linked in-edge means this node was processed before
		if currResultIn != -1 && g.edges[currResultIn].resultNext != -1 {
			return nil
		}

		switch state {
		case findIncoming:
			if currIn := g.edges[currOut].sym; g.edges[currIn].inResult {
				currResultIn = currIn
				state = linkOutgoing
			}
		case linkOutgoing:
			if g.edges[currOut].inResult {
				g.edges[currResultIn].resultNext = currOut
				state = findIncoming
			}
		}
		if currOut = g.RotNext(currOut); currOut == endOut {
			break
		}
	}
	if state == linkOutgoing {
		return &TopologyError{"no outgoing edge found", g.Orig(nodeEdge)}
	}
	return nil
}
