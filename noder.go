package overlay

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// nodePolygons splits the boundary segments of A and B at their mutual crossings and builds the overlay graph with fully labelled half-edges: a segment's own geometry sides follow from ring direction, the other geometry's location is found by a containment test of the segment midpoint. Collinear overlapping boundaries are not resolved.
func nodePolygons(a, b orb.Polygon) *Graph {
	segsA, segsB := polygonSegments(a), polygonSegments(b)
	cutsA := make([][]cut, len(segsA))
	cutsB := make([][]cut, len(segsB))
	for i, sa := range segsA {
		for j, sb := range segsB {
			if math.Max(sa[0].X, sa[1].X)+Epsilon < math.Min(sb[0].X, sb[1].X) ||
				math.Max(sb[0].X, sb[1].X)+Epsilon < math.Min(sa[0].X, sa[1].X) ||
				math.Max(sa[0].Y, sa[1].Y)+Epsilon < math.Min(sb[0].Y, sb[1].Y) ||
				math.Max(sb[0].Y, sb[1].Y)+Epsilon < math.Min(sa[0].Y, sa[1].Y) {
				continue
			}

			p, ta, tb, ok := intersectSegments(sa[0], sa[1], sb[0], sb[1])
			if !ok {
				continue
			}
			if Epsilon < ta && ta < 1.0-Epsilon {
				cutsA[i] = append(cutsA[i], cut{ta, p})
			}
			if Epsilon < tb && tb < 1.0-Epsilon {
				cutsB[j] = append(cutsB[j], cut{tb, p})
			}
		}
	}

	var segs []Segment
	segs = appendNodedSegments(segs, segsA, cutsA, 0, b)
	segs = appendNodedSegments(segs, segsB, cutsB, 1, a)
	return NewGraph(segs)
}

type cut struct {
	t float64
	p Point
}

// polygonSegments returns the directed boundary segments of the polygon with its interior on their left-hand side: the exterior ring counter clockwise and holes clockwise.
func polygonSegments(poly orb.Polygon) [][2]Point {
	var segs [][2]Point
	for i, ring := range poly {
		ps := make([]Point, len(ring))
		for j, p := range ring {
			ps[j] = toPoint(p)
		}
		if 0 < len(ps) && ps[0] != ps[len(ps)-1] {
			ps = append(ps, ps[0]) // implicitly closed
		}
		if (ring.Orientation() == orb.CCW) == (i != 0) {
			for j, k := 0, len(ps)-1; j < k; j, k = j+1, k-1 {
				ps[j], ps[k] = ps[k], ps[j]
			}
		}
		for j := 0; j+1 < len(ps); j++ {
			if ps[j] != ps[j+1] {
				segs = append(segs, [2]Point{ps[j], ps[j+1]})
			}
		}
	}
	return segs
}

// appendNodedSegments splits each raw segment at its cuts and labels the pieces for graph construction.
func appendNodedSegments(segs []Segment, raw [][2]Point, cuts [][]cut, geom int, other orb.Polygon) []Segment {
	for i, s := range raw {
		cs := cuts[i]
		sort.Slice(cs, func(k, l int) bool { return cs[k].t < cs[l].t })

		a := s[0]
		for k := 0; k <= len(cs); k++ {
			b := s[1]
			if k < len(cs) {
				b = cs[k].p
			}
			if a == b {
				continue
			}

			var label Label
			label.SetLocations(geom, Boundary, Interior, Exterior)
			loc := Exterior
			if planar.PolygonContains(other, fromPoint(a.Interpolate(b, 0.5))) {
				loc = Interior
			}
			label.SetLocations(1-geom, loc, loc, loc)
			segs = append(segs, Segment{A: a, B: b, Label: label})
			a = b
		}
	}
	return segs
}

// intersectSegments returns the crossing of segments a0-a1 and b0-b1 with the positions along both, or false if they do not cross. Parallel segments never cross. The crossing is snapped to a segment endpoint when it is within tolerance, so that segments meeting in a vertex share its exact coordinate.
func intersectSegments(a0, a1, b0, b1 Point) (Point, float64, float64, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	denom := da.PerpDot(db)
	if equal(denom, 0.0) {
		return Point{}, 0.0, 0.0, false
	}

	w := b0.Sub(a0)
	ta := w.PerpDot(db) / denom
	tb := w.PerpDot(da) / denom
	if ta < -Epsilon || 1.0+Epsilon < ta || tb < -Epsilon || 1.0+Epsilon < tb {
		return Point{}, 0.0, 0.0, false
	}

	var p Point
	if ta < Epsilon {
		p = a0
	} else if 1.0-Epsilon < ta {
		p = a1
	} else if tb < Epsilon {
		p = b0
	} else if 1.0-Epsilon < tb {
		p = b1
	} else {
		p = a0.Interpolate(a1, ta)
	}
	return p, ta, tb, true
}
