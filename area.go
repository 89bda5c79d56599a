package overlay

// areaTerm returns the contribution of the directed segment from p0 to p1 to twice the area of the region it bounds, with the region on its right-hand side if interiorToRight. Summing the term of every boundary segment in both directions, with the flag flipped for the reverse direction, gives twice the region's area. The terms of a segment pair are the same whichever direction the ring is stored in, so the stored winding does not matter.
func areaTerm(p0, p1 Point, interiorToRight bool) float64 {
	d := p1.Sub(p0)
	length := d.Length()
	if length == 0.0 {
		return 0.0
	}
	u := d.Div(length)

	// unit normal pointing into the region
	var n Point
	if interiorToRight {
		n = u.Rot90CW()
	} else {
		n = u.Rot90CCW()
	}
	return p0.Dot(u) * p0.Dot(n)
}

// RingArea returns the area of a simple closed ring given by its coordinates, for either winding direction. The ring may but need not repeat its first coordinate at the end.
func RingArea(ring []Point) float64 {
	n := len(ring)
	if 0 < n && ring[0] == ring[n-1] {
		n--
	}
	if n < 3 {
		return 0.0
	}

	// winding from the signed shoelace sum
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += ring[i].PerpDot(ring[(i+1)%n])
	}
	isCW := sum < 0.0

	area := 0.0
	for i := 0; i < n; i++ {
		p0, p1 := ring[i], ring[(i+1)%n]
		area += areaTerm(p0, p1, isCW) + areaTerm(p1, p0, !isCW)
	}
	return area / 2.0
}

// ResultArea returns the area of the result region of op straight from the labelled half-edges, without linking or constructing result rings. It sums the area terms of the half-edges that bound the result region with the region on their right-hand side, using the exact noded coordinates.
func (g *Graph) ResultArea(op Op) float64 {
	area := 0.0
	for e := range g.edges {
		label := g.edges[e].label
		inRight := op.contains(label.Location(0, SideRight), label.Location(1, SideRight))
		inLeft := op.contains(label.Location(0, SideLeft), label.Location(1, SideLeft))
		if inRight && !inLeft {
			orig, dest := g.Orig(e), g.Dest(e)
			area += areaTerm(orig, dest, true) + areaTerm(dest, orig, false)
		}
	}
	return area / 2.0
}
