package overlay

// ResultRings follows the result links of all result edges and returns the coordinate rings they form. Every ring is closed, its first coordinate repeated at the end, and is oriented clockwise with the result region on the right-hand side of travel. The graph must have been fully linked.
func (g *Graph) ResultRings() [][]Point {
	var rings [][]Point
	visited := make([]bool, len(g.edges))
	for e0 := range g.edges {
		if !g.edges[e0].inResult || visited[e0] {
			continue
		}

		var ring []Point
		for e := e0; ; {
			visited[e] = true
			ring = append(ring, g.Orig(e))
			if e = g.edges[e].resultNext; e == -1 {
				panic("bug: result ring not closed")
			} else if e == e0 {
				break
			}
		}
		ring = append(ring, ring[0])
		rings = append(rings, ring)
	}
	return rings
}
