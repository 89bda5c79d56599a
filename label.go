package overlay

// Location is the position of a point or edge side relative to a region: in its interior, on its boundary, or in its exterior. The zero value is Unknown.
type Location int

const (
	Unknown Location = iota
	Interior
	Boundary
	Exterior
)

func (loc Location) String() string {
	switch loc {
	case Interior:
		return "i"
	case Boundary:
		return "b"
	case Exterior:
		return "e"
	}
	return "?"
}

// Side selects a position relative to a directed edge: on the edge itself, or the region to its left or right.
type Side int

const (
	SideOn Side = iota
	SideLeft
	SideRight
)

// Label records for each of the two input geometries where the edge and the regions on either side of it lie relative to that geometry. Sides are relative to the edge's direction of travel; the label of a half-edge and that of its sym describe the same segment with left and right swapped.
type Label struct {
	locs [2][3]Location
}

// Location returns the location for the given geometry and side.
func (l Label) Location(geom int, side Side) Location {
	return l.locs[geom][side]
}

// SetLocation sets the location for the given geometry and side.
func (l *Label) SetLocation(geom int, side Side, loc Location) {
	l.locs[geom][side] = loc
}

// SetLocations sets the on, left, and right locations for the given geometry at once.
func (l *Label) SetLocations(geom int, on, left, right Location) {
	l.locs[geom][SideOn] = on
	l.locs[geom][SideLeft] = left
	l.locs[geom][SideRight] = right
}

// HasLocation returns true if any location is known for the given geometry.
func (l Label) HasLocation(geom int) bool {
	return l.locs[geom][SideOn] != Unknown || l.locs[geom][SideLeft] != Unknown || l.locs[geom][SideRight] != Unknown
}

// flip returns the label as seen when travelling the edge in the opposite direction, ie. with left and right swapped.
func (l Label) flip() Label {
	for geom := 0; geom < 2; geom++ {
		l.locs[geom][SideLeft], l.locs[geom][SideRight] = l.locs[geom][SideRight], l.locs[geom][SideLeft]
	}
	return l
}

// merge copies the locations known in Q but unknown in L over to L. Locations known in both are kept as they are in L.
func (l *Label) merge(q Label) {
	for geom := 0; geom < 2; geom++ {
		for side := 0; side < 3; side++ {
			if l.locs[geom][side] == Unknown {
				l.locs[geom][side] = q.locs[geom][side]
			}
		}
	}
}

func (l Label) String() string {
	s := ""
	for geom := 0; geom < 2; geom++ {
		if geom != 0 {
			s += " "
		}
		s += l.locs[geom][SideLeft].String() + l.locs[geom][SideOn].String() + l.locs[geom][SideRight].String()
	}
	return s
}
