package geom

// Edge is an ordered pair of points. Direction matters for traversal only;
// intersection tests ignore it.
type Edge struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// E is shorthand for Edge{Start: a, End: b}.
func E(a, b Point) Edge {
	return Edge{Start: a, End: b}
}

// Reversed returns the edge with its endpoints swapped
func (e Edge) Reversed() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// Length is the truncated Euclidean length of the edge
func (e Edge) Length() int {
	return Distance(e.Start, e.End)
}

// ContainsPoint reports whether pt is collinear with the edge and lies within
// its axis-aligned bounding box, i.e. on the closed segment.
func (e Edge) ContainsPoint(pt Point) bool {
	cross := (pt.Y-e.Start.Y)*(e.End.X-e.Start.X) - (pt.X-e.Start.X)*(e.End.Y-e.Start.Y)
	if cross != 0 {
		return false
	}

	return pt.X >= min(e.Start.X, e.End.X) && pt.X <= max(e.Start.X, e.End.X) &&
		pt.Y >= min(e.Start.Y, e.End.Y) && pt.Y <= max(e.Start.Y, e.End.Y)
}

// SharesEndpoint reports whether the two edges have an endpoint in common
func (e Edge) SharesEndpoint(other Edge) bool {
	return e.Start == other.Start || e.Start == other.End ||
		e.End == other.Start || e.End == other.End
}

// Intersects reports whether the two edges cross. Edges sharing an endpoint
// never count as crossing. Collinear edges intersect when they overlap.
func (e Edge) Intersects(other Edge) bool {
	if e.SharesEndpoint(other) {
		return false
	}

	o1 := Orient(e.Start, e.End, other.Start)
	o2 := Orient(e.Start, e.End, other.End)
	o3 := Orient(other.Start, other.End, e.Start)
	o4 := Orient(other.Start, other.End, e.End)

	// Both edges on one line: fall back to containment
	if o1 == Collinear && o2 == Collinear {
		return e.ContainsPoint(other.Start) || e.ContainsPoint(other.End) ||
			other.ContainsPoint(e.Start) || other.ContainsPoint(e.End)
	}

	return o1 != o2 && o3 != o4
}
