package geom

import (
	"encoding/json"
	"slices"
)

// Polygon is a closed obstacle boundary. Vertex i is adjacent to i-1 and i+1
// (mod n). Polygons are immutable once built.
type Polygon struct {
	vertices []Point
}

// NewPolygon creates a polygon from its vertices in boundary order
func NewPolygon(vertices ...Point) Polygon {
	return Polygon{vertices: slices.Clone(vertices)}
}

// Vertices returns a copy of the polygon's vertices
func (p Polygon) Vertices() []Point {
	return slices.Clone(p.vertices)
}

// Len returns the number of vertices
func (p Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns the i-th vertex, wrapping around the boundary
func (p Polygon) Vertex(i int) Point {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Edges returns the boundary edges in order, closing back to vertex 0
func (p Polygon) Edges() []Edge {
	n := len(p.vertices)
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Edge{Start: p.vertices[i], End: p.vertices[(i+1)%n]})
	}
	return edges
}

// IndexOf returns the index of v in the boundary, or -1
func (p Polygon) IndexOf(v Point) int {
	return slices.Index(p.vertices, v)
}

// HasVertex reports whether v is one of the polygon's vertices
func (p Polygon) HasVertex(v Point) bool {
	return p.IndexOf(v) >= 0
}

// Adjacent reports whether u and v are neighbours along the boundary
func (p Polygon) Adjacent(u, v Point) bool {
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		a, b := p.vertices[i], p.vertices[(i+1)%n]
		if (a == u && b == v) || (a == v && b == u) {
			return true
		}
	}
	return false
}

// OnBoundary reports whether pt lies on any edge of the polygon
func (p Polygon) OnBoundary(pt Point) bool {
	for _, e := range p.Edges() {
		if e.ContainsPoint(pt) {
			return true
		}
	}
	return false
}

// ContainsPoint checks if a point is inside the polygon using ray casting.
// A point that coincides with a vertex is outside.
func (p Polygon) ContainsPoint(pt Point) bool {
	n := len(p.vertices)
	if n < 3 || p.HasVertex(pt) {
		return false
	}

	count := 0
	for i := 0; i < n; i++ {
		v1 := p.vertices[i]
		v2 := p.vertices[(i+1)%n]

		// Only edges straddling the horizontal line through pt can be hit
		if (v1.Y > pt.Y) != (v2.Y > pt.Y) {
			side := (pt.X-v1.X)*(v2.Y-v1.Y) - (v2.X-v1.X)*(pt.Y-v1.Y)
			if v2.Y > v1.Y {
				if side > 0 {
					count++
				}
			} else if side < 0 {
				count++
			}
		}
	}

	return count%2 == 1
}

// IntersectsSegment reports whether the segment a-b is blocked by this polygon.
func (p Polygon) IntersectsSegment(a, b Point) bool {
	edges := p.Edges()

	// Running along one of our own edges is never blocked
	for _, e := range edges {
		if e.ContainsPoint(a) && e.ContainsPoint(b) {
			return false
		}
	}

	segment := Edge{Start: a, End: b}
	for _, e := range edges {
		if segment.Intersects(e) {
			return true
		}
	}

	if !p.HasVertex(a) && p.ContainsPoint(a) {
		return true
	}
	if !p.HasVertex(b) && p.ContainsPoint(b) {
		return true
	}

	// Catches chords between two non-adjacent vertices, which cross no edge
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	if !p.OnBoundary(mid) && p.ContainsPoint(mid) {
		return true
	}

	return false
}

// Center is the integer mean of the vertices, used as a label anchor
func (p Polygon) Center() Point {
	n := len(p.vertices)
	if n == 0 {
		return Point{}
	}

	var x, y int
	for _, v := range p.vertices {
		x += v.X
		y += v.Y
	}
	return Point{X: x / n, Y: y / n}
}

// Bounds returns the axis-aligned bounding box of the polygon
func (p Polygon) Bounds() (minPt, maxPt Point) {
	if len(p.vertices) == 0 {
		return Point{}, Point{}
	}

	minPt, maxPt = p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		minPt.X = min(minPt.X, v.X)
		minPt.Y = min(minPt.Y, v.Y)
		maxPt.X = max(maxPt.X, v.X)
		maxPt.Y = max(maxPt.Y, v.Y)
	}
	return minPt, maxPt
}

// IsConvex reports whether every turn along the boundary has the same
// direction. Collinear turns are ignored.
func (p Polygon) IsConvex() bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}

	turn := Collinear
	for i := 0; i < n; i++ {
		o := Orient(p.vertices[i], p.vertices[(i+1)%n], p.vertices[(i+2)%n])
		if o == Collinear {
			continue
		}
		if turn == Collinear {
			turn = o
		} else if o != turn {
			return false
		}
	}
	return turn != Collinear
}

// MarshalJSON encodes the polygon as {"vertices": [...]}
func (p Polygon) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Vertices []Point `json:"vertices"`
	}{Vertices: p.vertices})
}

// UnmarshalJSON decodes the form written by MarshalJSON
func (p *Polygon) UnmarshalJSON(data []byte) error {
	var raw struct {
		Vertices []Point `json:"vertices"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.vertices = raw.Vertices
	return nil
}
