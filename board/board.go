// Package board models the obstacle set the planner searches around.
package board

import (
	"encoding/json"
	"slices"

	"visibility-planner/geom"
)

// Board is an ordered, immutable set of polygon obstacles. Polygon indices
// are stable for the lifetime of a Board value.
type Board struct {
	polygons []geom.Polygon
	index    *Index
}

// New creates a board from polygons in the given order
func New(polygons ...geom.Polygon) Board {
	polys := slices.Clone(polygons)
	return Board{
		polygons: polys,
		index:    NewIndex(polys),
	}
}

// Polygons returns the obstacles in board order
func (b Board) Polygons() []geom.Polygon {
	return slices.Clone(b.polygons)
}

// Polygon returns the i-th obstacle
func (b Board) Polygon(i int) geom.Polygon {
	return b.polygons[i]
}

// Len returns the number of obstacles
func (b Board) Len() int {
	return len(b.polygons)
}

// Vertices returns every polygon vertex once, sorted by X then Y
func (b Board) Vertices() []geom.Point {
	seen := make(map[geom.Point]struct{})
	vertices := make([]geom.Point, 0, b.VertexCount())
	for _, p := range b.polygons {
		for _, v := range p.Vertices() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vertices = append(vertices, v)
		}
	}
	slices.SortFunc(vertices, geom.Compare)
	return vertices
}

// Blocks reports whether any obstacle blocks the segment from-to.
func (b Board) Blocks(from, to geom.Point) bool {
	for _, i := range b.candidates(from, to) {
		if b.polygons[i].IntersectsSegment(from, to) {
			return true
		}
	}
	return false
}

// candidates returns indices of polygons whose bounding box touches the
// segment's. No other polygon can block it.
func (b Board) candidates(from, to geom.Point) []int {
	if b.index == nil {
		all := make([]int, len(b.polygons))
		for i := range all {
			all[i] = i
		}
		return all
	}
	return b.index.Query(from, to)
}

// Bounds finds the bounding box of all obstacles, rounded outwards to the
// nearest 100 for tick marks.
func (b Board) Bounds() (minX, minY, maxX, maxY int) {
	if b.VertexCount() == 0 {
		return 0, 0, 0, 0
	}

	first := true
	for _, p := range b.polygons {
		if p.Len() == 0 {
			continue
		}
		lo, hi := p.Bounds()
		if first {
			minX, minY, maxX, maxY = lo.X, lo.Y, hi.X, hi.Y
			first = false
			continue
		}
		minX = min(minX, lo.X)
		minY = min(minY, lo.Y)
		maxX = max(maxX, hi.X)
		maxY = max(maxY, hi.Y)
	}

	minX = (minX / 100) * 100
	minY = (minY / 100) * 100
	maxX = ((maxX + 99) / 100) * 100
	maxY = ((maxY + 99) / 100) * 100
	return minX, minY, maxX, maxY
}

// VertexCount returns the total number of vertices, shared ones counted
// once per polygon.
func (b Board) VertexCount() int {
	total := 0
	for _, p := range b.polygons {
		total += p.Len()
	}
	return total
}

// VerticesPerPolygon returns the vertex count of each obstacle in board order
func (b Board) VerticesPerPolygon() []int {
	counts := make([]int, len(b.polygons))
	for i, p := range b.polygons {
		counts[i] = p.Len()
	}
	return counts
}

// MarshalJSON encodes the board as {"polygons": [...]}
func (b Board) MarshalJSON() ([]byte, error) {
	polys := b.polygons
	if polys == nil {
		polys = []geom.Polygon{}
	}
	return json.Marshal(struct {
		Polygons []geom.Polygon `json:"polygons"`
	}{Polygons: polys})
}
