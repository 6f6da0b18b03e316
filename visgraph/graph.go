// Package visgraph builds the visibility graph over obstacle vertices plus
// the start and goal points.
package visgraph

import (
	"slices"

	"visibility-planner/geom"
)

// Graph maps every vertex to the vertices it can see. It is symmetric by
// construction and never modified after Build returns.
type Graph struct {
	adjacency map[geom.Point][]geom.Point // neighbours sorted by geom.Compare
	edges     int
}

// Has reports whether v is a vertex of the graph
func (g *Graph) Has(v geom.Point) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Neighbors returns the vertices visible from v in a stable order
func (g *Graph) Neighbors(v geom.Point) []geom.Point {
	return slices.Clone(g.adjacency[v])
}

// Visible reports whether u and v are connected
func (g *Graph) Visible(u, v geom.Point) bool {
	_, found := slices.BinarySearchFunc(g.adjacency[u], v, geom.Compare)
	return found
}

// Vertices returns all vertices sorted by X then Y
func (g *Graph) Vertices() []geom.Point {
	vertices := make([]geom.Point, 0, len(g.adjacency))
	for v := range g.adjacency {
		vertices = append(vertices, v)
	}
	slices.SortFunc(vertices, geom.Compare)
	return vertices
}

// Len returns the number of vertices
func (g *Graph) Len() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Segments returns each undirected edge once, with Start ordered before End,
// for drawing.
func (g *Graph) Segments() []geom.Edge {
	segments := make([]geom.Edge, 0, g.edges)
	for _, v := range g.Vertices() {
		for _, n := range g.adjacency[v] {
			if v.Less(n) {
				segments = append(segments, geom.E(v, n))
			}
		}
	}
	return segments
}
