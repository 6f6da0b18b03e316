package visgraph

import (
	"slices"

	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/internal/logging"
)

// Build constructs the visibility graph for the board's vertices plus start
// and goal. Every unordered pair is tested once, O(V^2 E) overall.
func Build(b board.Board, start, goal geom.Point) *Graph {
	vertices := b.Vertices()
	for _, p := range []geom.Point{start, goal} {
		if i, found := slices.BinarySearchFunc(vertices, p, geom.Compare); !found {
			vertices = slices.Insert(vertices, i, p)
		}
	}

	adjacency := make(map[geom.Point][]geom.Point, len(vertices))
	for _, v := range vertices {
		adjacency[v] = nil
	}

	logger := logging.Logger()
	totalPossibleEdges := len(vertices) * (len(vertices) - 1) / 2
	logger.Debug("building visibility graph",
		"polygons", b.Len(), "vertices", len(vertices), "pairs", totalPossibleEdges)

	// Vertices are sorted, so appending in (i, j) order keeps every
	// adjacency list sorted too.
	edgesAdded := 0
	for i, u := range vertices {
		for _, v := range vertices[i+1:] {
			if Visible(b, u, v) {
				adjacency[u] = append(adjacency[u], v)
				adjacency[v] = append(adjacency[v], u)
				edgesAdded++
			}
		}
	}

	logger.Debug("visibility graph built", "edges", edgesAdded)
	return &Graph{adjacency: adjacency, edges: edgesAdded}
}

// Visible determines if two points can see each other. Two vertices of the
// same polygon see each other only along a boundary edge; the first polygon
// in board order holding both decides. Any other pair is visible when no
// polygon blocks the segment.
func Visible(b board.Board, u, v geom.Point) bool {
	if u == v {
		return false
	}

	for _, p := range b.Polygons() {
		if p.HasVertex(u) && p.HasVertex(v) {
			return p.Adjacent(u, v)
		}
	}

	return !b.Blocks(u, v)
}
