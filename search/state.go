package search

import (
	"maps"
	"slices"

	"visibility-planner/geom"
)

// PointSet is a set of vertices.
type PointSet map[geom.Point]struct{}

// NewPointSet creates a set holding the given points
func NewPointSet(points ...geom.Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

func (s PointSet) Has(p geom.Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Add(p geom.Point) { s[p] = struct{}{} }

func (s PointSet) Remove(p geom.Point) { delete(s, p) }

// Sorted returns the members ordered by X then Y
func (s PointSet) Sorted() []geom.Point {
	points := make([]geom.Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	slices.SortFunc(points, geom.Compare)
	return points
}

// EdgeSet is a set of directed edges.
type EdgeSet map[geom.Edge]struct{}

func (s EdgeSet) Has(e geom.Edge) bool {
	_, ok := s[e]
	return ok
}

func (s EdgeSet) Add(e geom.Edge) { s[e] = struct{}{} }

// Sorted returns the members ordered by start, then end
func (s EdgeSet) Sorted() []geom.Edge {
	edges := make([]geom.Edge, 0, len(s))
	for e := range s {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b geom.Edge) int {
		if c := geom.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return geom.Compare(a.End, b.End)
	})
	return edges
}

// SearchState is everything a viewer needs to draw one moment of a search.
// Snapshots never share mutable storage; use Clone to copy one.
type SearchState struct {
	Open   PointSet
	Closed PointSet

	// CurrentPaths holds the best known path from start to each reached vertex.
	CurrentPaths map[geom.Point][]geom.Point

	// BestPath is the path to the goal, set once the goal has been reached.
	BestPath []geom.Point

	ConsideredEdges EdgeSet

	// NextVertex is the vertex about to be expanded, valid when HasNextVertex.
	NextVertex    geom.Point
	HasNextVertex bool

	GScores  map[geom.Point]int
	CameFrom map[geom.Point]geom.Point
}

// newSearchState is the state before anything is expanded
func newSearchState(start geom.Point) SearchState {
	return SearchState{
		Open:            NewPointSet(start),
		Closed:          NewPointSet(),
		CurrentPaths:    map[geom.Point][]geom.Point{start: {start}},
		ConsideredEdges: make(EdgeSet),
		NextVertex:      start,
		HasNextVertex:   true,
		GScores:         map[geom.Point]int{start: 0},
		CameFrom:        make(map[geom.Point]geom.Point),
	}
}

// Clone returns a deep copy of the state
func (s *SearchState) Clone() SearchState {
	paths := make(map[geom.Point][]geom.Point, len(s.CurrentPaths))
	for v, p := range s.CurrentPaths {
		paths[v] = slices.Clone(p)
	}

	return SearchState{
		Open:            maps.Clone(s.Open),
		Closed:          maps.Clone(s.Closed),
		CurrentPaths:    paths,
		BestPath:        slices.Clone(s.BestPath),
		ConsideredEdges: maps.Clone(s.ConsideredEdges),
		NextVertex:      s.NextVertex,
		HasNextVertex:   s.HasNextVertex,
		GScores:         maps.Clone(s.GScores),
		CameFrom:        maps.Clone(s.CameFrom),
	}
}

// Next returns the vertex about to be expanded, if any
func (s *SearchState) Next() (geom.Point, bool) {
	return s.NextVertex, s.HasNextVertex
}

// PathTo follows parent pointers back from v and returns the path from the
// start to v.
func (s *SearchState) PathTo(v geom.Point) []geom.Point {
	path := []geom.Point{v}
	current := v
	// Parent g-scores are strictly lower, so the chain cannot loop; the
	// bound only guards against a corrupted map.
	for i := 0; i < len(s.CameFrom); i++ {
		prev, ok := s.CameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}

	slices.Reverse(path)
	return path
}

// CurrentPath is a partial path together with its cost and the straight
// line distance left to the goal.
type CurrentPath struct {
	Path   []geom.Point
	Score  int
	ToGoal int
}

// BestCurrentPath picks, among partial paths of at least two points, the one
// whose end is closest to goal. Ties go to the lower end point.
func (s *SearchState) BestCurrentPath(goal geom.Point) (CurrentPath, bool) {
	var (
		best  CurrentPath
		end   geom.Point
		found bool
	)

	for target, path := range s.CurrentPaths {
		if len(path) < 2 {
			continue
		}
		d := geom.Distance(target, goal)
		if !found || d < best.ToGoal || (d == best.ToGoal && target.Less(end)) {
			best = CurrentPath{Path: path, ToGoal: d}
			end = target
			found = true
		}
	}
	if !found {
		return CurrentPath{}, false
	}

	best.Path = slices.Clone(best.Path)
	best.Score = PathCost(best.Path)
	return best, true
}

// PathCost sums geom.Distance over consecutive points
func PathCost(path []geom.Point) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += geom.Distance(path[i-1], path[i])
	}
	return cost
}
