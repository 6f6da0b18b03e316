package search

import (
	"slices"

	"visibility-planner/geom"
)

// stats counts what a search did
type stats struct {
	expansions int
	reopened   int
}

// run is the mutable working state of one search. Both variants drive it;
// only successor generation and the reopening rule differ between them.
type run struct {
	goal      geom.Point
	heuristic Heuristic

	state   SearchState
	queue   *priorityQueue
	history *History
	stats   stats

	solution *Solution
}

func newRun(start, goal geom.Point, h Heuristic) *run {
	r := &run{
		goal:      goal,
		heuristic: h,
		state:     newSearchState(start),
		queue:     &priorityQueue{},
		history:   newHistory(),
	}
	r.queue.push(start, 0, h.Distance(start, goal))
	return r
}

// expand snapshots the state with v as the next vertex, then closes v.
func (r *run) expand(v geom.Point) {
	r.state.NextVertex = v
	r.state.HasNextVertex = true
	r.history.record(&r.state)
	r.stats.expansions++

	r.state.Open.Remove(v)
	r.state.Closed.Add(v)
}

// improve records a cheaper way of reaching to through from and queues it.
func (r *run) improve(from, to geom.Point, g int) {
	r.state.GScores[to] = g
	r.state.CameFrom[to] = from
	r.state.Open.Add(to)
	r.state.ConsideredEdges.Add(geom.E(from, to))

	path := make([]geom.Point, 0, len(r.state.CurrentPaths[from])+1)
	path = append(path, r.state.PathTo(from)...)
	r.state.CurrentPaths[to] = append(path, to)

	r.queue.push(to, g, r.heuristic.Distance(to, r.goal))
}

// succeed stores the path to the goal
func (r *run) succeed(g int) {
	path := r.state.PathTo(r.goal)
	r.state.BestPath = path
	r.solution = &Solution{Path: slices.Clone(path), Cost: g}
}

// finish appends the terminal snapshot
func (r *run) finish() {
	r.state.NextVertex = geom.Point{}
	r.state.HasNextVertex = false
	r.history.record(&r.state)
}
