package search

import (
	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/internal/logging"
	"visibility-planner/visgraph"
)

// VisibilityGraphPathfinder runs A* over a visibility graph built once up
// front. A vertex is expanded at most once.
type VisibilityGraphPathfinder struct {
	core
	graph *visgraph.Graph
}

// NewVisibilityGraphPathfinder builds the visibility graph for b with start
// and goal added, then searches it.
func NewVisibilityGraphPathfinder(b board.Board, start, goal geom.Point, h Heuristic) *VisibilityGraphPathfinder {
	graph := visgraph.Build(b, start, goal)
	visibilityEdges.Observe(float64(graph.EdgeCount()))
	logging.Logger().Debug("visibility graph built",
		"vertices", graph.Len(),
		"edges", graph.EdgeCount())

	p := &VisibilityGraphPathfinder{
		core:  newCore(b, start, goal, h),
		graph: graph,
	}
	p.search()
	return p
}

func (p *VisibilityGraphPathfinder) Variant() Variant { return VisibilityGraph }

// Graph is the visibility graph the search ran on. It is never modified.
func (p *VisibilityGraphPathfinder) Graph() *visgraph.Graph { return p.graph }

func (p *VisibilityGraphPathfinder) ChangeHeuristic(h Heuristic) {
	logging.Logger().Info("heuristic changed", "from", p.heuristic.String(), "to", h.String())
	p.heuristic = h
	p.search()
}

func (p *VisibilityGraphPathfinder) Clone() Pathfinder {
	return &VisibilityGraphPathfinder{core: p.clone(), graph: p.graph}
}

func (p *VisibilityGraphPathfinder) search() {
	r := newRun(p.start, p.goal, p.heuristic)
	state := &r.state

	for {
		current, ok := r.queue.pop()
		if !ok {
			break
		}
		v := current.vertex
		if state.Closed.Has(v) || current.g != state.GScores[v] {
			continue
		}
		if v == p.goal {
			r.succeed(current.g)
			break
		}

		r.expand(v)
		for _, next := range p.graph.Neighbors(v) {
			if state.Closed.Has(next) {
				continue
			}
			tentative := current.g + geom.Distance(v, next)
			if g, seen := state.GScores[next]; seen && tentative >= g {
				continue
			}
			r.improve(v, next, tentative)
		}
	}

	r.finish()
	p.adopt(VisibilityGraph, r)
}
