package search

import (
	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/internal/logging"
)

// AStarPathfinder is A* with successors generated on demand from the board
// vertices. A closed vertex reached through a cheaper path is moved back to
// OPEN and expanded again.
type AStarPathfinder struct {
	core
}

// NewAStarPathfinder searches b from start to goal.
func NewAStarPathfinder(b board.Board, start, goal geom.Point, h Heuristic) *AStarPathfinder {
	p := &AStarPathfinder{core: newCore(b, start, goal, h)}
	p.search()
	return p
}

func (p *AStarPathfinder) Variant() Variant { return AStar }

// Reopened is how many times the search moved a closed vertex back to OPEN
func (p *AStarPathfinder) Reopened() int { return p.stats.reopened }

func (p *AStarPathfinder) ChangeHeuristic(h Heuristic) {
	logging.Logger().Info("heuristic changed", "from", p.heuristic.String(), "to", h.String())
	p.heuristic = h
	p.search()
}

func (p *AStarPathfinder) Clone() Pathfinder {
	return &AStarPathfinder{core: p.clone()}
}

// successors lists the polygon vertices, then the goal, that v can reach
// without crossing an obstacle. Each point appears once, in board order.
func (p *AStarPathfinder) successors(v geom.Point) []geom.Point {
	var (
		out  []geom.Point
		seen = make(map[geom.Point]struct{})
	)
	for _, poly := range p.board.Polygons() {
		for _, w := range poly.Vertices() {
			if w == v {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			if !p.board.Blocks(v, w) {
				out = append(out, w)
				seen[w] = struct{}{}
			}
		}
	}

	if _, ok := seen[p.goal]; !ok && p.goal != v && !p.board.Blocks(v, p.goal) {
		out = append(out, p.goal)
	}
	return out
}

func (p *AStarPathfinder) search() {
	r := newRun(p.start, p.goal, p.heuristic)
	state := &r.state
	logger := logging.Logger()

	for {
		current, ok := r.queue.pop()
		if !ok {
			break
		}
		v := current.vertex
		if !state.Open.Has(v) || current.g != state.GScores[v] {
			continue
		}
		if v == p.goal {
			r.succeed(current.g)
			break
		}

		r.expand(v)
		for _, next := range p.successors(v) {
			tentative := current.g + geom.Distance(v, next)
			switch {
			case state.Open.Has(next):
				if tentative >= state.GScores[next] {
					continue
				}
			case state.Closed.Has(next):
				if tentative >= state.GScores[next] {
					continue
				}
				state.Closed.Remove(next)
				r.stats.reopened++
				logger.Debug("reopening vertex",
					"vertex", next.String(),
					"old_g", state.GScores[next],
					"new_g", tentative)
			}
			r.improve(v, next, tentative)
		}
	}

	r.finish()
	p.adopt(AStar, r)
}
