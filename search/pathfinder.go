package search

import (
	"maps"
	"slices"

	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/internal/logging"
)

// Solution is a complete path from start to goal and its cost.
type Solution struct {
	Path []geom.Point
	Cost int
}

// Pathfinder is a finished search that can be replayed step by step.
//
// Constructors run the search eagerly; every method other than
// ChangeHeuristic only reads the recorded history or moves its cursor.
type Pathfinder interface {
	Variant() Variant
	Board() board.Board
	Start() geom.Point
	Goal() geom.Point
	Heuristic() Heuristic

	// OptimalPath is the path found by the search, if the goal is reachable.
	OptimalPath() (Solution, bool)
	OptimalPathScore() (int, bool)

	// State is the snapshot under the replay cursor.
	State() *SearchState
	Open() []geom.Point
	Closed() []geom.Point
	ConsideredEdges() []geom.Edge
	CurrentPaths() map[geom.Point][]geom.Point
	BestPathScore() (int, bool)
	BestCurrentPath() (CurrentPath, bool)

	History() *History
	CurrentStep() int
	TotalSteps() int
	StepForward() bool
	StepBack() bool
	JumpTo(step int) bool
	Reset()
	IsFinished() bool

	// ChangeHeuristic searches again with h and rewinds the replay.
	ChangeHeuristic(h Heuristic)

	// Clone returns a pathfinder sharing nothing mutable with the receiver.
	Clone() Pathfinder
}

// core holds what both variants share: the problem, the recorded history and
// the outcome.
type core struct {
	board     board.Board
	start     geom.Point
	goal      geom.Point
	heuristic Heuristic

	history  *History
	solution *Solution
	stats    stats
}

func newCore(b board.Board, start, goal geom.Point, h Heuristic) core {
	return core{board: b, start: start, goal: goal, heuristic: h}
}

// adopt takes over the outcome of a finished run and logs it.
func (c *core) adopt(variant Variant, r *run) {
	c.history = r.history
	c.solution = r.solution
	c.stats = r.stats

	observeSearch(variant, c.heuristic, c.stats, c.solution != nil)

	logger := logging.Logger().With(
		"variant", variant.String(),
		"heuristic", c.heuristic.String(),
		"start", c.start.String(),
		"goal", c.goal.String(),
	)
	if c.solution == nil {
		logger.Info("no path found",
			"expansions", c.stats.expansions,
			"steps", c.history.Len())
		return
	}
	logger.Info("path found",
		"cost", c.solution.Cost,
		"vertices", len(c.solution.Path),
		"expansions", c.stats.expansions,
		"reopened", c.stats.reopened,
		"steps", c.history.Len())
}

func (c *core) clone() core {
	cp := *c
	cp.history = c.history.Clone()
	if c.solution != nil {
		cp.solution = &Solution{Path: slices.Clone(c.solution.Path), Cost: c.solution.Cost}
	}
	return cp
}

func (c *core) Board() board.Board   { return c.board }
func (c *core) Start() geom.Point    { return c.start }
func (c *core) Goal() geom.Point     { return c.goal }
func (c *core) Heuristic() Heuristic { return c.heuristic }

func (c *core) OptimalPath() (Solution, bool) {
	if c.solution == nil {
		return Solution{}, false
	}
	return Solution{Path: slices.Clone(c.solution.Path), Cost: c.solution.Cost}, true
}

func (c *core) OptimalPathScore() (int, bool) {
	if c.solution == nil {
		return 0, false
	}
	return c.solution.Cost, true
}

// Expansions is the number of vertices the search expanded
func (c *core) Expansions() int { return c.stats.expansions }

func (c *core) State() *SearchState { return c.history.Current() }

func (c *core) Open() []geom.Point { return c.State().Open.Sorted() }

func (c *core) Closed() []geom.Point { return c.State().Closed.Sorted() }

func (c *core) ConsideredEdges() []geom.Edge { return c.State().ConsideredEdges.Sorted() }

func (c *core) CurrentPaths() map[geom.Point][]geom.Point {
	paths := maps.Clone(c.State().CurrentPaths)
	for v, p := range paths {
		paths[v] = slices.Clone(p)
	}
	return paths
}

// BestPathScore is the cost of the goal path in the current snapshot, once
// the replay has reached the point where the goal was found.
func (c *core) BestPathScore() (int, bool) {
	s := c.State()
	if s.BestPath == nil {
		return 0, false
	}
	return PathCost(s.BestPath), true
}

func (c *core) BestCurrentPath() (CurrentPath, bool) {
	return c.State().BestCurrentPath(c.goal)
}

func (c *core) History() *History { return c.history }
func (c *core) CurrentStep() int  { return c.history.Step() }
func (c *core) TotalSteps() int   { return c.history.TotalSteps() }
func (c *core) StepForward() bool { return c.history.Forward() }
func (c *core) StepBack() bool    { return c.history.Back() }
func (c *core) JumpTo(step int) bool {
	return c.history.JumpTo(step)
}
func (c *core) Reset()           { c.history.Reset() }
func (c *core) IsFinished() bool { return c.history.Finished() }
