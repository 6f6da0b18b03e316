package main

import (
	"visibility-planner/geom"
	"visibility-planner/search"
)

// Result is the -json output for one search.
type Result struct {
	Variant    string       `json:"variant"`
	Heuristic  string       `json:"heuristic"`
	Start      geom.Point   `json:"start"`
	Goal       geom.Point   `json:"goal"`
	Success    bool         `json:"success"`
	Path       []geom.Point `json:"path,omitempty"`
	Cost       int          `json:"cost,omitempty"`
	Steps      int          `json:"steps"`
	Expansions int          `json:"expansions"`
	Reopened   int          `json:"reopened,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// StepSummary is one replayed snapshot in -json -replay output.
type StepSummary struct {
	Step      int         `json:"step"`
	Next      *geom.Point `json:"next,omitempty"`
	Open      int         `json:"open"`
	Closed    int         `json:"closed"`
	Edges     int         `json:"consideredEdges"`
	BestScore *int        `json:"bestScore,omitempty"`
}

func newResult(p search.Pathfinder) Result {
	r := Result{
		Variant:   p.Variant().String(),
		Heuristic: p.Heuristic().String(),
		Start:     p.Start(),
		Goal:      p.Goal(),
		Steps:     p.History().Len(),
	}
	if e, ok := p.(interface{ Expansions() int }); ok {
		r.Expansions = e.Expansions()
	}
	if a, ok := p.(*search.AStarPathfinder); ok {
		r.Reopened = a.Reopened()
	}

	sol, ok := p.OptimalPath()
	if !ok {
		r.Message = "No path found"
		return r
	}
	r.Success = true
	r.Path = sol.Path
	r.Cost = sol.Cost
	return r
}

// replay walks the history from the first step and summarises each snapshot.
// The cursor is left on the last step.
func replay(p search.Pathfinder) []StepSummary {
	p.Reset()
	var steps []StepSummary
	for {
		s := p.State()
		summary := StepSummary{
			Step:   p.CurrentStep(),
			Open:   len(s.Open),
			Closed: len(s.Closed),
			Edges:  len(s.ConsideredEdges),
		}
		if next, ok := s.Next(); ok {
			summary.Next = &next
		}
		if score, ok := p.BestPathScore(); ok {
			summary.BestScore = &score
		}
		steps = append(steps, summary)

		if !p.StepForward() {
			return steps
		}
	}
}
