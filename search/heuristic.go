package search

import (
	"fmt"
	"strings"

	"visibility-planner/geom"
)

// Heuristic estimates the remaining cost from a vertex to the goal.
type Heuristic int

const (
	Euclidean Heuristic = iota
	Manhattan
)

// Heuristics lists every available heuristic, in menu order.
var Heuristics = []Heuristic{Euclidean, Manhattan}

// Distance returns the estimate between two points
func (h Heuristic) Distance(from, to geom.Point) int {
	switch h {
	case Manhattan:
		return abs(to.X-from.X) + abs(to.Y-from.Y)
	default:
		return geom.Distance(from, to)
	}
}

func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "Manhattan"
	default:
		return "Euclidean"
	}
}

// ParseHeuristic accepts a heuristic name, case-insensitively
func ParseHeuristic(name string) (Heuristic, error) {
	for _, h := range Heuristics {
		if strings.EqualFold(name, h.String()) {
			return h, nil
		}
	}
	return Euclidean, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
