package search

import (
	"fmt"
	"strings"

	"visibility-planner/board"
	"visibility-planner/geom"
)

// Variant selects a search strategy.
type Variant int

const (
	VisibilityGraph Variant = iota
	AStar
)

// Variants lists every strategy, in menu order.
var Variants = []Variant{VisibilityGraph, AStar}

// String is the display name
func (v Variant) String() string {
	switch v {
	case AStar:
		return "A*"
	default:
		return "Visibility Graph"
	}
}

// Key is the short machine name, used for flags and metric labels
func (v Variant) Key() string {
	switch v {
	case AStar:
		return "astar"
	default:
		return "visibility"
	}
}

// ParseVariant accepts either the key or the display name, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(name, v.Key()) || strings.EqualFold(name, v.String()) {
			return v, nil
		}
	}
	return VisibilityGraph, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// New runs a search with the chosen strategy.
func New(v Variant, b board.Board, start, goal geom.Point, h Heuristic) Pathfinder {
	switch v {
	case AStar:
		return NewAStarPathfinder(b, start, goal, h)
	default:
		return NewVisibilityGraphPathfinder(b, start, goal, h)
	}
}

// Switch runs the same problem with another strategy. The replay of the new
// pathfinder starts from the first step.
func Switch(p Pathfinder, v Variant) Pathfinder {
	return New(v, p.Board(), p.Start(), p.Goal(), p.Heuristic())
}
