package search

import "errors"

var (
	// ErrUnknownHeuristic is returned by ParseHeuristic for names it does not know.
	ErrUnknownHeuristic = errors.New("unknown heuristic")

	// ErrUnknownVariant is returned by ParseVariant for names it does not know.
	ErrUnknownVariant = errors.New("unknown search variant")
)
