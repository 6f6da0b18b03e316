// Package search finds shortest paths around polygon obstacles and records
// how it found them.
//
// Two strategies share the Pathfinder contract:
//
//   - VisibilityGraph: A* over a precomputed visibility graph. Closed
//     vertices are never reopened.
//   - AStar: textbook A* generating successors on demand, with explicit
//     OPEN/CLOSED sets. A closed vertex reached more cheaply is reopened;
//     the cheaper cost is not propagated to its already closed descendants.
//
// Construction runs the whole search eagerly and stores one SearchState
// snapshot per expansion plus a final one in a History. Stepping through the
// History only moves an index; it never searches again.
package search
