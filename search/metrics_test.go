package search

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"visibility-planner/geom"
)

func TestSearchMetrics(t *testing.T) {
	found := searchesTotal.WithLabelValues(AStar.Key(), Manhattan.String(), outcomeFound)
	missed := searchesTotal.WithLabelValues(VisibilityGraph.Key(), Euclidean.String(), outcomeNotFound)
	expansions := expansionsTotal.WithLabelValues(AStar.Key())

	beforeFound := testutil.ToFloat64(found)
	beforeMissed := testutil.ToFloat64(missed)
	beforeExpansions := testutil.ToFloat64(expansions)
	beforeReopened := testutil.ToFloat64(reopenedTotal)

	p := NewAStarPathfinder(detour(), geom.Pt(0, 20), geom.Pt(100, 20), Manhattan)
	New(VisibilityGraph, square(), geom.Pt(0, 0), geom.Pt(50, 50), Euclidean)

	if got := testutil.ToFloat64(found) - beforeFound; got != 1 {
		t.Errorf("found searches: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(missed) - beforeMissed; got != 1 {
		t.Errorf("failed searches: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(expansions) - beforeExpansions; got != float64(p.Expansions()) {
		t.Errorf("expansions: got %v, want %d", got, p.Expansions())
	}
	if got := testutil.ToFloat64(reopenedTotal) - beforeReopened; got != 2 {
		t.Errorf("reopened: got %v, want 2", got)
	}
	if testutil.CollectAndCount(visibilityEdges) != 1 {
		t.Error("visibility edge histogram not registered")
	}
}
