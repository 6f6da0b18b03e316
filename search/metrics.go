package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "visplanner_searches_total",
		Help: "Total searches run, by variant, heuristic and outcome",
	}, []string{"variant", "heuristic", "outcome"})

	expansionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "visplanner_expansions_total",
		Help: "Total vertices expanded, by variant",
	}, []string{"variant"})

	reopenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "visplanner_reopened_total",
		Help: "Total closed vertices moved back to the open set",
	})

	visibilityEdges = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "visplanner_visibility_edges",
		Help:    "Undirected edge count of each built visibility graph",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)

func observeSearch(variant Variant, h Heuristic, s stats, found bool) {
	outcome := outcomeNotFound
	if found {
		outcome = outcomeFound
	}
	searchesTotal.WithLabelValues(variant.Key(), h.String(), outcome).Inc()
	expansionsTotal.WithLabelValues(variant.Key()).Add(float64(s.expansions))
	if s.reopened > 0 {
		reopenedTotal.Add(float64(s.reopened))
	}
}
