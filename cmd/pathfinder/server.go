package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	lastResults []Result
	resultMutex sync.RWMutex
)

func storeResults(results []Result) {
	resultMutex.Lock()
	lastResults = results
	resultMutex.Unlock()
}

// corsMiddleware adds CORS headers to allow viewer requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// GET /health - the searches this process ran
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resultMutex.RLock()
	results := lastResults
	resultMutex.RUnlock()

	status := "ready"
	if len(results) == 0 {
		status = "no search run"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":   status,
		"searches": results,
	})
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", corsMiddleware(healthHandler))
	return mux
}

func serve(addr string) error {
	log.Printf("Metrics server starting on %s\n", addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  GET  /metrics   - Prometheus metrics")
	log.Println("  GET  /health    - Last search results")
	log.Println("========================================")

	return http.ListenAndServe(addr, newMux())
}
