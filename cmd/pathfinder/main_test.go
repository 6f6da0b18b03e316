package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/search"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    geom.Point
		wantErr bool
	}{
		{"3,4", geom.Pt(3, 4), false},
		{" -20 , 15 ", geom.Pt(-20, 15), false},
		{"3", geom.Point{}, true},
		{"3,4,5", geom.Point{}, true},
		{"a,4", geom.Point{}, true},
		{"1.5,2", geom.Point{}, true},
	}
	for _, tt := range tests {
		got, err := parsePoint(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPoint) {
				t.Errorf("parsePoint(%q): err = %v, want ErrInvalidPoint", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parsePoint(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-start", "0,0", "-goal", "100,100", "-variant", "astar", "-compare"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.start.pt != geom.Pt(0, 0) || cfg.goal.pt != geom.Pt(100, 100) {
		t.Errorf("points: got %v %v", cfg.start.pt, cfg.goal.pt)
	}
	if cfg.variant != "astar" || !cfg.compare || cfg.heuristic != "euclidean" {
		t.Errorf("got %+v", cfg)
	}

	if _, err := parseFlags([]string{"-start", "nope"}); err == nil {
		t.Error("expected an error for a bad point")
	}
}

func TestRunJSON(t *testing.T) {
	cfg, err := parseFlags([]string{"-json", "-compare", "-replay",
		"-geojson", filepath.Join(t.TempDir(), "out.geojson")})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var got struct {
		Results []Result      `json:"results"`
		Replay  []StepSummary `json:"replay"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got.Results) != 2 {
		t.Fatalf("results: got %d, want 2", len(got.Results))
	}
	if r := got.Results[0]; !r.Success || r.Cost != 391 || r.Heuristic != "Euclidean" {
		t.Errorf("first result: got %+v", r)
	}
	if r := got.Results[1]; !r.Success || r.Cost != 395 || r.Heuristic != "Manhattan" {
		t.Errorf("second result: got %+v", r)
	}
	if len(got.Replay) != got.Results[0].Steps {
		t.Errorf("replay: got %d steps, want %d", len(got.Replay), got.Results[0].Steps)
	}
	if _, err := os.Stat(cfg.geojsonPath); err != nil {
		t.Errorf("geojson not written: %v", err)
	}
}

func TestRunRejectsUnknownNames(t *testing.T) {
	cfg, _ := parseFlags([]string{"-heuristic", "chebyshev"})
	if err := run(cfg, &bytes.Buffer{}); !errors.Is(err, search.ErrUnknownHeuristic) {
		t.Errorf("heuristic: err = %v", err)
	}

	cfg, _ = parseFlags([]string{"-variant", "dijkstra"})
	if err := run(cfg, &bytes.Buffer{}); !errors.Is(err, search.ErrUnknownVariant) {
		t.Errorf("variant: err = %v", err)
	}
}

func TestPrintResults(t *testing.T) {
	p := search.New(search.AStar, squareBoard(), geom.Pt(0, 0), geom.Pt(100, 100), search.Euclidean)

	var out bytes.Buffer
	printResults(&out, []Result{newResult(p)}, replay(p))

	text := out.String()
	if !strings.Contains(text, "A* / Euclidean: cost 144, 3 waypoints") {
		t.Errorf("missing summary line:\n%s", text)
	}
	if !strings.Contains(text, "step   0") {
		t.Errorf("missing replay:\n%s", text)
	}
}

func TestHealthHandler(t *testing.T) {
	p := search.New(search.VisibilityGraph, squareBoard(), geom.Pt(0, 0), geom.Pt(100, 100), search.Manhattan)
	storeResults([]Result{newResult(p)})

	srv := httptest.NewServer(newMux())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header: got %q", got)
	}

	var body struct {
		Status   string   `json:"status"`
		Searches []Result `json:"searches"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ready" || len(body.Searches) != 1 || body.Searches[0].Cost != 144 {
		t.Errorf("got %+v", body)
	}

	metrics, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer metrics.Body.Close()
	if metrics.StatusCode != http.StatusOK {
		t.Errorf("metrics status: got %d", metrics.StatusCode)
	}
}

func squareBoard() board.Board {
	return board.New(geom.NewPolygon(
		geom.Pt(40, 40), geom.Pt(40, 60), geom.Pt(60, 60), geom.Pt(60, 40),
	))
}
