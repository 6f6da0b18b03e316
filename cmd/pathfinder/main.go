// Command pathfinder searches a polygon board for the shortest path between
// two points and prints, replays or exports the search.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/internal/export"
	"visibility-planner/search"
)

type config struct {
	boardPath     string
	start         pointFlag
	goal          pointFlag
	heuristic     string
	variant       string
	compare       bool
	replay        bool
	json          bool
	geojsonPath   string
	dropContained bool
	strict        bool
	metricsAddr   string
	verbose       bool
}

func parseFlags(args []string) (config, error) {
	cfg := config{
		start: pointFlag{geom.Pt(100, 500)},
		goal:  pointFlag{geom.Pt(400, 690)},
	}

	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.StringVar(&cfg.boardPath, "board", "", "GeoJSON obstacle file (default: built-in problem board)")
	fs.Var(&cfg.start, "start", "start point as x,y")
	fs.Var(&cfg.goal, "goal", "goal point as x,y")
	fs.StringVar(&cfg.heuristic, "heuristic", "euclidean", "euclidean or manhattan")
	fs.StringVar(&cfg.variant, "variant", "visibility", "visibility or astar")
	fs.BoolVar(&cfg.compare, "compare", false, "also run the other heuristic on a copy")
	fs.BoolVar(&cfg.replay, "replay", false, "print every recorded step")
	fs.BoolVar(&cfg.json, "json", false, "print results as JSON")
	fs.StringVar(&cfg.geojsonPath, "geojson", "", "write the final search state as GeoJSON to this file")
	fs.BoolVar(&cfg.dropContained, "drop-contained", false, "drop obstacles lying inside another obstacle")
	fs.BoolVar(&cfg.strict, "strict", false, "reject non-polygon GeoJSON features")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "serve /metrics and /health on this address after the run")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func loadBoard(cfg config) (board.Board, error) {
	if cfg.boardPath == "" {
		return board.Problem(), nil
	}

	var options []board.LoadOption
	if cfg.dropContained {
		options = append(options, board.WithDropContained())
	}
	if cfg.strict {
		options = append(options, board.WithStrict())
	}
	return board.LoadGeoJSON(cfg.boardPath, options...)
}

func run(cfg config, stdout io.Writer) error {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	search.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	h, err := search.ParseHeuristic(cfg.heuristic)
	if err != nil {
		return err
	}
	v, err := search.ParseVariant(cfg.variant)
	if err != nil {
		return err
	}

	b, err := loadBoard(cfg)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	minX, minY, maxX, maxY := b.Bounds()
	log.Println("========================================")
	log.Println("🚀 Visibility Planner")
	log.Println("========================================")
	log.Printf("   Obstacles: %d (%d vertices)\n", b.Len(), b.VertexCount())
	log.Printf("   Bounds: (%d, %d) to (%d, %d)\n", minX, minY, maxX, maxY)
	log.Printf("   Start: %v\n", cfg.start.pt)
	log.Printf("   Goal:  %v\n", cfg.goal.pt)
	log.Printf("🔍 Running %s search with %s heuristic...\n", v, h)

	pathfinders := []search.Pathfinder{search.New(v, b, cfg.start.pt, cfg.goal.pt, h)}
	if cfg.compare {
		other := pathfinders[0].Clone()
		for _, candidate := range search.Heuristics {
			if candidate != h {
				other.ChangeHeuristic(candidate)
				break
			}
		}
		pathfinders = append(pathfinders, other)
	}

	results := make([]Result, 0, len(pathfinders))
	for _, p := range pathfinders {
		results = append(results, newResult(p))
	}
	storeResults(results)

	var steps []StepSummary
	if cfg.replay {
		steps = replay(pathfinders[0])
	}

	if cfg.json {
		out := struct {
			Results []Result      `json:"results"`
			Replay  []StepSummary `json:"replay,omitempty"`
		}{results, steps}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		printResults(stdout, results, steps)
	}

	if cfg.geojsonPath != "" {
		p := pathfinders[0]
		p.JumpTo(p.TotalSteps())
		if err := export.WriteFile(cfg.geojsonPath, p); err != nil {
			return err
		}
		log.Printf("✅ GeoJSON written to %s\n", cfg.geojsonPath)
	}
	log.Println("========================================")

	if cfg.metricsAddr != "" {
		return serve(cfg.metricsAddr)
	}
	return nil
}

func printResults(w io.Writer, results []Result, steps []StepSummary) {
	for _, s := range steps {
		next := "-"
		if s.Next != nil {
			next = s.Next.String()
		}
		best := "-"
		if s.BestScore != nil {
			best = fmt.Sprint(*s.BestScore)
		}
		fmt.Fprintf(w, "step %3d  next %-12s open %3d  closed %3d  edges %3d  best %s\n",
			s.Step, next, s.Open, s.Closed, s.Edges, best)
	}

	for _, r := range results {
		if !r.Success {
			fmt.Fprintf(w, "%s / %s: no path (%d expansions)\n", r.Variant, r.Heuristic, r.Expansions)
			continue
		}
		fmt.Fprintf(w, "%s / %s: cost %d, %d waypoints, %d steps, %d expansions",
			r.Variant, r.Heuristic, r.Cost, len(r.Path), r.Steps, r.Expansions)
		if r.Reopened > 0 {
			fmt.Fprintf(w, ", %d reopened", r.Reopened)
		}
		fmt.Fprintln(w)
		for i, pt := range r.Path {
			fmt.Fprintf(w, "   %d: %v\n", i, pt)
		}
	}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("❌ %v", err)
	}
}
