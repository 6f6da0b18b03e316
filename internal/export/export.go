// Package export renders a search as GeoJSON layers for external viewers.
package export

import (
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"visibility-planner/board"
	"visibility-planner/geom"
	"visibility-planner/search"
	"visibility-planner/visgraph"
)

// Values of the "layer" property on exported features.
const (
	LayerObstacle   = "obstacle"
	LayerVisibility = "visibility"
	LayerConsidered = "considered"
	LayerPath       = "path"
	LayerOpen       = "open"
	LayerClosed     = "closed"
	LayerEndpoint   = "endpoint"
)

// grapher is implemented by pathfinders that search a prebuilt graph.
type grapher interface {
	Graph() *visgraph.Graph
}

// FeatureCollection exports the obstacles, the search state under the replay
// cursor and, once found, the optimal path. Pathfinders with a visibility
// graph also get one LineString per graph edge.
func FeatureCollection(p search.Pathfinder) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for i, polygon := range p.Board().Polygons() {
		op := board.ToOrb(polygon)
		centroid, area := planar.CentroidArea(op)

		f := geojson.NewFeature(op)
		f.Properties["layer"] = LayerObstacle
		f.Properties["index"] = i
		f.Properties["area"] = math.Abs(area)
		f.Properties["centroid"] = []float64{centroid[0], centroid[1]}
		f.Properties["convex"] = polygon.IsConvex()
		fc.Append(f)
	}

	if g, ok := p.(grapher); ok {
		for _, e := range g.Graph().Segments() {
			fc.Append(segmentFeature(e, LayerVisibility))
		}
	}

	state := p.State()
	for _, e := range state.ConsideredEdges.Sorted() {
		fc.Append(segmentFeature(e, LayerConsidered))
	}
	fc.Append(pointsFeature(state.Open.Sorted(), LayerOpen))
	fc.Append(pointsFeature(state.Closed.Sorted(), LayerClosed))

	for _, endpoint := range []struct {
		name string
		pt   geom.Point
	}{{"start", p.Start()}, {"goal", p.Goal()}} {
		f := geojson.NewFeature(toOrbPoint(endpoint.pt))
		f.Properties["layer"] = LayerEndpoint
		f.Properties["name"] = endpoint.name
		fc.Append(f)
	}

	if sol, ok := p.OptimalPath(); ok {
		f := geojson.NewFeature(toLineString(sol.Path))
		f.Properties["layer"] = LayerPath
		f.Properties["cost"] = sol.Cost
		f.Properties["variant"] = p.Variant().String()
		f.Properties["heuristic"] = p.Heuristic().String()
		fc.Append(f)
	}

	return fc
}

// WriteFile writes the export for p to path
func WriteFile(path string, p search.Pathfinder) error {
	data, err := FeatureCollection(p).MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

func segmentFeature(e geom.Edge, layer string) *geojson.Feature {
	f := geojson.NewFeature(toLineString([]geom.Point{e.Start, e.End}))
	f.Properties["layer"] = layer
	f.Properties["length"] = e.Length()
	return f
}

func pointsFeature(points []geom.Point, layer string) *geojson.Feature {
	mp := make(orb.MultiPoint, 0, len(points))
	for _, pt := range points {
		mp = append(mp, toOrbPoint(pt))
	}
	f := geojson.NewFeature(mp)
	f.Properties["layer"] = layer
	f.Properties["count"] = len(points)
	return f
}

func toOrbPoint(pt geom.Point) orb.Point {
	return orb.Point{float64(pt.X), float64(pt.Y)}
}

func toLineString(points []geom.Point) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, pt := range points {
		ls = append(ls, toOrbPoint(pt))
	}
	return ls
}
