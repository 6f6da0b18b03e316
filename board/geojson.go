package board

import (
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"visibility-planner/geom"
	"visibility-planner/internal/logging"
)

// LoadOptions controls how GeoJSON obstacles become a Board.
type LoadOptions struct {
	DropContained bool

	// Strict rejects features that are not polygons instead of skipping them.
	Strict bool
}

// LoadOption is a function that modifies LoadOptions.
type LoadOption func(*LoadOptions)

// WithDropContained removes polygons that lie entirely inside another one.
func WithDropContained() LoadOption {
	return func(o *LoadOptions) { o.DropContained = true }
}

// WithStrict makes unsupported geometry an error.
func WithStrict() LoadOption {
	return func(o *LoadOptions) { o.Strict = true }
}

// LoadGeoJSON reads a board from a GeoJSON FeatureCollection file
func LoadGeoJSON(path string, options ...LoadOption) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Board{}, fmt.Errorf("failed to read board file: %w", err)
	}

	b, err := ParseGeoJSON(data, options...)
	if err != nil {
		return Board{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// ParseGeoJSON converts Polygon and MultiPolygon features to obstacles, in
// feature order. Only outer rings are used and coordinates are rounded to
// the nearest integer. Other geometry types are skipped.
func ParseGeoJSON(data []byte, options ...LoadOption) (Board, error) {
	var opts LoadOptions
	for _, option := range options {
		option(&opts)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Board{}, fmt.Errorf("failed to parse feature collection: %w", err)
	}

	logger := logging.Logger()
	var polygons []geom.Polygon

	for i, feature := range fc.Features {
		var rings []orb.Ring

		switch g := feature.Geometry.(type) {
		case orb.Polygon:
			if len(g) > 0 {
				rings = append(rings, g[0])
			}
		case orb.MultiPolygon:
			for _, poly := range g {
				if len(poly) > 0 {
					rings = append(rings, poly[0])
				}
			}
		default:
			if opts.Strict {
				return Board{}, fmt.Errorf("feature %d: %w: %s", i, ErrUnsupportedGeometry, geometryType(feature.Geometry))
			}
			logger.Warn("skipping unsupported geometry", "feature", i, "type", geometryType(feature.Geometry))
			continue
		}

		for _, ring := range rings {
			polygon, err := ringToPolygon(ring)
			if err != nil {
				return Board{}, fmt.Errorf("feature %d: %w", i, err)
			}
			polygons = append(polygons, polygon)
		}
	}

	if len(polygons) == 0 {
		return Board{}, ErrEmptyCollection
	}

	if opts.DropContained {
		polygons = DropContained(polygons)
	}

	for _, i := range NonConvex(polygons) {
		logger.Warn("obstacle is not convex; same-polygon visibility assumes convex obstacles", "polygon", i)
	}

	logger.Debug("board loaded", "features", len(fc.Features), "polygons", len(polygons))
	return New(polygons...), nil
}

// ringToPolygon rounds a ring to integer vertices, dropping the closing
// point and consecutive duplicates.
func ringToPolygon(ring orb.Ring) (geom.Polygon, error) {
	vertices := make([]geom.Point, 0, len(ring))
	for _, pt := range ring {
		v := geom.Pt(int(math.Round(pt[0])), int(math.Round(pt[1])))
		if n := len(vertices); n > 0 && vertices[n-1] == v {
			continue
		}
		vertices = append(vertices, v)
	}
	if n := len(vertices); n > 1 && vertices[0] == vertices[n-1] {
		vertices = vertices[:n-1]
	}

	if len(vertices) < 3 {
		return geom.Polygon{}, fmt.Errorf("%w (got %d)", ErrTooFewVertices, len(vertices))
	}
	return geom.NewPolygon(vertices...), nil
}

// ToOrb converts a polygon to a closed orb polygon with a single ring
func ToOrb(p geom.Polygon) orb.Polygon {
	vertices := p.Vertices()
	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, orb.Point{float64(v.X), float64(v.Y)})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// FeatureCollection converts the board to GeoJSON, one feature per obstacle
// carrying its board index.
func (b Board) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, p := range b.polygons {
		f := geojson.NewFeature(ToOrb(p))
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

func geometryType(g orb.Geometry) string {
	if g == nil {
		return "null"
	}
	return g.GeoJSONType()
}
