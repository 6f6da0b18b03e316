package board

import "errors"

// Sentinel errors for board loading.
var (
	// ErrTooFewVertices is returned when a ring has fewer than three
	// distinct vertices after rounding to integer coordinates.
	ErrTooFewVertices = errors.New("polygon needs at least 3 distinct vertices")

	// ErrUnsupportedGeometry is returned in strict mode for features that
	// are neither Polygon nor MultiPolygon.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")

	// ErrEmptyCollection is returned when a GeoJSON document holds no
	// usable polygon.
	ErrEmptyCollection = errors.New("no polygons in feature collection")
)
