package board

import (
	"visibility-planner/geom"
	"visibility-planner/internal/logging"
)

// DropContained removes polygons that are fully contained within other
// polygons, keeping the order of the survivors.
func DropContained(polygons []geom.Polygon) []geom.Polygon {
	if len(polygons) <= 1 {
		return polygons
	}

	contained := make([]bool, len(polygons))

	// Check each polygon against all others
	for i := range polygons {
		if contained[i] {
			continue
		}
		for j := range polygons {
			if i == j || contained[j] {
				continue
			}
			if isContainedIn(polygons[i], polygons[j]) {
				contained[i] = true
				break
			}
		}
	}

	result := make([]geom.Polygon, 0, len(polygons))
	for i, p := range polygons {
		if !contained[i] {
			result = append(result, p)
		}
	}

	logging.Logger().Debug("dropped contained polygons",
		"kept", len(result), "removed", len(polygons)-len(result))
	return result
}

// isContainedIn checks if polygon a lies strictly inside polygon b
func isContainedIn(a, b geom.Polygon) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return false
	}

	// Quick bounding box check first
	aLo, aHi := a.Bounds()
	bLo, bHi := b.Bounds()
	if aLo.X < bLo.X || aLo.Y < bLo.Y || aHi.X > bHi.X || aHi.Y > bHi.Y {
		return false
	}

	for _, v := range a.Vertices() {
		if !b.ContainsPoint(v) {
			return false
		}
	}
	return true
}

// NonConvex returns the indices of polygons that are not convex
func NonConvex(polygons []geom.Polygon) []int {
	var indices []int
	for i, p := range polygons {
		if !p.IsConvex() {
			indices = append(indices, i)
		}
	}
	return indices
}
