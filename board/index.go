package board

import (
	"slices"

	"github.com/dhconnelly/rtreego"

	"visibility-planner/geom"
)

// pad widens query and entry boxes so that axis-parallel segments and
// polygons still get a positive extent. Coordinates are integers, so half a
// unit never admits a box that could not touch.
const pad = 0.5

// polygonEntry wraps a polygon index for R-tree storage
type polygonEntry struct {
	index int
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *polygonEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// Index answers "which polygons could touch this segment" queries
type Index struct {
	tree  *rtreego.Rtree
	count int
}

// NewIndex creates a spatial index over the polygons' bounding boxes
func NewIndex(polygons []geom.Polygon) *Index {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, p := range polygons {
		if p.Len() == 0 {
			continue
		}
		lo, hi := p.Bounds()
		bbox, err := paddedRect(lo, hi)
		if err != nil {
			continue
		}
		tree.Insert(&polygonEntry{index: i, bbox: bbox})
	}

	return &Index{tree: tree, count: len(polygons)}
}

// Query returns, in board order, the indices of polygons whose bounding box
// touches the bounding box of segment a-b.
func (ix *Index) Query(a, b geom.Point) []int {
	lo := geom.Pt(min(a.X, b.X), min(a.Y, b.Y))
	hi := geom.Pt(max(a.X, b.X), max(a.Y, b.Y))

	bbox, err := paddedRect(lo, hi)
	if err != nil {
		// Cannot happen with a positive pad; scan everything rather than miss a polygon
		all := make([]int, ix.count)
		for i := range all {
			all[i] = i
		}
		return all
	}

	results := ix.tree.SearchIntersect(bbox)
	indices := make([]int, 0, len(results))
	for _, item := range results {
		indices = append(indices, item.(*polygonEntry).index)
	}
	slices.Sort(indices)
	return indices
}

// paddedRect builds an R-tree rectangle from integer corners
func paddedRect(lo, hi geom.Point) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(lo.X) - pad, float64(lo.Y) - pad},
		[]float64{float64(hi.X-lo.X) + 2*pad, float64(hi.Y-lo.Y) + 2*pad},
	)
}
