package board

import "visibility-planner/geom"

// Problem returns the reference obstacle layout.
func Problem() Board {
	return New(
		geom.NewPolygon(geom.Pt(220, 616), geom.Pt(220, 666), geom.Pt(251, 670), geom.Pt(272, 647)),
		geom.NewPolygon(geom.Pt(341, 655), geom.Pt(359, 667), geom.Pt(374, 651), geom.Pt(366, 577)),
		geom.NewPolygon(geom.Pt(311, 530), geom.Pt(311, 559), geom.Pt(339, 578), geom.Pt(361, 560), geom.Pt(361, 528), geom.Pt(336, 516)),
		geom.NewPolygon(geom.Pt(105, 628), geom.Pt(151, 670), geom.Pt(180, 629), geom.Pt(156, 577), geom.Pt(113, 587)),
		geom.NewPolygon(geom.Pt(118, 517), geom.Pt(245, 517), geom.Pt(245, 577), geom.Pt(118, 557)),
		geom.NewPolygon(geom.Pt(280, 583), geom.Pt(333, 583), geom.Pt(333, 665), geom.Pt(280, 665)),
		geom.NewPolygon(geom.Pt(252, 594), geom.Pt(290, 562), geom.Pt(264, 538)),
		geom.NewPolygon(geom.Pt(198, 635), geom.Pt(217, 574), geom.Pt(182, 574)),
	)
}
