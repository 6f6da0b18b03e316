package visgraph

import (
	"slices"
	"testing"

	"visibility-planner/board"
	"visibility-planner/geom"
)

func squareBoard() board.Board {
	return board.New(geom.NewPolygon(geom.Pt(40, 40), geom.Pt(40, 60), geom.Pt(60, 60), geom.Pt(60, 40)))
}

func TestBuildContainsStartAndGoal(t *testing.T) {
	start, goal := geom.Pt(0, 0), geom.Pt(100, 100)
	g := Build(squareBoard(), start, goal)

	if !g.Has(start) || !g.Has(goal) {
		t.Fatal("start and goal should be vertices of the graph")
	}
	if g.Len() != 6 {
		t.Errorf("Len() = %d, want 6", g.Len())
	}
	if g.Visible(start, goal) {
		t.Error("start should not see goal through the square")
	}
}

func TestSquareVisibility(t *testing.T) {
	start, goal := geom.Pt(0, 0), geom.Pt(100, 100)
	g := Build(squareBoard(), start, goal)

	tests := []struct {
		u, v geom.Point
		want bool
	}{
		{start, geom.Pt(40, 60), true},
		{start, geom.Pt(60, 40), true},
		{start, geom.Pt(40, 40), true},
		{start, geom.Pt(60, 60), false},
		{geom.Pt(40, 60), goal, true},
		{geom.Pt(60, 60), goal, true},
		{geom.Pt(40, 40), geom.Pt(40, 60), true},  // boundary edge
		{geom.Pt(40, 40), geom.Pt(60, 60), false}, // diagonal of the same polygon
		{geom.Pt(40, 60), geom.Pt(60, 40), false},
	}
	for _, tt := range tests {
		if got := g.Visible(tt.u, tt.v); got != tt.want {
			t.Errorf("Visible(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestGraphIsSymmetric(t *testing.T) {
	boards := map[string]board.Board{
		"square":  squareBoard(),
		"problem": board.Problem(),
		"empty":   board.New(),
	}
	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			g := Build(b, geom.Pt(100, 500), geom.Pt(400, 690))
			for _, v := range g.Vertices() {
				for _, n := range g.Neighbors(v) {
					if !g.Visible(n, v) {
						t.Errorf("%v sees %v but not the other way round", v, n)
					}
					if n == v {
						t.Errorf("%v has a self loop", v)
					}
				}
			}
		})
	}
}

func TestGraphAgreesWithBoard(t *testing.T) {
	b := board.Problem()
	start, goal := geom.Pt(100, 500), geom.Pt(400, 690)
	g := Build(b, start, goal)

	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			sameAdjacent := false
			for _, p := range b.Polygons() {
				if p.Adjacent(u, v) {
					sameAdjacent = true
				}
			}
			if !sameAdjacent && b.Blocks(u, v) {
				t.Errorf("edge %v-%v is blocked by an obstacle", u, v)
			}
		}
	}

	if got := g.EdgeCount(); got != 128 {
		t.Errorf("EdgeCount() = %d, want 128", got)
	}
	if got := g.Len(); got != 35 {
		t.Errorf("Len() = %d, want 35", got)
	}
}

func TestEmptyBoardGraph(t *testing.T) {
	start, goal := geom.Pt(3, 4), geom.Pt(30, 44)
	g := Build(board.New(), start, goal)

	if !slices.Equal(g.Neighbors(start), []geom.Point{goal}) {
		t.Errorf("Neighbors(start) = %v, want [goal]", g.Neighbors(start))
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestStartEqualsGoal(t *testing.T) {
	p := geom.Pt(5, 5)
	g := Build(squareBoard(), p, p)
	if g.Len() != 5 {
		t.Errorf("Len() = %d, want 5", g.Len())
	}
	if g.Visible(p, p) {
		t.Error("a vertex must not see itself")
	}
}

func TestSegmentsAreUnique(t *testing.T) {
	g := Build(squareBoard(), geom.Pt(0, 0), geom.Pt(100, 100))
	segments := g.Segments()
	if len(segments) != g.EdgeCount() {
		t.Fatalf("len(Segments()) = %d, want %d", len(segments), g.EdgeCount())
	}

	seen := make(map[geom.Edge]bool)
	for _, s := range segments {
		if !s.Start.Less(s.End) {
			t.Errorf("segment %v is not ordered", s)
		}
		if seen[s] || seen[s.Reversed()] {
			t.Errorf("segment %v listed twice", s)
		}
		seen[s] = true
	}
}

func TestNeighborsAreSortedCopies(t *testing.T) {
	g := Build(board.Problem(), geom.Pt(100, 500), geom.Pt(400, 690))
	for _, v := range g.Vertices() {
		ns := g.Neighbors(v)
		if !slices.IsSortedFunc(ns, geom.Compare) {
			t.Errorf("Neighbors(%v) not sorted: %v", v, ns)
		}
		if len(ns) > 0 {
			ns[0] = geom.Pt(-1, -1)
			if g.Neighbors(v)[0] == geom.Pt(-1, -1) {
				t.Fatal("Neighbors exposes internal storage")
			}
		}
	}
}
