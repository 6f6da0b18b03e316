// Package geom holds the exact integer geometry the planner is built on:
// points, orientation tests, edges and polygon obstacles.
package geom

import (
	"fmt"
	"math"
)

// Point is an integer board coordinate. Points are compared and hashed by value.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points truncated to an
// integer. Every cost in the planner goes through this function.
func Distance(a, b Point) int {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return int(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Less orders points by X, then Y
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Compare returns -1, 0 or 1 following Less. Usable with slices.SortFunc.
func Compare(a, b Point) int {
	switch {
	case a == b:
		return 0
	case a.Less(b):
		return -1
	default:
		return 1
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
