package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"visibility-planner/geom"
)

// ErrInvalidPoint is returned for point flags that are not "x,y" integers.
var ErrInvalidPoint = errors.New("invalid point, want x,y")

func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	return geom.Pt(x, y), nil
}

// pointFlag is a flag.Value holding a point
type pointFlag struct {
	pt geom.Point
}

func (f *pointFlag) String() string {
	return fmt.Sprintf("%d,%d", f.pt.X, f.pt.Y)
}

func (f *pointFlag) Set(s string) error {
	pt, err := parsePoint(s)
	if err != nil {
		return err
	}
	f.pt = pt
	return nil
}
