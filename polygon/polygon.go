/*
Package polygon provides polygons as contour views onto sequences of points:
control polygons of a sketch and polylines sampled from a curve.

Polygons are built with a small builder, similar to paths:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Geometry is delegated to package polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'nurbs.polygon'.
func L() tracing.Trace {
	return tracing.Select("nurbs.polygon")
}

// Polygon is a sequence of points, either open or closed (cyclic).
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by Knot(…).
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPairs creates a polygon from a list of points.
func FromPairs(pts []nurbs.Pair, cycle bool) *Polygon {
	pg := &Polygon{
		contour: make(polyclip.Contour, 0, len(pts)),
		cycle:   cycle,
	}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Box creates a rectangular, closed polygon from two diagonal corners.
func Box(p1, p2 nurbs.Pair) *Polygon {
	return NullPolygon().
		Knot(nurbs.P(p1.X(), p1.Y())).
		Knot(nurbs.P(p2.X(), p1.Y())).
		Knot(nurbs.P(p2.X(), p2.Y())).
		Knot(nurbs.P(p1.X(), p2.Y())).
		Cycle()
}

// Knot appends a point to a polygon. Part of builder functionality.
func (pg *Polygon) Knot(p nurbs.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End ends an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of points of the polygon.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns point i of the polygon.
func (pg *Polygon) Pt(i int) nurbs.Pair {
	p := pg.contour[i]
	return nurbs.P(p.X, p.Y)
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle containing all points. For an empty polygon both
// corners are the origin.
func (pg *Polygon) BoundingBox() (nurbs.Pair, nurbs.Pair) {
	if pg.N() == 0 {
		return nurbs.Origin, nurbs.Origin
	}
	r := pg.contour.BoundingBox()
	return nurbs.P(r.Min.X, r.Min.Y), nurbs.P(r.Max.X, r.Max.Y)
}

// Contains reports whether p lies within a closed polygon. Open polygons
// do not contain any point.
func (pg *Polygon) Contains(p nurbs.Pair) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Pt(i).String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
