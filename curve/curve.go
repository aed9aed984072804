/*
Package curve evaluates NURBS curves through a sketched control polygon.

The pipeline of a curve evaluation is

	Prepare → knots.Build → {FindSpan, basis.Funcs} → EvaluatePoint → Sample

Prepare derives the degree from the number of control points (never more
than cubic) and, for closed curves, wraps the first p control points onto
the tail of the polygon. Sample walks the parameter domain in equal steps
and returns a polyline, ready to be stroked by a drawing surface.

Most clients will just call Render, or use a Sketch:

	sk := Nullsketch().Knot(P(0,0)).Knot(P(50,100)).Knot(P(150,100)).Knot(P(200,0))
	polyline, err := sk.Render()

All evaluation functions are pure: they do not keep any state between calls
and may be called concurrently, as long as every call gets its own snapshot
of the control points (see Sketch.Points).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nurbs.curve'
func tracer() tracing.Trace {
	return tracing.Select("nurbs.curve")
}

// MaxDegree is the highest degree of curves derived from a control polygon.
var MaxDegree = 3

// MinSegments is the lower bound for the default sampling resolution.
var MinSegments = 200

// SegmentsPerPoint scales the default sampling resolution with the number of
// control points.
var SegmentsPerPoint = 50

// CloseThreshold is the distance from the first control point within which
// a pointer position is considered to be near the start of a sketch.
var CloseThreshold = 20.0

// DefaultResolution returns the number of segments used for sampling a curve
// with n control points: max(MinSegments, n⋅SegmentsPerPoint).
func DefaultResolution(n int) int {
	return max(MinSegments, n*SegmentsPerPoint)
}
