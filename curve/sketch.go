package curve

import (
	"fmt"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/dvanauken/ixt-nurbs-curve/polygon"
)

// Sketch is the control polygon of a curve under construction: an ordered
// list of control points, optionally closed, plus an optional preview point
// which follows the pointer while the sketch is still open.
//
// A Sketch is not safe for concurrent modification. Evaluations work on
// snapshots (see Points) and may run concurrently.
type Sketch struct {
	points     []nurbs.ControlPoint
	preview    nurbs.Pair
	hasPreview bool
	closed     bool
}

// Nullsketch creates an empty sketch, to be extended by subsequent builder
// calls:
//
//	sk := Nullsketch().Knot(P(0,0)).Knot(P(100,0)).Knot(P(100,100)).Cycle()
func Nullsketch() *Sketch {
	return &Sketch{}
}

// Knot adds a control point of weight 1. Part of builder functionality.
func (sk *Sketch) Knot(p nurbs.Pair) *Sketch {
	return sk.WeightedKnot(p, 1)
}

// WeightedKnot adds a control point of weight w. Part of builder functionality.
func (sk *Sketch) WeightedKnot(p nurbs.Pair, w float64) *Sketch {
	if sk.closed {
		panic("cannot add knot to closed sketch")
	}
	sk.points = append(sk.points, nurbs.Weighted(p, w))
	return sk
}

// End ends an open sketch. Part of builder functionality.
func (sk *Sketch) End() *Sketch {
	return sk
}

// Cycle closes a sketch, regardless of its number of points.
// Part of builder functionality.
func (sk *Sketch) Cycle() *Sketch {
	sk.closed = true
	sk.hasPreview = false
	return sk
}

// Append adds a control point of weight 1 to an open sketch.
func (sk *Sketch) Append(p nurbs.Pair) error {
	if sk.closed {
		return fmt.Errorf("%w: no more points may be added", nurbs.ErrAlreadyClosed)
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: %s", nurbs.ErrInvalidPoint, p)
	}
	sk.points = append(sk.points, nurbs.Weighted(p, 1))
	return nil
}

// Update moves control point i to p. Closed sketches may be edited as well.
func (sk *Sketch) Update(i int, p nurbs.Pair) error {
	if i < 0 || i >= len(sk.points) {
		return fmt.Errorf("%w: %d of %d", nurbs.ErrIndexOutOfRange, i, len(sk.points))
	}
	if !p.IsFinite() {
		return fmt.Errorf("%w: %s", nurbs.ErrInvalidPoint, p)
	}
	sk.points[i].Pos = p
	return nil
}

// SetWeight sets the rational weight of control point i. Weights must be > 0.
func (sk *Sketch) SetWeight(i int, w float64) error {
	if i < 0 || i >= len(sk.points) {
		return fmt.Errorf("%w: %d of %d", nurbs.ErrIndexOutOfRange, i, len(sk.points))
	}
	if !nurbs.IsFinite(w) || w <= 0 {
		return fmt.Errorf("%w: %g", nurbs.ErrInvalidWeight, w)
	}
	sk.points[i].Weight = w
	return nil
}

// Close closes a sketch. A closed sketch needs at least 3 control points.
func (sk *Sketch) Close() error {
	if sk.closed {
		return nurbs.ErrAlreadyClosed
	}
	if len(sk.points) < 3 {
		return fmt.Errorf("%w: closing needs at least 3 points, got %d",
			nurbs.ErrInsufficientPoints, len(sk.points))
	}
	sk.Cycle()
	return nil
}

// SetPreview sets the preview point of an open sketch. It is ignored for
// closed sketches.
func (sk *Sketch) SetPreview(p nurbs.Pair) {
	if sk.closed || !p.IsFinite() {
		return
	}
	sk.preview, sk.hasPreview = p, true
}

// ClearPreview removes the preview point.
func (sk *Sketch) ClearPreview() {
	sk.hasPreview = false
}

// IsClosed is a predicate: is this sketch closed?
func (sk *Sketch) IsClosed() bool {
	return sk.closed
}

// Topology returns the topology of the curve through the sketch.
func (sk *Sketch) Topology() nurbs.Topology {
	return nurbs.TopologyOf(sk.closed)
}

// N returns the number of control points, not counting a preview point.
func (sk *Sketch) N() int {
	return len(sk.points)
}

// Z returns control point i.
func (sk *Sketch) Z(i int) nurbs.ControlPoint {
	return sk.points[i]
}

// Points returns a snapshot of the control points. For open sketches with a
// preview point, the preview is appended with weight 1 and Preview set.
func (sk *Sketch) Points() []nurbs.ControlPoint {
	n := len(sk.points)
	if sk.hasPreview {
		n++
	}
	pts := make([]nurbs.ControlPoint, 0, n)
	pts = append(pts, sk.points...)
	if sk.hasPreview && !sk.closed {
		pts = append(pts, nurbs.ControlPoint{Pos: sk.preview, Weight: 1, Preview: true})
	}
	return pts
}

// NearStart is a hint for drawing surfaces: is p within CloseThreshold of
// the first control point of an open sketch? It has no effect on the curve.
func (sk *Sketch) NearStart(p nurbs.Pair) bool {
	if sk.closed || len(sk.points) == 0 {
		return false
	}
	return sk.points[0].Pos.Dist(p) < CloseThreshold
}

// Transform maps all control points, and the preview point, by m.
func (sk *Sketch) Transform(m nurbs.AT) *Sketch {
	for i := range sk.points {
		sk.points[i] = sk.points[i].Transformed(m)
	}
	if sk.hasPreview {
		sk.preview = m.Transform(sk.preview)
	}
	return sk
}

// ControlPolygon returns a polygon view onto the control points.
func (sk *Sketch) ControlPolygon() *polygon.Polygon {
	pts := sk.Points()
	pairs := make([]nurbs.Pair, len(pts))
	for i, cp := range pts {
		pairs[i] = cp.Pos
	}
	return polygon.FromPairs(pairs, sk.closed)
}

// Render computes the polyline of the curve through the sketch, see Render.
func (sk *Sketch) Render(opts ...Option) (Polyline, error) {
	return Render(sk.Points(), sk.Topology(), opts...)
}

func (sk *Sketch) String() string {
	return nurbs.AsString(sk.Points(), sk.Topology())
}
