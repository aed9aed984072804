package nurbs

import (
	"fmt"
	"strings"
)

// === Control Points ========================================================

// ControlPoint is a weighted point of a NURBS control polygon.
//
// Weight is the rational weight of the point and has to be > 0. A weight of 1
// for every point makes the curve an ordinary (non-rational) B-spline.
// Preview marks a point which is still being placed by the user. It is a
// rendering hint only and has no influence on the curve.
type ControlPoint struct {
	Pos     Pair
	Weight  float64
	Preview bool
}

// CP creates a control point at (x,y) with weight 1.
func CP(x, y float64) ControlPoint {
	return ControlPoint{Pos: P(x, y), Weight: 1}
}

// Weighted creates a control point at p with weight w.
func Weighted(p Pair, w float64) ControlPoint {
	return ControlPoint{Pos: p, Weight: w}
}

// Points creates unit-weight control points from a list of pairs.
func Points(pts ...Pair) []ControlPoint {
	cps := make([]ControlPoint, len(pts))
	for i, p := range pts {
		cps[i] = ControlPoint{Pos: p, Weight: 1}
	}
	return cps
}

// X is the x-coordinate of a control point.
func (cp ControlPoint) X() float64 {
	return cp.Pos.X()
}

// Y is the y-coordinate of a control point.
func (cp ControlPoint) Y() float64 {
	return cp.Pos.Y()
}

// Transformed returns a copy of cp with its position mapped by m.
// Weight and preview flag are retained.
func (cp ControlPoint) Transformed(m AT) ControlPoint {
	cp.Pos = m.Transform(cp.Pos)
	return cp
}

// Validate checks that the coordinates are finite and the weight is positive.
func (cp ControlPoint) Validate() error {
	if !cp.Pos.IsFinite() {
		return fmt.Errorf("%w: %s", ErrInvalidPoint, cp.Pos)
	}
	if !IsFinite(cp.Weight) || cp.Weight <= 0 {
		return fmt.Errorf("%w: %g at %s", ErrInvalidWeight, cp.Weight, cp.Pos)
	}
	return nil
}

// ValidatePoints checks every control point of a list, see ControlPoint.Validate.
func ValidatePoints(cps []ControlPoint) error {
	for i, cp := range cps {
		if err := cp.Validate(); err != nil {
			return fmt.Errorf("control point %d: %w", i, err)
		}
	}
	return nil
}

func (cp ControlPoint) String() string {
	if Is1(cp.Weight) {
		return cp.Pos.String()
	}
	return fmt.Sprintf("%s*%g", cp.Pos, cp.Weight)
}

// AsString returns a list of control points as a (debugging) string,
// in a MetaFont-like notation:
//
//	(0,0) -- (50,100) -- (150,100)*2 -- cycle
func AsString(cps []ControlPoint, topo Topology) string {
	var b strings.Builder
	for i, cp := range cps {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(cp.String())
	}
	if topo == Closed {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

// === Topology ==============================================================

// Topology tells whether a curve is open or closed.
type Topology int8

// Curves are either open (clamped at both ends) or closed (wrapping around).
const (
	Open Topology = iota
	Closed
)

func (t Topology) String() string {
	switch t {
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("topology(%d)", int8(t))
}

// TopologyOf is a convenience for converting a 'closed' flag.
func TopologyOf(closed bool) Topology {
	if closed {
		return Closed
	}
	return Open
}
