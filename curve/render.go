package curve

import (
	"fmt"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/dvanauken/ixt-nurbs-curve/knots"
)

// Render computes the polyline for a curve through a control polygon.
//
// Control points are validated first: NaN/Inf coordinates and non-positive
// weights are rejected. For fewer than 2 points, Render returns
// ErrInsufficientPoints; clients are expected to draw the control points
// only. An open curve through exactly 2 points is the straight line between
// them, independent of the sampling resolution. All other curves are sampled
// with a resolution given by the options, defaulting to DefaultResolution.
func Render(points []nurbs.ControlPoint, topo nurbs.Topology, opts ...Option) (Polyline, error) {
	if err := nurbs.ValidatePoints(points); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: curve needs at least 2 points, got %d",
			nurbs.ErrInsufficientPoints, len(points))
	}
	if IsLinear(len(points), topo) {
		return Polyline{points[0].Pos, points[1].Pos}, nil
	}
	o := collectOptions(opts)
	segments := o.segmentsFor(len(points))
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d segments", nurbs.ErrInvalidResolution, segments)
	}
	eval, p, err := Prepare(points, topo)
	if err != nil {
		return nil, err
	}
	kv, err := knots.Build(len(eval), p, topo)
	if err != nil {
		return nil, err
	}
	polyline, err := Sample(p, kv, eval, segments, opts...)
	if err != nil {
		return nil, err
	}
	tracer().Infof("%s curve of degree %d through %d points, %d segments, length %.4g",
		topo, p, len(points), segments, polyline.Length())
	return polyline, nil
}

// MustRender is a helper which panics on errors. It is intended for tests
// and examples.
func MustRender(points []nurbs.ControlPoint, topo nurbs.Topology, opts ...Option) Polyline {
	polyline, err := Render(points, topo, opts...)
	if err != nil {
		panic(err)
	}
	return polyline
}
