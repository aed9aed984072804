package curve

import (
	"fmt"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
)

// Degree returns the degree of a curve through n control points:
// min(MaxDegree, n-1). Curves with few points degrade to linear or quadratic.
func Degree(n int) int {
	return min(MaxDegree, n-1)
}

// IsLinear is a predicate: is a curve through n points of topology topo a
// straight line segment? This holds for exactly 2 points on an open curve,
// which are drawn without evaluating a NURBS.
func IsLinear(n int, topo nurbs.Topology) bool {
	return n == 2 && topo == nurbs.Open
}

// Prepare turns a control polygon into the list of points a NURBS of the
// given topology is evaluated on, and returns it together with the degree.
//
// Open curves use the points unchanged. Closed curves get their first p
// points appended to the tail, where p is the degree, which makes the uniform
// knot vector produce a continuous loop.
//
// Prepare returns ErrInsufficientPoints for fewer than 2 points, as no curve
// is defined then.
func Prepare(points []nurbs.ControlPoint, topo nurbs.Topology) ([]nurbs.ControlPoint, int, error) {
	if len(points) < 2 {
		return nil, 0, fmt.Errorf("%w: curve needs at least 2 points, got %d",
			nurbs.ErrInsufficientPoints, len(points))
	}
	p := Degree(len(points))
	if topo != nurbs.Closed {
		return points, p, nil
	}
	eval := make([]nurbs.ControlPoint, 0, len(points)+p)
	eval = append(eval, points...)
	eval = append(eval, points[:p]...)
	return eval, p, nil
}
