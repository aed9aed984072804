package curve

import (
	"fmt"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/dvanauken/ixt-nurbs-curve/basis"
	"github.com/dvanauken/ixt-nurbs-curve/knots"
)

// EvaluatePoint computes the curve point at parameter u for a NURBS of
// degree p with knot vector kv and control points points.
//
// The result is the rational combination
//
//	C(u) = Σ N[i,p](u)⋅w[i]⋅P[i] / Σ N[i,p](u)⋅w[i]
//
// over the p+1 control points of the span containing u. EvaluatePoint returns
// ErrDegenerateEvaluation if the denominator vanishes, and ErrInvalidDegree if
// degree, knot vector and number of points do not fit together.
func EvaluatePoint(u float64, p int, kv knots.KnotVector, points []nurbs.ControlPoint) (nurbs.Pair, error) {
	if err := checkCurve(p, kv, points); err != nil {
		return nurbs.Origin, err
	}
	return evaluatePoint(basis.NewTable(p), u, p, kv, points)
}

func checkCurve(p int, kv knots.KnotVector, points []nurbs.ControlPoint) error {
	n := len(points)
	if p < 0 || p >= n {
		return fmt.Errorf("%w: degree %d for %d control points", nurbs.ErrInvalidDegree, p, n)
	}
	if len(kv) != n+p+1 {
		return fmt.Errorf("%w: knot vector of length %d does not fit %d points of degree %d",
			nurbs.ErrInvalidDegree, len(kv), n, p)
	}
	return nil
}

func evaluatePoint(table *basis.Table, u float64, p int, kv knots.KnotVector,
	points []nurbs.ControlPoint) (nurbs.Pair, error) {
	span := kv.FindSpan(u, p, len(points))
	N := table.Funcs(u, span, kv)
	var x, y, w float64
	for k := 0; k <= p; k++ {
		cp := points[span-p+k]
		nw := N[k] * cp.Weight
		x += nw * cp.X()
		y += nw * cp.Y()
		w += nw
	}
	if w == 0 {
		return nurbs.Origin, fmt.Errorf("%w: zero denominator at u=%g", nurbs.ErrDegenerateEvaluation, u)
	}
	pt := nurbs.P(x/w, y/w)
	if !pt.IsFinite() {
		return nurbs.Origin, fmt.Errorf("%w: non-finite point at u=%g", nurbs.ErrDegenerateEvaluation, u)
	}
	return pt, nil
}

// Sample evaluates a NURBS at segments+1 equally spaced parameters
// t = i/segments, mapped onto the parameter domain of kv, and returns the
// resulting polyline.
//
// Samples with a zero rational denominator never show up as NaN coordinates.
// By default the previous sample is repeated, see WithDegenerateSkip. If no
// sample at all can be evaluated, Sample returns ErrDegenerateEvaluation.
func Sample(p int, kv knots.KnotVector, points []nurbs.ControlPoint, segments int,
	opts ...Option) (Polyline, error) {
	if segments < 1 {
		return nil, fmt.Errorf("%w: %d segments", nurbs.ErrInvalidResolution, segments)
	}
	if err := checkCurve(p, kv, points); err != nil {
		return nil, err
	}
	o := collectOptions(opts)
	table := basis.NewTable(p)
	polyline := make(Polyline, 0, segments+1)
	for i := 0; i <= segments; i++ {
		u := kv.Param(float64(i)/float64(segments), p)
		pt, err := evaluatePoint(table, u, p, kv, points)
		if err != nil {
			tracer().Debugf("sample %d: %v", i, err)
			if o.skipDegenerate || len(polyline) == 0 {
				continue
			}
			pt = polyline[len(polyline)-1]
		}
		polyline = append(polyline, pt)
	}
	if len(polyline) == 0 {
		return nil, fmt.Errorf("%w: no sample could be evaluated", nurbs.ErrDegenerateEvaluation)
	}
	return polyline, nil
}
