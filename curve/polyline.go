package curve

import (
	"strings"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/dvanauken/ixt-nurbs-curve/polygon"
)

// Polyline is an ordered sequence of points, approximating a curve.
type Polyline []nurbs.Pair

// Length returns the sum of the segment lengths.
func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl); i++ {
		l += pl[i-1].Dist(pl[i])
	}
	return l
}

// Start returns the first point of a polyline.
func (pl Polyline) Start() nurbs.Pair {
	return pl[0]
}

// End returns the last point of a polyline.
func (pl Polyline) End() nurbs.Pair {
	return pl[len(pl)-1]
}

// Polygon returns a polygon view onto the polyline.
func (pl Polyline) Polygon(cycle bool) *polygon.Polygon {
	return polygon.FromPairs(pl, cycle)
}

// Bounds returns the lower left and upper right corner of the polyline's
// bounding box.
func (pl Polyline) Bounds() (nurbs.Pair, nurbs.Pair) {
	return pl.Polygon(false).BoundingBox()
}

func (pl Polyline) String() string {
	var b strings.Builder
	for i, p := range pl {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(ptstring(p))
	}
	return b.String()
}

func ptstring(p nurbs.Pair) string {
	return nurbs.P(round(p.X()), round(p.Y())).String()
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
