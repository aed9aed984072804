package curve

import (
	"errors"
	"testing"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/dvanauken/ixt-nurbs-curve/knots"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archPoints() []nurbs.ControlPoint {
	return nurbs.Points(nurbs.P(0, 0), nurbs.P(50, 100), nurbs.P(150, 100), nurbs.P(200, 0))
}

func TestClampingProperty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := archPoints()
	kv, err := knots.Build(4, 3, nurbs.Open)
	require.NoError(t, err)
	lo, hi := kv.Domain(3)
	start, err := EvaluatePoint(lo, 3, kv, points)
	require.NoError(t, err)
	end, err := EvaluatePoint(hi, 3, kv, points)
	require.NoError(t, err)
	if start != nurbs.P(0, 0) {
		t.Errorf("expected curve to start at (0,0), starts at %v", start)
	}
	if end != nurbs.P(200, 0) {
		t.Errorf("expected curve to end at (200,0), ends at %v", end)
	}
	mid, err := EvaluatePoint(0.5, 3, kv, points)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, mid.X(), 1e-9)
	assert.InDelta(t, 75.0, mid.Y(), 1e-9)
}

func TestEvaluateRejectsMalformedCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := archPoints()
	kv := knots.Clamped(4, 3)
	_, err := EvaluatePoint(0.5, 4, kv, points)
	assert.True(t, errors.Is(err, nurbs.ErrInvalidDegree), "degree ≥ point count")
	_, err = EvaluatePoint(0.5, -1, kv, points)
	assert.True(t, errors.Is(err, nurbs.ErrInvalidDegree), "negative degree")
	_, err = EvaluatePoint(0.5, 2, kv, points)
	assert.True(t, errors.Is(err, nurbs.ErrInvalidDegree), "knot vector length")
}

func TestEvaluateZeroDenominator(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := archPoints()
	for i := range points {
		points[i].Weight = 0
	}
	_, err := EvaluatePoint(0.5, 3, knots.Clamped(4, 3), points)
	assert.True(t, errors.Is(err, nurbs.ErrDegenerateEvaluation))
	_, err = Sample(3, knots.Clamped(4, 3), points, 10)
	assert.True(t, errors.Is(err, nurbs.ErrDegenerateEvaluation))
}

func TestRationalWeightPullsCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := nurbs.Points(nurbs.P(0, 0), nurbs.P(50, 100), nurbs.P(100, 0))
	kv := knots.Clamped(3, 2)
	plain, err := EvaluatePoint(0.5, 2, kv, points)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, plain.Y(), 1e-9)
	points[1].Weight = 2
	pulled, err := EvaluatePoint(0.5, 2, kv, points)
	require.NoError(t, err)
	assert.InDelta(t, 200.0/3, pulled.Y(), 1e-9)
	assert.InDelta(t, 50.0, pulled.X(), 1e-9)
}

func TestUniformWeightsAreNonRational(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := archPoints()
	scaled := archPoints()
	for i := range scaled {
		scaled[i].Weight = 3.5
	}
	kv := knots.Clamped(4, 3)
	for i := 0; i <= 10; i++ {
		u := float64(i) / 10
		p1, err := EvaluatePoint(u, 3, kv, points)
		require.NoError(t, err)
		p2, err := EvaluatePoint(u, 3, kv, scaled)
		require.NoError(t, err)
		assert.True(t, p1.Equal(p2), "u=%g: %v != %v", u, p1, p2)
	}
}

func TestAffineInvariance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := nurbs.Rotation(30 * nurbs.Deg2Rad).Combine(nurbs.Translation(nurbs.P(10, -20)))
	points := archPoints()
	points[2].Weight = 2
	moved := make([]nurbs.ControlPoint, len(points))
	for i, cp := range points {
		moved[i] = cp.Transformed(m)
	}
	kv := knots.Clamped(4, 3)
	for i := 0; i <= 20; i++ {
		u := float64(i) / 20
		p, err := EvaluatePoint(u, 3, kv, points)
		require.NoError(t, err)
		q, err := EvaluatePoint(u, 3, kv, moved)
		require.NoError(t, err)
		assert.True(t, m.Transform(p).Equal(q), "u=%g: %v != %v", u, m.Transform(p), q)
	}
}

func TestSampleDegenerateSamples(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []nurbs.ControlPoint{
		nurbs.CP(0, 0),
		nurbs.Weighted(nurbs.P(10, 0), 0),
		nurbs.CP(20, 0),
	}
	kv := knots.Clamped(3, 1) // 0 0 1 2 2
	pl, err := Sample(1, kv, points, 2)
	require.NoError(t, err)
	assert.Equal(t, Polyline{nurbs.P(0, 0), nurbs.P(0, 0), nurbs.P(20, 0)}, pl)
	pl, err = Sample(1, kv, points, 2, WithDegenerateSkip())
	require.NoError(t, err)
	assert.Equal(t, Polyline{nurbs.P(0, 0), nurbs.P(20, 0)}, pl)
}

func TestSampleRejectsInvalidResolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Sample(3, knots.Clamped(4, 3), archPoints(), 0)
	assert.True(t, errors.Is(err, nurbs.ErrInvalidResolution))
}

func TestSampleWalksDomain(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := Sample(3, knots.Clamped(4, 3), archPoints(), 4)
	require.NoError(t, err)
	require.Len(t, pl, 5)
	assert.Equal(t, nurbs.P(0, 0), pl.Start())
	assert.Equal(t, nurbs.P(200, 0), pl.End())
	assert.InDelta(t, 75.0, pl[2].Y(), 1e-9)
}
