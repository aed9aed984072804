/*
Package knots builds knot vectors for NURBS curves and locates the knot span
of a curve parameter.

Two regimes are supported. Open curves use a clamped knot vector, repeating
the first and last knot degree+1 times, which forces the curve through its
first and last control point:

	n=4, p=3:  0 0 0 0 1 1 1 1
	n=6, p=3:  0 0 0 0 1 2 3 3 3 3

Closed curves use a uniform sequence 0, 1, …, n+p. Together with wrapping the
first p control points onto the tail of the control polygon, this yields a
curve which closes smoothly at its seam. Note that this is not a periodic
knot vector in the strict sense.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package knots

import (
	"fmt"

	nurbs "github.com/dvanauken/ixt-nurbs-curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nurbs.knots'
func tracer() tracing.Trace {
	return tracing.Select("nurbs.knots")
}

// KnotVector is a non-decreasing sequence of knots. For n control points and
// degree p it has length n+p+1.
type KnotVector []float64

// Build creates a knot vector for n control points of a curve of degree p.
// Open topologies get a clamped vector, closed ones a uniform vector.
//
// Build returns ErrInsufficientPoints for n < 1 and ErrInvalidDegree for
// p < 0. For open curves p ≥ n is an error as well, as no clamped sequence
// can be formed.
func Build(n, p int, topo nurbs.Topology) (KnotVector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: knot vector needs at least 1 point, got %d",
			nurbs.ErrInsufficientPoints, n)
	}
	if p < 0 {
		return nil, fmt.Errorf("%w: degree %d is negative", nurbs.ErrInvalidDegree, p)
	}
	if topo == nurbs.Closed {
		return Uniform(n, p), nil
	}
	if p >= n {
		return nil, fmt.Errorf("%w: degree %d needs more than %d points for a clamped knot vector",
			nurbs.ErrInvalidDegree, p, n)
	}
	return Clamped(n, p), nil
}

// Clamped creates an open, clamped knot vector for n points and degree p.
// It does not check its arguments, see Build.
func Clamped(n, p int) KnotVector {
	kv := make(KnotVector, 0, n+p+1)
	for i := 0; i <= p; i++ {
		kv = append(kv, 0)
	}
	for i := 1; i < n-p; i++ {
		kv = append(kv, float64(i))
	}
	end := float64(max(1, n-p))
	for i := 0; i <= p; i++ {
		kv = append(kv, end)
	}
	tracer().Debugf("clamped knot vector for n=%d, p=%d: %v", n, p, kv)
	return kv
}

// Uniform creates the knot vector 0, 1, …, n+p for closed curves.
// It does not check its arguments, see Build.
func Uniform(n, p int) KnotVector {
	kv := make(KnotVector, n+p+1)
	for i := range kv {
		kv[i] = float64(i)
	}
	tracer().Debugf("uniform knot vector for n=%d, p=%d: %v", n, p, kv)
	return kv
}

// Domain returns the valid parameter range [knots[p], knots[len-p-1]]
// for a curve of degree p.
func (kv KnotVector) Domain(p int) (float64, float64) {
	return kv[p], kv[len(kv)-p-1]
}

// Param maps a fraction t ∈ [0,1] onto the parameter domain for degree p.
func (kv KnotVector) Param(t float64, p int) float64 {
	umin, umax := kv.Domain(p)
	return t*(umax-umin) + umin
}

// IsNonDecreasing is a predicate: knots[i] ≤ knots[i+1] for every i.
func (kv KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the knot vector.
func (kv KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), kv...)
}
