/*
Package basis computes B-spline basis functions.

For a parameter u within knot span i of a curve of degree p, only the p+1
basis functions N[i-p,p](u) … N[i,p](u) are non-zero. Funcs computes these
with the triangular Cox–de Boor scheme (algorithm A2.2 from The NURBS Book,
Piegl & Tiller), which costs O(p²) instead of the exponential effort of
evaluating the recursive definition directly.

The values returned always sum to 1 (partition of unity) for a valid pair
of u and span.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package basis

import (
	"github.com/dvanauken/ixt-nurbs-curve/knots"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nurbs.basis'
func tracer() tracing.Trace {
	return tracing.Select("nurbs.basis")
}

// Funcs returns the p+1 non-zero basis function values at u, for the knot
// span span. Value k belongs to control point span-p+k.
func Funcs(u float64, span, p int, kv knots.KnotVector) []float64 {
	return NewTable(p).Funcs(u, span, kv)
}

// Table holds scratch space for computing basis functions of a fixed degree.
// Re-using a table avoids allocations when sampling a curve. A table must
// not be shared between goroutines.
type Table struct {
	p     int
	n     []float64
	left  []float64
	right []float64
}

// NewTable creates a scratch table for degree p.
func NewTable(p int) *Table {
	return &Table{
		p:     p,
		n:     make([]float64, p+1),
		left:  make([]float64, p+1),
		right: make([]float64, p+1),
	}
}

// Degree returns the degree the table has been created for.
func (t *Table) Degree() int {
	return t.p
}

// Funcs computes the non-zero basis function values at u for knot span span.
// The returned slice is owned by the table and is overwritten by the next
// call.
//
// A zero denominator makes the corresponding term vanish. This happens for
// repeated knots and is not an error.
func (t *Table) Funcs(u float64, span int, kv knots.KnotVector) []float64 {
	N, left, right := t.n, t.left, t.right
	N[0] = 1.0
	for j := 1; j <= t.p; j++ {
		left[j] = u - kv[span+1-j]
		right[j] = kv[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			var temp float64
			if den := right[r+1] + left[j-r]; den != 0 {
				temp = N[r] / den
			} else {
				tracer().Debugf("zero denominator at u=%g, span=%d, j=%d, r=%d", u, span, j, r)
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}
