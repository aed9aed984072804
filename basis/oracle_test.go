package basis

import "github.com/dvanauken/ixt-nurbs-curve/knots"

// recursive evaluates N[i,p](u) by the recursive Cox–de Boor definition.
// It is exponential in p and serves as a reference in tests only.
// The last knot of the vector is treated as inclusive.
func recursive(i, p int, u float64, kv knots.KnotVector) float64 {
	if p == 0 {
		last := kv[len(kv)-1]
		if (u >= kv[i] && u < kv[i+1]) || (u == last && u == kv[i+1]) {
			return 1
		}
		return 0
	}
	var N float64
	if den := kv[i+p] - kv[i]; den != 0 {
		N += (u - kv[i]) / den * recursive(i, p-1, u, kv)
	}
	if den := kv[i+p+1] - kv[i+1]; den != 0 {
		N += (kv[i+p+1] - u) / den * recursive(i+1, p-1, u, kv)
	}
	return N
}
