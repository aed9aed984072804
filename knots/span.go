package knots

// FindSpan returns the index i of the knot span containing u, i.e.
// knots[i] ≤ u < knots[i+1], for a curve of degree p with n control points.
// The result is clamped to [p, n-1], so that knots[i+p+1] is always a
// valid index.
//
// Corresponds to algorithm A2.1 from The NURBS Book, Piegl & Tiller.
func (kv KnotVector) FindSpan(u float64, p, n int) int {
	if u >= kv[n] {
		return n - 1
	}
	if u <= kv[p] {
		return p
	}
	low, high := p, n
	mid := (low + high) / 2
	for u < kv[mid] || u >= kv[mid+1] {
		if u < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}
