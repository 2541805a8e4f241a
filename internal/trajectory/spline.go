package trajectory

import "sort"

// spline is a natural cubic spline over a strictly ascending knot vector.
// Second derivatives at the boundary knots are zero; outside the knot range
// the boundary segment polynomial is evaluated as-is (no clamping).
type spline struct {
	xs []float64
	ys []float64
	m  []float64 // second derivative at each knot
}

// fitSpline solves the natural cubic system for the given knots.
// One knot degenerates to a constant, two to a straight line.
func fitSpline(xs, ys []float64) *spline {
	n := len(xs)
	s := &spline{xs: xs, ys: ys, m: make([]float64, n)}
	if n < 3 {
		return s
	}

	// Thomas algorithm on the interior tridiagonal system; the natural
	// boundary condition pins m[0] and m[n-1] at zero.
	c := make([]float64, n) // superdiagonal factors from the forward sweep
	rhs := make([]float64, n)
	for i := 1; i < n-1; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]
		d := 2 * (h0 + h1)
		r := 6 * ((ys[i+1]-ys[i])/h1 - (ys[i]-ys[i-1])/h0)

		denom := d - h0*c[i-1]
		c[i] = h1 / denom
		rhs[i] = (r - h0*rhs[i-1]) / denom
	}

	// Back substitution.
	for i := n - 2; i >= 1; i-- {
		s.m[i] = rhs[i] - c[i]*s.m[i+1]
	}

	return s
}

// at evaluates the spline at x. Knot values are reproduced exactly.
func (s *spline) at(x float64) float64 {
	n := len(s.xs)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return s.ys[0]
	}

	i := sort.SearchFloat64s(s.xs, x)
	if i < n && s.xs[i] == x {
		return s.ys[i]
	}

	seg := i - 1
	if seg < 0 {
		seg = 0
	}
	if seg > n-2 {
		seg = n - 2
	}

	x0, x1 := s.xs[seg], s.xs[seg+1]
	y0, y1 := s.ys[seg], s.ys[seg+1]
	m0, m1 := s.m[seg], s.m[seg+1]
	h := x1 - x0

	a := (x1 - x) / h
	b := (x - x0) / h
	return a*y0 + b*y1 + ((a*a*a-a)*m0+(b*b*b-b)*m1)*h*h/6
}
