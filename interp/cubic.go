package interp

// buildCubic fits a natural cubic spline: second derivatives at the interior
// knots come from the standard tridiagonal system, solved with the Thomas
// algorithm, with zero curvature at both ends.
func buildCubic(xs, ys, b, c, d []float64) {
	n := len(xs)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	// m holds y'' at each knot; m[0] = m[n-1] = 0.
	m := make([]float64, n)
	if n > 2 {
		diag := make([]float64, n-2)
		rhs := make([]float64, n-2)
		sub := make([]float64, n-2)
		sup := make([]float64, n-2)
		for i := 1; i < n-1; i++ {
			diag[i-1] = 2 * (h[i-1] + h[i])
			sub[i-1] = h[i-1]
			sup[i-1] = h[i]
			rhs[i-1] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
		}

		// Forward sweep.
		for i := 1; i < n-2; i++ {
			w := sub[i] / diag[i-1]
			diag[i] -= w * sup[i-1]
			rhs[i] -= w * rhs[i-1]
		}
		// Back substitution.
		m[n-2] = rhs[n-3] / diag[n-3]
		for i := n - 3; i >= 1; i-- {
			m[i] = (rhs[i-1] - sup[i-1]*m[i+1]) / diag[i-1]
		}
	}

	for i := 0; i < n-1; i++ {
		b[i] = (ys[i+1]-ys[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6
		c[i] = m[i] / 2
		d[i] = (m[i+1] - m[i]) / (6 * h[i])
	}
}
