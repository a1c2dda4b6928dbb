package interp

import "math"

// buildAkima fits Akima's 1970 interpolant. Segment slopes are extended past
// both ends by linear extrapolation, node slopes are the Akima weighted
// average, and each interval gets the cubic Hermite matching values and node
// slopes.
func buildAkima(xs, ys, b, c, d []float64) {
	n := len(xs)

	// m[2..n] are the data slopes; two phantom slopes on each side.
	m := make([]float64, n+3)
	for i := 0; i < n-1; i++ {
		m[i+2] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}
	m[1] = 2*m[2] - m[3]
	m[0] = 2*m[1] - m[2]
	m[n+1] = 2*m[n] - m[n-1]
	m[n+2] = 2*m[n+1] - m[n]

	// Node slopes.
	s := make([]float64, n)
	for i := 0; i < n; i++ {
		w1 := math.Abs(m[i+3] - m[i+2])
		w2 := math.Abs(m[i+1] - m[i])
		if w1+w2 == 0 {
			s[i] = (m[i+1] + m[i+2]) / 2
		} else {
			s[i] = (w1*m[i+1] + w2*m[i+2]) / (w1 + w2)
		}
	}

	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		b[i] = s[i]
		c[i] = (3*m[i+2] - 2*s[i] - s[i+1]) / h
		d[i] = (s[i] + s[i+1] - 2*m[i+2]) / (h * h)
	}
}
