package interp

func buildLinear(xs, ys, b, c, d []float64) {
	for i := 0; i < len(xs)-1; i++ {
		b[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
		c[i] = 0
		d[i] = 0
	}
}
