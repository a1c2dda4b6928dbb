package interp

import "fmt"

// Spline2D is a 2D interpolant over a rectilinear grid. Values are supplied
// flattened row-major: zs[i*len(ys)+j] = z(xs[i], ys[j]). Immutable after
// construction; evaluation mutates only the caller-supplied accelerators,
// one per axis.
type Spline2D struct {
	method string
	xs, ys []float64
	zs     []float64

	// Node partial derivatives, same layout as zs. Only set for bicubic.
	zx, zy, zxy []float64
}

var methods2d = map[string]int{
	"bilinear": 2,
	"bicubic":  4,
}

// Methods2D lists the supported 2D interpolation method tags.
func Methods2D() []string {
	return []string{"bicubic", "bilinear"}
}

// NewSpline2D constructs a 2D interpolant of the named method. xs and ys must
// be strictly increasing and len(zs) must equal len(xs)*len(ys). The input
// slices are copied.
func NewSpline2D(method string, xs, ys, zs []float64) (*Spline2D, error) {
	minPoints, ok := methods2d[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if len(zs) != len(xs)*len(ys) {
		return nil, fmt.Errorf("%w: %d values for %dx%d grid", ErrLengthMismatch, len(zs), len(xs), len(ys))
	}
	if len(xs) < minPoints || len(ys) < minPoints {
		return nil, fmt.Errorf("%w: %q needs a %dx%d grid, got %dx%d",
			ErrTooFewPoints, method, minPoints, minPoints, len(xs), len(ys))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotMonotonic, i-1, xs[i-1], i, xs[i])
		}
	}
	for j := 1; j < len(ys); j++ {
		if ys[j] <= ys[j-1] {
			return nil, fmt.Errorf("%w: ys[%d]=%g, ys[%d]=%g", ErrNotMonotonic, j-1, ys[j-1], j, ys[j])
		}
	}

	s := &Spline2D{
		method: method,
		xs:     append([]float64(nil), xs...),
		ys:     append([]float64(nil), ys...),
		zs:     append([]float64(nil), zs...),
	}
	if method == "bicubic" {
		s.initNodeDerivs()
	}
	return s, nil
}

// Method returns the interpolation method tag the spline was built with.
func (s *Spline2D) Method() string { return s.method }

// MinX returns the lower bound of the first coordinate range.
func (s *Spline2D) MinX() float64 { return s.xs[0] }

// MaxX returns the upper bound of the first coordinate range.
func (s *Spline2D) MaxX() float64 { return s.xs[len(s.xs)-1] }

// MinY returns the lower bound of the second coordinate range.
func (s *Spline2D) MinY() float64 { return s.ys[0] }

// MaxY returns the upper bound of the second coordinate range.
func (s *Spline2D) MaxY() float64 { return s.ys[len(s.ys)-1] }

func (s *Spline2D) at(i, j int) float64 { return s.zs[i*len(s.ys)+j] }

// initNodeDerivs estimates dz/dx, dz/dy and the cross derivative at every
// grid node with centered differences, one-sided at the boundary.
func (s *Spline2D) initNodeDerivs() {
	nx, ny := len(s.xs), len(s.ys)
	s.zx = make([]float64, nx*ny)
	s.zy = make([]float64, nx*ny)
	s.zxy = make([]float64, nx*ny)

	get := func(zs []float64, i, j int) float64 { return zs[i*ny+j] }

	diffX := func(zs []float64, i, j int) float64 {
		switch i {
		case 0:
			return (get(zs, 1, j) - get(zs, 0, j)) / (s.xs[1] - s.xs[0])
		case nx - 1:
			return (get(zs, nx-1, j) - get(zs, nx-2, j)) / (s.xs[nx-1] - s.xs[nx-2])
		default:
			return (get(zs, i+1, j) - get(zs, i-1, j)) / (s.xs[i+1] - s.xs[i-1])
		}
	}
	diffY := func(zs []float64, i, j int) float64 {
		switch j {
		case 0:
			return (get(zs, i, 1) - get(zs, i, 0)) / (s.ys[1] - s.ys[0])
		case ny - 1:
			return (get(zs, i, ny-1) - get(zs, i, ny-2)) / (s.ys[ny-1] - s.ys[ny-2])
		default:
			return (get(zs, i, j+1) - get(zs, i, j-1)) / (s.ys[j+1] - s.ys[j-1])
		}
	}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			s.zx[i*ny+j] = diffX(s.zs, i, j)
			s.zy[i*ny+j] = diffY(s.zs, i, j)
		}
	}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			s.zxy[i*ny+j] = diffY(s.zx, i, j)
		}
	}
}

func (s *Spline2D) locate(x, y float64, xacc, yacc *Accel) (int, int, error) {
	if xacc == nil || yacc == nil {
		return 0, 0, ErrNilAccel
	}
	if x < s.xs[0] || x > s.xs[len(s.xs)-1] {
		return 0, 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrDomain, x, s.xs[0], s.xs[len(s.xs)-1])
	}
	if y < s.ys[0] || y > s.ys[len(s.ys)-1] {
		return 0, 0, fmt.Errorf("%w: y=%g not in [%g, %g]", ErrDomain, y, s.ys[0], s.ys[len(s.ys)-1])
	}
	return xacc.find(s.xs, x), yacc.find(s.ys, y), nil
}

// derivative order per axis for a single evaluation
type evalOrder struct{ dx, dy int }

func (s *Spline2D) eval(x, y float64, xacc, yacc *Accel, ord evalOrder) (float64, error) {
	i, j, err := s.locate(x, y, xacc, yacc)
	if err != nil {
		return 0, err
	}
	if s.method == "bilinear" {
		return s.evalBilinear(i, j, x, y, ord), nil
	}
	return s.evalBicubic(i, j, x, y, ord), nil
}

// Eval returns the interpolated value at (x, y).
func (s *Spline2D) Eval(x, y float64, xacc, yacc *Accel) (float64, error) {
	return s.eval(x, y, xacc, yacc, evalOrder{0, 0})
}

// DerivX returns dz/dx at (x, y).
func (s *Spline2D) DerivX(x, y float64, xacc, yacc *Accel) (float64, error) {
	return s.eval(x, y, xacc, yacc, evalOrder{1, 0})
}

// DerivY returns dz/dy at (x, y).
func (s *Spline2D) DerivY(x, y float64, xacc, yacc *Accel) (float64, error) {
	return s.eval(x, y, xacc, yacc, evalOrder{0, 1})
}

// DerivXX returns d2z/dx2 at (x, y).
func (s *Spline2D) DerivXX(x, y float64, xacc, yacc *Accel) (float64, error) {
	return s.eval(x, y, xacc, yacc, evalOrder{2, 0})
}

func (s *Spline2D) evalBilinear(i, j int, x, y float64, ord evalOrder) float64 {
	dx := s.xs[i+1] - s.xs[i]
	dy := s.ys[j+1] - s.ys[j]
	t := (x - s.xs[i]) / dx
	u := (y - s.ys[j]) / dy

	z00 := s.at(i, j)
	z10 := s.at(i+1, j)
	z01 := s.at(i, j+1)
	z11 := s.at(i+1, j+1)

	switch ord {
	case evalOrder{0, 0}:
		return z00*(1-t)*(1-u) + z10*t*(1-u) + z01*(1-t)*u + z11*t*u
	case evalOrder{1, 0}:
		return ((z10-z00)*(1-u) + (z11-z01)*u) / dx
	case evalOrder{0, 1}:
		return ((z01-z00)*(1-t) + (z11-z10)*t) / dy
	default: // second derivative of a bilinear patch
		return 0
	}
}

// evalBicubic evaluates the Hermite bicubic patch of cell (i, j). The patch
// matches node values and the finite-difference node derivatives, giving a
// C1 surface.
func (s *Spline2D) evalBicubic(i, j int, x, y float64, ord evalOrder) float64 {
	ny := len(s.ys)
	dx := s.xs[i+1] - s.xs[i]
	dy := s.ys[j+1] - s.ys[j]
	t := (x - s.xs[i]) / dx
	u := (y - s.ys[j]) / dy

	// Row weights select among {z(x0,.), z(x1,.), zx(x0,.), zx(x1,.)} and
	// column weights among the same in y.
	px := hermiteWeights(t, dx, ord.dx)
	pu := hermiteWeights(u, dy, ord.dy)

	idx := func(a, b int) int { return (i+a)*ny + (j + b) }
	var g [4][4]float64
	for a := 0; a < 2; a++ {
		for bb := 0; bb < 2; bb++ {
			k := idx(a, bb)
			g[a][bb] = s.zs[k]
			g[a][bb+2] = s.zy[k]
			g[a+2][bb] = s.zx[k]
			g[a+2][bb+2] = s.zxy[k]
		}
	}

	var sum float64
	for a := 0; a < 4; a++ {
		for bb := 0; bb < 4; bb++ {
			sum += px[a] * pu[bb] * g[a][bb]
		}
	}
	return sum
}

// hermiteWeights returns the four cubic Hermite basis weights at local
// coordinate t in a cell of width h, differentiated deriv times with respect
// to the global coordinate. Order: value at node 0, value at node 1,
// derivative at node 0, derivative at node 1.
func hermiteWeights(t, h float64, deriv int) [4]float64 {
	switch deriv {
	case 0:
		return [4]float64{
			2*t*t*t - 3*t*t + 1,
			-2*t*t*t + 3*t*t,
			h * (t*t*t - 2*t*t + t),
			h * (t*t*t - t*t),
		}
	case 1:
		return [4]float64{
			(6*t*t - 6*t) / h,
			(-6*t*t + 6*t) / h,
			3*t*t - 4*t + 1,
			3*t*t - 2*t,
		}
	default:
		return [4]float64{
			(12*t - 6) / (h * h),
			(-12*t + 6) / (h * h),
			(6*t - 4) / h,
			(6*t - 2) / h,
		}
	}
}
