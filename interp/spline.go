package interp

import "fmt"

// Spline is a 1D piecewise-cubic interpolant over tabulated samples. On each
// interval [xs[i], xs[i+1]] the value is
//
//	ys[i] + b[i]*t + c[i]*t^2 + d[i]*t^3,  t = x - xs[i]
//
// which keeps evaluation, differentiation and integration uniform across
// methods. A Spline is immutable after construction; evaluation mutates only
// the caller-supplied Accel.
type Spline struct {
	method  string
	xs, ys  []float64
	b, c, d []float64
}

// coeffBuilder fills b, c, d from xs and ys.
type coeffBuilder struct {
	minPoints int
	build     func(xs, ys, b, c, d []float64)
}

var builders = map[string]coeffBuilder{
	"linear": {minPoints: 2, build: buildLinear},
	"cubic":  {minPoints: 3, build: buildCubic},
	"akima":  {minPoints: 5, build: buildAkima},
}

// Methods lists the supported 1D interpolation method tags.
func Methods() []string {
	return []string{"akima", "cubic", "linear"}
}

// NewSpline constructs a 1D interpolant of the named method over xs and ys.
// xs must be strictly increasing. The input slices are copied.
func NewSpline(method string, xs, ys []float64) (*Spline, error) {
	bld, ok := builders[method]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < bld.minPoints {
		return nil, fmt.Errorf("%w: %q needs %d points, got %d", ErrTooFewPoints, method, bld.minPoints, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotMonotonic, i-1, xs[i-1], i, xs[i])
		}
	}

	s := &Spline{
		method: method,
		xs:     append([]float64(nil), xs...),
		ys:     append([]float64(nil), ys...),
		b:      make([]float64, len(xs)-1),
		c:      make([]float64, len(xs)-1),
		d:      make([]float64, len(xs)-1),
	}
	bld.build(s.xs, s.ys, s.b, s.c, s.d)
	return s, nil
}

// Method returns the interpolation method tag the spline was built with.
func (s *Spline) Method() string { return s.method }

// Min returns the lower bound of the interpolation range.
func (s *Spline) Min() float64 { return s.xs[0] }

// Max returns the upper bound of the interpolation range.
func (s *Spline) Max() float64 { return s.xs[len(s.xs)-1] }

func (s *Spline) locate(x float64, acc *Accel) (int, error) {
	if acc == nil {
		return 0, ErrNilAccel
	}
	if x < s.xs[0] || x > s.xs[len(s.xs)-1] {
		return 0, fmt.Errorf("%w: x=%g not in [%g, %g]", ErrDomain, x, s.xs[0], s.xs[len(s.xs)-1])
	}
	return acc.find(s.xs, x), nil
}

// Eval returns the interpolated value at x.
func (s *Spline) Eval(x float64, acc *Accel) (float64, error) {
	i, err := s.locate(x, acc)
	if err != nil {
		return 0, err
	}
	t := x - s.xs[i]
	return s.ys[i] + t*(s.b[i]+t*(s.c[i]+t*s.d[i])), nil
}

// Deriv returns the first derivative at x.
func (s *Spline) Deriv(x float64, acc *Accel) (float64, error) {
	i, err := s.locate(x, acc)
	if err != nil {
		return 0, err
	}
	t := x - s.xs[i]
	return s.b[i] + t*(2*s.c[i]+3*t*s.d[i]), nil
}

// Deriv2 returns the second derivative at x.
func (s *Spline) Deriv2(x float64, acc *Accel) (float64, error) {
	i, err := s.locate(x, acc)
	if err != nil {
		return 0, err
	}
	t := x - s.xs[i]
	return 2*s.c[i] + 6*t*s.d[i], nil
}

// Integrate returns the definite integral over [a, b], with a <= b and both
// bounds inside the interpolation range.
func (s *Spline) Integrate(a, b float64, acc *Accel) (float64, error) {
	if a > b {
		return 0, fmt.Errorf("%w: integration bounds reversed: a=%g > b=%g", ErrDomain, a, b)
	}
	ia, err := s.locate(a, acc)
	if err != nil {
		return 0, err
	}
	ib, err := s.locate(b, acc)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := ia; i <= ib; i++ {
		lo := s.xs[i]
		if i == ia {
			lo = a
		}
		hi := s.xs[i+1]
		if i == ib {
			hi = b
		}
		sum += s.segmentIntegral(i, lo-s.xs[i], hi-s.xs[i])
	}
	return sum, nil
}

// segmentIntegral integrates segment i's polynomial between local offsets
// t1 <= t2.
func (s *Spline) segmentIntegral(i int, t1, t2 float64) float64 {
	anti := func(t float64) float64 {
		return t * (s.ys[i] + t*(s.b[i]/2+t*(s.c[i]/3+t*s.d[i]/4)))
	}
	return anti(t2) - anti(t1)
}
