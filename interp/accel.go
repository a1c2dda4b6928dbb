package interp

import "sort"

// Accel caches the index of the last bracketing interval found during a
// spline lookup. Repeated queries at nearby coordinates then resolve in O(1)
// instead of a full binary search. One Accel serves exactly one coordinate
// axis; callers own their accelerators and must not share one across axes or
// across goroutines.
type Accel struct {
	cached int
}

func NewAccel() *Accel {
	return &Accel{}
}

// Reset forgets the cached interval.
func (a *Accel) Reset() {
	a.cached = 0
}

// find returns i such that xs[i] <= x <= xs[i+1]. The caller guarantees x is
// inside [xs[0], xs[len(xs)-1]].
func (a *Accel) find(xs []float64, x float64) int {
	n := len(xs)
	if a.cached > n-2 {
		a.cached = 0
	}
	i := a.cached

	switch {
	case x < xs[i]:
		i = bracket(xs[:i+1], x)
	case x >= xs[i+1]:
		i += bracket(xs[i:], x)
	}

	a.cached = i
	return i
}

// bracket binary-searches for the interval of x within xs, clamping to the
// last interval when x equals the final knot.
func bracket(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i == len(xs) || xs[i] != x {
		i--
	}
	if i < 0 {
		i = 0
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}
	return i
}
