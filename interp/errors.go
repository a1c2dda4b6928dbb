package interp

import "errors"

var (
	// ErrDomain reports a coordinate outside the interpolation range.
	ErrDomain = errors.New("coordinate outside interpolation range")

	// ErrUnknownMethod reports an unrecognized interpolation method tag.
	ErrUnknownMethod = errors.New("unknown interpolation method")

	// ErrTooFewPoints reports a data array too short for the chosen method.
	ErrTooFewPoints = errors.New("too few points for interpolation method")

	// ErrNotMonotonic reports a coordinate array that is not strictly increasing.
	ErrNotMonotonic = errors.New("coordinates must be strictly increasing")

	// ErrLengthMismatch reports coordinate and value arrays of different sizes.
	ErrLengthMismatch = errors.New("coordinate and value array lengths differ")

	// ErrNilAccel reports a spline evaluation called without an accelerator.
	// This is a usage error, not a numeric one.
	ErrNilAccel = errors.New("spline evaluation requires an accelerator")
)
