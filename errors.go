package nurbs

import "errors"

var (
	// ErrInvalidDegree indicates a negative degree, or a degree too high for
	// the number of control points.
	ErrInvalidDegree = errors.New("invalid degree")
	// ErrDegenerateEvaluation indicates a zero rational denominator.
	ErrDegenerateEvaluation = errors.New("degenerate evaluation")
	// ErrInsufficientPoints indicates that a curve is not yet defined.
	ErrInsufficientPoints = errors.New("insufficient control points")
	// ErrInvalidWeight indicates a non-positive or non-finite weight.
	ErrInvalidWeight = errors.New("control point weight must be positive")
	// ErrInvalidPoint indicates a control point coordinate contains NaN/Inf.
	ErrInvalidPoint = errors.New("invalid control point coordinate")
	// ErrInvalidResolution indicates a sampling segment count < 1.
	ErrInvalidResolution = errors.New("invalid sampling resolution")
	// ErrIndexOutOfRange indicates access to a non-existent control point.
	ErrIndexOutOfRange = errors.New("control point index out of range")
	// ErrAlreadyClosed indicates modification of a closed sketch.
	ErrAlreadyClosed = errors.New("sketch is already closed")
)
