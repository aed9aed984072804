package curve

// Option configures curve sampling.
//
// Example:
//
//	polyline, err := Render(points, nurbs.Open, WithSegments(100))
type Option func(*options)

type options struct {
	segments       int             // fixed segment count, if > 0
	resolution     func(n int) int // segment count from point count
	skipDegenerate bool            // skip degenerate samples instead of repeating
}

func defaultOptions() options {
	return options{
		resolution: DefaultResolution,
	}
}

func collectOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// segmentsFor returns the segment count to use for n control points.
func (o options) segmentsFor(n int) int {
	if o.segments != 0 {
		return o.segments
	}
	return o.resolution(n)
}

// WithSegments sets a fixed number of segments for sampling, overriding the
// resolution policy. Values < 1 make Render fail with ErrInvalidResolution.
func WithSegments(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = -1
		}
		o.segments = n
	}
}

// WithResolution sets a policy computing the number of segments from the
// number of control points. The default is DefaultResolution.
func WithResolution(f func(n int) int) Option {
	return func(o *options) {
		if f != nil {
			o.resolution = f
		}
	}
}

// WithDegenerateSkip drops samples with a zero rational denominator from the
// polyline. By default, the previous sample is repeated instead, so that the
// polyline always has segments+1 points.
func WithDegenerateSkip() Option {
	return func(o *options) {
		o.skipDegenerate = true
	}
}
