package ipog

// Options configures a single Generate call. The zero value is usable: no
// tracing, no capacity hint.
//
// Generate's required inputs are just a parameter map and a strength;
// Options exists for the optional ambient behaviour a caller may want from
// a synchronous, I/O-free computation, following the functional-options
// pattern rather than growing Generate's positional parameter list.
type Options struct {
	// Trace, if non-nil, is called once per outer-loop iteration (once per
	// newly active parameter), with a human-readable progress line. It is
	// never required and never replaces an error return.
	Trace func(format string, args ...any)

	// RowCapacityHint preallocates the row slice's capacity. Purely a
	// performance hint; Generate's output does not depend on it.
	RowCapacityHint int
}

// Option mutates an Options value.
type Option func(*Options)

// WithTrace installs a trace hook: the closest equivalent to a verbosity
// flag for this synchronous, otherwise silent computation.
func WithTrace(fn func(format string, args ...any)) Option {
	return func(o *Options) { o.Trace = fn }
}

// WithRowCapacityHint sets Options.RowCapacityHint.
func WithRowCapacityHint(n int) Option {
	return func(o *Options) { o.RowCapacityHint = n }
}

func resolveOptions(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o Options) trace(format string, args ...any) {
	if o.Trace == nil {
		return
	}
	o.Trace(format, args...)
}
