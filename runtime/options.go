package runtime

import "log/slog"

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger threaded through realization, dispatch and
// materialization.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithName names the runtime in log records and errors.
func WithName(name string) Option {
	return func(r *Runtime) {
		r.name = name
	}
}
