package treeed

import "log/slog"

// Option configures a component during construction.
type Option func(*config)

type config struct {
	log *slog.Logger
}

// WithLogger attaches a logger that records subscribe, notify, and
// dispose activity at debug level. Without it the component does no
// logging work at all.
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}
