package output

import "github.com/ardnew/flatenv/log"

// Option applies a configuration option to options.
type Option func(options) options

type options struct {
	logger log.Logger
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}

// WithLogger sets the logger that receives a record per printed pair and
// the PATH hint after spawning.
func WithLogger(l log.Logger) Option {
	return func(o options) options {
		o.logger = l

		return o
	}
}
