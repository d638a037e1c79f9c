package dotenv

import (
	"os"

	"github.com/ardnew/flatenv/log"
)

// Option applies a configuration option to config.
type Option func(config) config

type config struct {
	env    LookupEnv
	logger log.Logger
}

func makeConfig(opts ...Option) config {
	c := config{env: os.LookupEnv}

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithLookupEnv sets the function used to consult the process environment
// during substitution. A nil function disables environment lookups entirely.
func WithLookupEnv(fn LookupEnv) Option {
	return func(c config) config {
		if fn == nil {
			fn = func(string) (string, bool) { return "", false }
		}

		c.env = fn

		return c
	}
}

// WithLogger sets the logger that receives a trace record per parsed line.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}
