package input

import (
	"os"

	"github.com/ardnew/flatenv/dotenv"
	"github.com/ardnew/flatenv/log"
)

// Option applies a configuration option to config.
type Option func(config) config

type config struct {
	env    dotenv.LookupEnv
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

// WithLookupEnv sets the environment consulted by dotenv substitutions.
// See [dotenv.WithLookupEnv].
func WithLookupEnv(fn dotenv.LookupEnv) Option {
	return func(c config) config {
		c.env = fn

		return c
	}
}

// WithLogger sets the logger passed to the parsers.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}
