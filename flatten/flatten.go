package flatten

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/pkg"
)

// Option applies a configuration option to config.
type Option func(config) config

type config struct {
	logger log.Logger
}

// WithLogger sets the logger that receives a trace record per leaf.
func WithLogger(l log.Logger) Option {
	return func(c config) config {
		c.logger = l

		return c
	}
}

// Flatten walks a decoded JSON value and returns its leaves keyed by path.
//
// Object members extend the path with the member name and array elements
// with their decimal index. Empty objects and arrays contribute nothing.
// A scalar root is stored under the empty path.
func Flatten(v any, opts ...Option) Map {
	var c config

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	m := make(Map)
	walk(m, c.logger, "", v)

	return m
}

func walk(m Map, logger log.Logger, path string, v any) {
	switch v := v.(type) {
	case map[string]any:
		for name, member := range v {
			walk(m, logger, Join(path, name), member)
		}

	case []any:
		for i, elem := range v {
			walk(m, logger, Join(path, strconv.Itoa(i)), elem)
		}

	default:
		logger.Trace("json leaf",
			slog.String("path", Render(path, '.')),
			slog.Bool("text", isText(v)),
		)

		m[path] = v
	}
}

func isText(v any) bool {
	_, ok := v.(string)

	return ok
}

// Decode parses a complete JSON document into maps, slices and scalars.
func Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, pkg.ErrParse.Wrap(err).With(slog.String("format", "json"))
	}

	return v, nil
}

// Parse decodes a JSON document and flattens it.
func Parse(data []byte, opts ...Option) (Map, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return Flatten(v, opts...), nil
}
