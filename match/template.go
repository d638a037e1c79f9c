package match

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/ardnew/flatenv/dotenv"
	"github.com/ardnew/flatenv/flatten"
	"github.com/ardnew/flatenv/pkg"
)

var errEmptyName = errors.New("placeholder names no key")

// Template maps flattened input paths to output names.
type Template struct {
	names flatten.Map
}

// FromJSON builds a Template from a JSON template document.
func FromJSON(raw string) (*Template, error) {
	m, err := flatten.Parse([]byte(FixJSON(raw)))
	if err != nil {
		return nil, pkg.ErrInvalidMatchTemplate.Wrap(err).
			With(slog.String("format", "json"))
	}

	return &Template{names: m}, nil
}

// FromDotenv builds a Template from a dotenv template document. Assignments
// may be separated by ';' as well as by newlines.
func FromDotenv(raw string) (*Template, error) {
	pairs, err := dotenv.ParseString(FixDotenv(raw), dotenv.WithLookupEnv(nil))
	if err != nil {
		return nil, pkg.ErrInvalidMatchTemplate.Wrap(err).
			With(slog.String("format", "dotenv"))
	}

	m := make(flatten.Map, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}

	return &Template{names: m}, nil
}

// Len returns the number of paths in t.
func (t *Template) Len() int { return len(t.names) }

// Paths returns the template paths in lexicographic order.
func (t *Template) Paths() []string { return t.names.Keys() }

// Rename returns the output name for the input path key. It reports ok false
// when the template does not select key. A selected path whose placeholder is
// empty once quotes are removed is an error.
func (t *Template) Rename(key string) (name string, ok bool, err error) {
	v, ok := t.names[key]
	if !ok {
		return "", false, nil
	}

	name = strings.ReplaceAll(text(v), `"`, "")
	if name == "" {
		return "", false, pkg.ErrInvalidMatchTemplate.Wrap(errEmptyName).
			With(slog.String("key", flatten.Render(key, '.')))
	}

	return name, true, nil
}

// text returns the literal form of a template leaf. Strings are used as
// given; other JSON scalars use their encoded form.
func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return string(b)
}
