package output

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/flatenv/pkg"
)

// Filter is a compiled boolean expression over a pair. The expression sees
// the rendered key as key and the value as value, for example:
//
//	key startsWith "DB_" && value != ""
//
// A nil *Filter accepts every pair.
type Filter struct {
	source  string
	program *vm.Program
}

func filterEnv(key, value string) map[string]any {
	return map[string]any{"key": key, "value": value}
}

// NewFilter compiles source. An empty source yields a nil Filter.
func NewFilter(source string) (*Filter, error) {
	if source == "" {
		return nil, nil //nolint:nilnil
	}

	program, err := expr.Compile(source,
		expr.Env(filterEnv("", "")),
		expr.AsBool(),
	)
	if err != nil {
		return nil, pkg.ErrInvalidFilter.Wrap(err).
			With(slog.String("expr", source))
	}

	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.source
}

// Match reports whether the pair satisfies f.
func (f *Filter) Match(key, value string) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv(key, value))
	if err != nil {
		return false, pkg.ErrInvalidFilter.Wrap(err).With(
			slog.String("expr", f.source),
			slog.String("key", key),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}
