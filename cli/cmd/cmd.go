package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/flatenv/input"
	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/match"
	"github.com/ardnew/flatenv/output"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	stdinKey  struct{}
	stdoutKey struct{}
)

// WithStdin returns a new context.Context whose commands read undirected
// input from r instead of [os.Stdin].
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

// WithStdout returns a new context.Context whose commands write export
// statements to w instead of [os.Stdout].
func WithStdout(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, stdoutKey{}, w)
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

func stdoutFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(stdoutKey{}).(io.Writer); ok && w != nil {
		return w
	}

	return os.Stdout
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Source selects the document and the optional match template.
type Source struct {
	File  string `arg:"" help:"Input file, or '-' for stdin (format guessed)" optional:"" type:"path"`
	Match string `       help:"Keep only keys named by this template, renamed to its $NAMEs" placeholder:"TEMPLATE" short:"m"`
}

// open opens the document and parses the template in its grammar.
func (s *Source) open(ctx context.Context, logger log.Logger) (*input.Input, *match.Template, error) {
	path := s.File
	if path == stdinSource {
		path = ""
	}

	in, err := input.Open(path, stdinFrom(ctx), input.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if s.Match == "" {
		return in, nil, nil
	}

	tmpl, err := in.Template(s.Match)
	if err != nil {
		_ = in.Close()

		return nil, nil, err
	}

	return in, tmpl, nil
}

// fromStdin reports whether the document is read from stdin.
func (s *Source) fromStdin() bool {
	return s.File == "" || s.File == stdinSource
}

// Render selects how keys are rendered.
type Render struct {
	Separator string `default:"."           help:"Character joining nested key segments" short:"s"`
	Casing    string `default:"insensitive" enum:"insensitive,lower,upper" help:"Key casing (${enum})" short:"c"`
}

func (r *Render) config() output.Config {
	return output.Config{
		Separator: r.Separator,
		Casing:    output.Casing(r.Casing),
	}
}
