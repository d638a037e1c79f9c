package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/output"
	"github.com/ardnew/flatenv/pkg"
)

// Export prints one shell export statement per pair of the document.
type Export struct {
	Source `embed:""`
	Render `embed:""`

	Spawn string `help:"Also write an executable per pair into DIR ('.' for the working directory, 'temp' for the system temp directory)" placeholder:"DIR" short:"o"`
	Where string `help:"Print only pairs for which this expression over key and value is true"                                           placeholder:"EXPR" short:"w"`
}

// Run executes the export command.
func (e *Export) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger := log.Default()

	cfg := e.config()
	cfg.Spawn = e.Spawn
	cfg.Where = e.Where

	// Options are checked before any input is consumed.
	printer, err := output.NewPrinter(stdoutFrom(ctx), cfg, output.WithLogger(logger))
	if err != nil {
		return e.wrap(err)
	}

	in, tmpl, err := e.open(ctx, logger)
	if err != nil {
		return e.wrap(err)
	}
	defer in.Close()

	count := 0

	for pair, err := range in.Pairs(tmpl) {
		if err != nil {
			return e.wrap(err)
		}

		if err := printer.Print(pair.Key, pair.Value); err != nil {
			return e.wrap(err)
		}

		count++
	}

	logger.DebugContext(ctx, "export complete",
		slog.String("format", in.Format.String()),
		slog.Int("pairs", count),
	)

	return e.wrap(printer.Close())
}

func (e *Export) wrap(err error) error {
	if err == nil {
		return nil
	}

	return pkg.WrapError(err).With(slog.String("command", "export"))
}
