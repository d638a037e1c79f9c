package cmd

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/flatenv/cli/cmd/browse"
	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/output"
	"github.com/ardnew/flatenv/pkg"
)

// Browse picks one pair interactively and prints its export statement.
type Browse struct {
	Source `embed:""`
	Render `embed:""`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger := log.Default()

	printer, err := output.NewPrinter(stdoutFrom(ctx), b.config(), output.WithLogger(logger))
	if err != nil {
		return b.wrap(err)
	}

	items, err := b.items(ctx, printer, logger)
	if err != nil {
		return b.wrap(err)
	}

	// The finder draws on stderr so that stdout carries only the result.
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr)}
	if b.fromStdin() {
		opts = append(opts, tea.WithInputTTY())
	}

	item, ok, err := browse.Run(ctx, items, logger, opts...)
	if err != nil || !ok {
		return b.wrap(err)
	}

	return b.wrap(printer.Print(item.Key, item.Value))
}

// items reads every pair with its key rendered for display.
func (b *Browse) items(
	ctx context.Context,
	printer *output.Printer,
	logger log.Logger,
) ([]browse.Item, error) {
	in, tmpl, err := b.open(ctx, logger)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var items []browse.Item

	for pair, err := range in.Pairs(tmpl) {
		if err != nil {
			return nil, err
		}

		items = append(items, browse.Item{
			Key:   printer.Key(pair.Key),
			Value: pair.Value,
		})
	}

	return items, nil
}

func (b *Browse) wrap(err error) error {
	if err == nil {
		return nil
	}

	return pkg.WrapError(err).With(slog.String("command", "browse"))
}
