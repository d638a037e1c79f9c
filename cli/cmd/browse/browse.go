package browse

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/pkg"
)

// ErrNoItems is returned when there is nothing to browse.
var ErrNoItems = pkg.NewError("no pairs to browse")

// Run shows the finder over list until the user accepts or quits. It reports
// ok false if the user quit without a selection.
func Run(
	ctx context.Context,
	list []Item,
	logger log.Logger,
	opts ...tea.ProgramOption,
) (item Item, ok bool, err error) {
	if len(list) == 0 {
		return Item{}, false, ErrNoItems
	}

	logger.TraceContext(ctx, "browse start", slog.Int("items", len(list)))

	p := tea.NewProgram(newModel(list), append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	final, err := p.Run()
	if err != nil {
		return Item{}, false, err
	}

	m, _ := final.(model)
	if m.chosen == nil {
		logger.TraceContext(ctx, "browse cancelled")

		return Item{}, false, nil
	}

	logger.TraceContext(ctx, "browse selected", slog.String("key", m.chosen.Key))

	return *m.chosen, true, nil
}
