package output

import (
	"io"
	"log/slog"

	"github.com/ardnew/flatenv/flatten"
	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/pkg"
)

// Line returns the export statement for a pair, without a newline.
func Line(key, value string) string {
	return key + "=" + value + "; export " + key + ";"
}

// Printer writes export statements for emitted pairs.
type Printer struct {
	w       io.Writer
	sep     rune
	casing  Casing
	filter  *Filter
	spawner *Spawner
	logger  log.Logger
}

// NewPrinter returns a Printer writing to w. cfg is validated first.
func NewPrinter(w io.Writer, cfg Config, opts ...Option) (*Printer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := makeOptions(opts...)

	filter, err := NewFilter(cfg.Where)
	if err != nil {
		return nil, err
	}

	p := &Printer{
		w:      w,
		sep:    cfg.separator(),
		casing: cfg.Casing,
		filter: filter,
		logger: o.logger,
	}

	if cfg.Spawn != "" {
		p.spawner, err = NewSpawner(cfg.Spawn, o.logger)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Key renders a flattened key with the separator and casing of p.
func (p *Printer) Key(key string) string {
	return p.casing.Apply(flatten.Render(key, p.sep))
}

// Print writes the export statement for a pair unless the filter rejects
// it, then spawns its stub if spawning is enabled.
func (p *Printer) Print(key, value string) error {
	key = p.Key(key)

	ok, err := p.filter.Match(key, value)
	if err != nil {
		return err
	}

	if !ok {
		p.logger.Trace("pair filtered", slog.String("key", key))

		return nil
	}

	if _, err := io.WriteString(p.w, Line(key, value)+"\n"); err != nil {
		return pkg.ErrWrite.Wrap(err).With(slog.String("key", key))
	}

	p.logger.Trace("pair emitted", slog.String("key", key))

	if p.spawner != nil {
		return p.spawner.Spawn(key, value)
	}

	return nil
}

// Close logs the PATH that reaches the spawned stubs, if any were written.
func (p *Printer) Close() error {
	if p.spawner == nil || p.spawner.Spawned() == 0 {
		return nil
	}

	p.logger.Info("stubs spawned",
		slog.Int("count", p.spawner.Spawned()),
		slog.String("dir", p.spawner.Dir()),
		slog.String("PATH", p.spawner.PathHint()),
	)

	return nil
}
