package input

import (
	"bytes"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/ardnew/flatenv/dotenv"
	"github.com/ardnew/flatenv/flatten"
	"github.com/ardnew/flatenv/match"
	"github.com/ardnew/flatenv/pkg"
)

// Pair is one emitted key and its text value. Keys taken from JSON are
// flattened paths; see [flatten.Render].
type Pair struct {
	Key   string
	Value string
}

// Input is an opened document.
type Input struct {
	Format Format
	// Path is the file the document was read from, or "" for standard input.
	Path string

	r      io.Reader
	closer io.Closer
	cfg    config
}

// Open opens the document at path. If path is empty, stdin is read to the end
// and its format guessed with [Guess].
//
// A named path must be a regular file. Its content is read lazily by
// [Input.Pairs] for dotenv documents.
func Open(path string, stdin io.Reader, opts ...Option) (*Input, error) {
	cfg := makeConfig(opts...)

	if path == "" {
		return openStdin(stdin, cfg)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err).With(slog.String("path", path))
	}

	if !info.Mode().IsRegular() {
		return nil, pkg.ErrNotAFile.With(slog.String("path", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err).With(slog.String("path", path))
	}

	in := &Input{
		Format: FormatOf(path),
		Path:   path,
		r:      f,
		closer: f,
		cfg:    cfg,
	}

	cfg.logger.Debug("input opened",
		slog.String("path", path),
		slog.String("format", in.Format.String()),
	)

	return in, nil
}

func openStdin(stdin io.Reader, cfg config) (*Input, error) {
	if stdin == nil {
		stdin = os.Stdin
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err).With(slog.String("path", "-"))
	}

	format, err := Guess(data)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("input guessed",
		slog.Int("size", len(data)),
		slog.String("format", format.String()),
	)

	return &Input{
		Format: format,
		r:      bytes.NewReader(data),
		cfg:    cfg,
	}, nil
}

// Close releases the underlying file, if any.
func (in *Input) Close() error {
	if in.closer == nil {
		return nil
	}

	err := in.closer.Close()
	in.closer = nil

	return err
}

// Template parses raw as a match template in the grammar of in.
func (in *Input) Template(raw string) (*match.Template, error) {
	switch in.Format {
	case FormatJSON:
		return match.FromJSON(raw)
	case FormatDotenv:
		return match.FromDotenv(raw)
	default:
		return nil, in.notImplemented()
	}
}

func (in *Input) notImplemented() error {
	return pkg.ErrFormatNotImplemented.With(slog.String("format", in.Format.String()))
}

// Pairs returns an iterator over the emitted pairs of in. Dotenv pairs follow
// document order and JSON pairs follow lexicographic path order.
//
// When tmpl is non-nil, only the keys it selects are emitted, under their new
// names. The first error is yielded with a zero Pair and ends the sequence.
// The document is consumed, so Pairs may be ranged over only once.
func (in *Input) Pairs(tmpl *match.Template) iter.Seq2[Pair, error] {
	return func(yield func(Pair, error) bool) {
		var src iter.Seq2[Pair, error]

		switch in.Format {
		case FormatDotenv:
			src = in.dotenvPairs()
		case FormatJSON:
			src = in.jsonPairs()
		default:
			yield(Pair{}, in.notImplemented())

			return
		}

		for p, err := range src {
			if err != nil {
				yield(Pair{}, err)

				return
			}

			if tmpl != nil {
				name, ok, err := tmpl.Rename(p.Key)
				if err != nil {
					yield(Pair{}, err)

					return
				}

				if !ok {
					continue
				}

				p.Key = name
			}

			if !yield(p, nil) {
				return
			}
		}
	}
}

func (in *Input) dotenvPairs() iter.Seq2[Pair, error] {
	s := dotenv.NewStream(in.r,
		dotenv.WithLookupEnv(in.cfg.env),
		dotenv.WithLogger(in.cfg.logger),
	)

	return func(yield func(Pair, error) bool) {
		for p, err := range s.All() {
			if !yield(Pair{Key: p.Key, Value: p.Value}, err) {
				return
			}
		}
	}
}

func (in *Input) jsonPairs() iter.Seq2[Pair, error] {
	return func(yield func(Pair, error) bool) {
		data, err := io.ReadAll(in.r)
		if err != nil {
			yield(Pair{}, pkg.ErrReadInput.Wrap(err))

			return
		}

		m, err := flatten.Parse(data, flatten.WithLogger(in.cfg.logger))
		if err != nil {
			yield(Pair{}, err)

			return
		}

		for path, v := range m.All() {
			if !yield(Pair{Key: path, Value: flatten.Text(v)}, nil) {
				return
			}
		}
	}
}
