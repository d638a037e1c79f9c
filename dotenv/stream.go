package dotenv

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/pkg"
)

// errInvalidUTF8 is the cause reported for lines that are not valid UTF-8.
var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Pair is one KEY=VALUE assignment.
type Pair struct {
	Key   string
	Value string
}

// Stream produces the pairs of a dotenv document one line at a time.
// Lines are read only as pairs are requested.
type Stream struct {
	r      *bufio.Reader
	vars   Vars
	res    *Resolver
	logger log.Logger
	number int   // lines read so far
	err    error // terminal state, io.EOF once exhausted
}

// NewStream returns a Stream reading from r.
func NewStream(r io.Reader, opts ...Option) *Stream {
	cfg := makeConfig(opts...)
	vars := make(Vars)

	return &Stream{
		r:      bufio.NewReader(r),
		vars:   vars,
		res:    NewResolver(cfg.env, vars),
		logger: cfg.logger,
	}
}

// NewStreamFromString returns a Stream reading from s.
func NewStreamFromString(s string, opts ...Option) *Stream {
	return NewStream(strings.NewReader(s), opts...)
}

// Next returns the next pair. It returns io.EOF when the document is
// exhausted. Any other error ends the stream and is returned again by every
// later call.
func (s *Stream) Next() (Pair, error) {
	for s.err == nil {
		line, err := s.readLine()
		if err != nil {
			s.err = err

			break
		}

		key, value, ok, err := parseLine(line, s.vars, s.res)
		if err != nil {
			s.err = s.wrapParse(err)

			break
		}

		if !ok {
			continue
		}

		s.logger.Trace("dotenv pair",
			slog.Int("line", s.number),
			slog.String("key", key),
		)

		return Pair{Key: key, Value: value}, nil
	}

	return Pair{}, s.err
}

// All returns an iterator over the remaining pairs. A failure is yielded
// once, with a zero Pair, and ends the iteration.
func (s *Stream) All() iter.Seq2[Pair, error] {
	return func(yield func(Pair, error) bool) {
		for {
			p, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}

			if !yield(p, err) || err != nil {
				return
			}
		}
	}
}

// Vars returns the substitution values recorded so far.
func (s *Stream) Vars() Vars { return s.vars }

// readLine returns the next line without its "\n" or "\r\n" terminator.
func (s *Stream) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", pkg.ErrReadInput.Wrap(err).
				With(slog.Int("line", s.number+1))
		}

		if line == "" {
			return "", io.EOF
		}
	}

	s.number++

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		return "", pkg.ErrReadInput.Wrap(errInvalidUTF8).
			With(slog.Int("line", s.number))
	}

	return line, nil
}

func (s *Stream) wrapParse(err error) error {
	var le *LineError
	if !errors.As(err, &le) {
		return pkg.ErrParse.Wrap(err)
	}

	le.Number = s.number

	return pkg.ErrParse.Wrap(le).With(
		slog.String("format", "dotenv"),
		slog.Int("line", le.Number),
		slog.Int("offset", le.Offset),
	)
}

// Parse reads every pair from r, stopping at the first error.
func Parse(r io.Reader, opts ...Option) ([]Pair, error) {
	var pairs []Pair

	for p, err := range NewStream(r, opts...).All() {
		if err != nil {
			return pairs, err
		}

		pairs = append(pairs, p)
	}

	return pairs, nil
}

// ParseString reads every pair from s, stopping at the first error.
func ParseString(s string, opts ...Option) ([]Pair, error) {
	return Parse(strings.NewReader(s), opts...)
}
