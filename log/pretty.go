package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used to colorize one handler's output.
// Styles come from a renderer bound to the handler's writer, so output that
// is not a terminal is written without escape sequences.
type palette struct {
	key, str, num, flag, time lipgloss.Style
	trace, debug, info        lipgloss.Style
	warn, err                 lipgloss.Style
}

func makePalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		key:   r.NewStyle().Foreground(lipgloss.Color("8")),
		str:   r.NewStyle().Foreground(lipgloss.Color("6")),
		num:   r.NewStyle().Foreground(lipgloss.Color("3")),
		flag:  r.NewStyle().Foreground(lipgloss.Color("5")),
		time:  r.NewStyle().Foreground(lipgloss.Color("4")),
		trace: r.NewStyle().Foreground(lipgloss.Color("8")).Bold(true),
		debug: r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		info:  r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler implements a colorized single-line text handler.
type prettyHandler struct {
	opts    slog.HandlerOptions
	style   palette
	mu      *sync.Mutex
	w       io.Writer
	prefix  string // group path applied to record attributes
	preattr []byte // attributes added with WithAttrs, already rendered
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		style: makePalette(w),
		mu:    &sync.Mutex{},
		w:     w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if a := h.replace(slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			h.writeValue(buf, a.Value)
		}
	}

	sep(buf)

	level := h.replace(slog.Any(slog.LevelKey, r.Level))
	buf.WriteString(h.style.level(r.Level).Render(level.Value.String()))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			sep(buf)
			buf.WriteString(h.style.key.Render(
				src.File + ":" + strconv.Itoa(src.Line),
			))
		}
	}

	sep(buf)
	buf.WriteString(r.Message)

	if len(h.preattr) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.preattr)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(append([]byte(nil), h.preattr...))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.preattr = bytes.TrimLeft(buf.Bytes(), " ")

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func sep(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, group, g)
		}

		return
	}

	sep(buf)
	buf.WriteString(h.style.key.Render(prefix + a.Key))
	buf.WriteByte('=')
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(h.style.str.Render(v.String()))

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		buf.WriteString(h.style.num.Render(v.String()))

	case slog.KindBool:
		buf.WriteString(h.style.flag.Render(strconv.FormatBool(v.Bool())))

	case slog.KindDuration:
		buf.WriteString(h.style.num.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(h.style.time.Render(v.Time().Format(time.RFC3339)))

	default:
		buf.WriteString(h.style.str.Render(v.String()))
	}
}
