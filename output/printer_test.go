package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/flatenv/flatten"
	"github.com/ardnew/flatenv/log"
	"github.com/ardnew/flatenv/pkg"
)

func TestLine(t *testing.T) {
	if got := Line("FOO", "bar baz"); got != "FOO=bar baz; export FOO;" {
		t.Errorf("unexpected line %q", got)
	}
}

func TestPrinter_Print(t *testing.T) {
	nested := flatten.Join(flatten.Join("boo", "1"), "lol")

	tests := []struct {
		name string
		cfg  Config
		key  string
		want string
	}{
		{"default", DefaultConfig(), nested, "boo.1.lol=v; export boo.1.lol;\n"},
		{"underscore", Config{Separator: "_", Casing: CasingInsensitive}, nested, "boo_1_lol=v; export boo_1_lol;\n"},
		{"single segment", Config{Separator: "_", Casing: CasingInsensitive}, "foo", "foo=v; export foo;\n"},
		{"upper", Config{Separator: ".", Casing: CasingUpper}, "foo", "FOO=v; export FOO;\n"},
		{"lower", Config{Separator: ".", Casing: CasingLower}, "FoO", "foo=v; export foo;\n"},
		{"filtered", Config{Separator: ".", Casing: CasingUpper, Where: `key != "FOO"`}, "foo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			p, err := NewPrinter(&buf, tt.cfg)
			if err != nil {
				t.Fatal(err)
			}

			if err := p.Print(tt.key, "v"); err != nil {
				t.Fatal(err)
			}

			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestPrinter_Spawn(t *testing.T) {
	dir := t.TempDir()

	var buf, logs bytes.Buffer

	cfg := DefaultConfig()
	cfg.Casing = CasingUpper
	cfg.Spawn = dir

	p, err := NewPrinter(&buf, cfg,
		WithLogger(log.Make(&logs, log.WithPretty(false), log.WithTimeLayout("none"))),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Print("greeting", "hi"); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "GREETING")); err != nil {
		t.Errorf("expected stub to exist: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(logs.Bytes(), []byte("stubs spawned")) {
		t.Errorf("expected PATH hint to be logged, got %q", logs.String())
	}
}

func TestNewPrinter_Errors(t *testing.T) {
	if _, err := NewPrinter(nil, Config{Separator: "..", Casing: CasingLower}); !errors.Is(err, pkg.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Where = "key +"

	if _, err := NewPrinter(nil, cfg); !errors.Is(err, pkg.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrinter_WriteError(t *testing.T) {
	p, err := NewPrinter(failingWriter{}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := p.Print("A", "b"); !errors.Is(err, pkg.ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
}
