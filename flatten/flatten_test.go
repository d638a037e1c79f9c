package flatten

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/flatenv/pkg"
)

const sample = `{"foo":"bar","baz":{"quz":"qork"},"boo":["bah",{"lol":"lurg"}]}`

func render(m Map, sep rune) []string {
	var out []string

	for path, v := range m.All() {
		out = append(out, Render(path, sep)+"="+Text(v))
	}

	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		sep  rune
		want []string
	}{
		{
			name: "nested dot",
			doc:  sample,
			sep:  '.',
			want: []string{"baz.quz=qork", "boo.0=bah", "boo.1.lol=lurg", "foo=bar"},
		},
		{
			name: "nested underscore",
			doc:  sample,
			sep:  '_',
			want: []string{"baz_quz=qork", "boo_0=bah", "boo_1_lol=lurg", "foo=bar"},
		},
		{
			name: "deep object keeps every segment",
			doc:  `{"a":{"b":{"c":"d"}}}`,
			sep:  '.',
			want: []string{"a.b.c=d"},
		},
		{
			name: "top-level array",
			doc:  `["x",["y"]]`,
			sep:  '.',
			want: []string{"0=x", "1.0=y"},
		},
		{
			name: "scalar root",
			doc:  `"only"`,
			sep:  '.',
			want: []string{"=only"},
		},
		{
			name: "non-string leaves emit empty",
			doc:  `{"n":1,"b":true,"z":null,"s":"t"}`,
			sep:  '.',
			want: []string{"b=", "n=", "s=t", "z="},
		},
		{
			name: "non-string array elements",
			doc:  `{"a":[1,"two"]}`,
			sep:  '.',
			want: []string{"a.0=", "a.1=two"},
		},
		{
			name: "empty containers",
			doc:  `{"a":{},"b":[],"c":"d"}`,
			sep:  '.',
			want: []string{"c=d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			got := render(m, tt.sep)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFlatten_KeepsNativeValues(t *testing.T) {
	m := Flatten(map[string]any{"n": 1.5, "b": false})

	if v, ok := m["n"].(float64); !ok || v != 1.5 {
		t.Errorf("expected native number 1.5, got %#v", m["n"])
	}

	if v, ok := m["b"].(bool); !ok || v {
		t.Errorf("expected native false, got %#v", m["b"])
	}

	if s, ok := m.Text("n"); !ok || s != "" {
		t.Errorf("expected empty text for number, got %q (ok=%v)", s, ok)
	}

	if _, ok := m.Text("missing"); ok {
		t.Error("expected missing path to report ok=false")
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, doc := range []string{`{"a":`, `{} {}`, `A=b`, ``} {
		t.Run(doc, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if !errors.Is(err, pkg.ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	if got := Join("", "a"); got != "a" {
		t.Errorf("expected bare segment, got %q", got)
	}

	path := Join(Join("a", "b"), "0")
	if got := Segments(path); !slices.Equal(got, []string{"a", "b", "0"}) {
		t.Errorf("expected [a b 0], got %v", got)
	}

	if strings.ContainsRune(Render(path, '/'), Separator) {
		t.Errorf("rendered path still contains separator: %q", Render(path, '/'))
	}
}

func TestMap_AllStops(t *testing.T) {
	m := Map{"a": "1", "b": "2", "c": "3"}

	var seen []string

	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}

	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %v", seen)
	}
}
