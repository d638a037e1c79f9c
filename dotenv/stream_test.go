package dotenv

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ardnew/flatenv/pkg"
)

func TestStream_Next(t *testing.T) {
	doc := strings.Join([]string{
		"# settings",
		"HOST=localhost",
		"",
		"export PORT=8080",
		`URL="http://$HOST:${PORT}/"`,
		"EMPTY=",
		"LAST=$EMPTY.x",
	}, "\n")

	s := NewStreamFromString(doc, WithLookupEnv(nil))

	want := []Pair{
		{"HOST", "localhost"},
		{"PORT", "8080"},
		{"URL", "http://localhost:8080/"},
		{"EMPTY", ""},
		{"LAST", ".x"},
	}

	for i, w := range want {
		got, err := s.Next()
		if err != nil {
			t.Fatalf("pair %d: unexpected error: %v", i, err)
		}

		if got != w {
			t.Errorf("pair %d: expected %+v, got %+v", i, w, got)
		}
	}

	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}

	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF to repeat, got %v", err)
	}
}

func TestStream_EnvironmentOverridesDocument(t *testing.T) {
	env := mapEnv(map[string]string{"HOST": "example.com"})

	pairs, err := ParseString("HOST=localhost\nURL=$HOST\n", WithLookupEnv(env))
	if err != nil {
		t.Fatal(err)
	}

	// The assignment itself is emitted verbatim; only substitutions consult
	// the environment first.
	if pairs[0].Value != "localhost" {
		t.Errorf("expected localhost, got %q", pairs[0].Value)
	}

	if pairs[1].Value != "example.com" {
		t.Errorf("expected example.com, got %q", pairs[1].Value)
	}
}

func TestStream_LineEndings(t *testing.T) {
	pairs, err := ParseString("A=1\r\nB=2\r\nC=3", WithLookupEnv(nil))
	if err != nil {
		t.Fatal(err)
	}

	want := []Pair{{"A", "1"}, {"B", "2"}, {"C", "3"}}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(pairs))
	}

	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d: expected %+v, got %+v", i, want[i], pairs[i])
		}
	}
}

func TestStream_ErrorIsSticky(t *testing.T) {
	s := NewStreamFromString("A=1\nB='open\nC=3\n", WithLookupEnv(nil))

	if p, err := s.Next(); err != nil || p.Key != "A" {
		t.Fatalf("expected pair A, got %+v, %v", p, err)
	}

	_, err := s.Next()
	if !errors.Is(err, pkg.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LineError in chain, got %v", err)
	}

	if le.Number != 2 || le.Offset != 6 || le.Line != "B='open" {
		t.Errorf("unexpected line error: %+v", le)
	}

	if _, again := s.Next(); !errors.Is(again, pkg.ErrParse) {
		t.Errorf("expected the same error again, got %v", again)
	}
}

func TestStream_InvalidUTF8(t *testing.T) {
	_, err := ParseString("A=1\nB=\xff\n", WithLookupEnv(nil))
	if !errors.Is(err, pkg.ErrReadInput) {
		t.Errorf("expected ErrReadInput, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestStream_ReadFailure(t *testing.T) {
	_, err := Parse(failingReader{})
	if !errors.Is(err, pkg.ErrReadInput) {
		t.Errorf("expected ErrReadInput, got %v", err)
	}
}

func TestStream_All(t *testing.T) {
	s := NewStreamFromString("A=1\nB=2\nC=3\n", WithLookupEnv(nil))

	var keys []string

	for p, err := range s.All() {
		if err != nil {
			t.Fatal(err)
		}

		keys = append(keys, p.Key)
		if p.Key == "B" {
			break
		}
	}

	if strings.Join(keys, ",") != "A,B" {
		t.Errorf("expected A,B, got %v", keys)
	}

	// Iteration resumes where it stopped.
	p, err := s.Next()
	if err != nil || p.Key != "C" {
		t.Errorf("expected pair C, got %+v, %v", p, err)
	}
}

func TestStream_AllYieldsErrorOnce(t *testing.T) {
	var (
		pairs int
		errs  int
	)

	for _, err := range NewStreamFromString("A=1\n1=2\nC=3\n").All() {
		if err != nil {
			errs++

			continue
		}

		pairs++
	}

	if pairs != 1 || errs != 1 {
		t.Errorf("expected 1 pair and 1 error, got %d and %d", pairs, errs)
	}
}

func TestStream_Vars(t *testing.T) {
	s := NewStreamFromString("A=1\nB=\n", WithLookupEnv(nil))

	for _, err := range s.All() {
		if err != nil {
			t.Fatal(err)
		}
	}

	vars := s.Vars()
	if v := vars["A"]; v == nil || *v != "1" {
		t.Errorf("expected A=1 recorded, got %v", v)
	}

	if v, ok := vars["B"]; !ok || v != nil {
		t.Errorf("expected B declared, got %v", v)
	}
}
