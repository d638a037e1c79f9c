package pkg

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_Error_Formats(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError("boom"), "boom"},
		{"message and cause", NewError("boom").Wrap(io.EOF), "boom: EOF"},
		{"cause only", WrapError(io.EOF), "EOF"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestError_Is_SentinelAndCause(t *testing.T) {
	err := ErrParse.Wrap(io.ErrUnexpectedEOF).With(slog.Int("line", 3))

	if !errors.Is(err, ErrParse) {
		t.Error("expected derived error to match its sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("expected derived error to match its cause")
	}

	if errors.Is(err, ErrReadInput) {
		t.Error("expected derived error not to match an unrelated sentinel")
	}
}

func TestError_With_DoesNotMutate(t *testing.T) {
	base := ErrSpawn.With(slog.String("key", "a"))
	derived := base.With(slog.String("dir", "b"))

	if len(base.Attrs()) != 1 {
		t.Errorf("expected 1 attr on base, got %d", len(base.Attrs()))
	}

	if len(derived.Attrs()) != 2 {
		t.Errorf("expected 2 attrs on derived, got %d", len(derived.Attrs()))
	}

	if len(ErrSpawn.Attrs()) != 0 {
		t.Error("expected sentinel to remain without attrs")
	}
}

func TestWrapError_PreservesError(t *testing.T) {
	orig := ErrNotAFile.With(slog.String("path", "/tmp"))

	if got := WrapError(orig); got != orig {
		t.Error("expected WrapError to return an existing *Error unchanged")
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrParse.Wrap(io.EOF).With(slog.String("format", "json"))

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("expected group value, got %v", v.Kind())
	}

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"error":  "parse error",
		"cause":  "EOF",
		"format": "json",
	}

	for k, w := range want {
		if got[k] != w {
			t.Errorf("attr %q: expected %q, got %q", k, w, got[k])
		}
	}
}

func TestName(t *testing.T) {
	if Name != "flatenv" {
		t.Errorf("Expected Name to be %q, got %q", "flatenv", Name)
	}
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Expected Version to be non-empty")
	}
}
