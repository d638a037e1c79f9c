package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	original := SetDefault(
		Make(&buf, WithLevel(LevelDebug), WithFormat(FormatJSON)),
	)
	defer SetDefault(original)

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected output to contain message %q, got: %s", tt.msg, output)
			}

			if !strings.Contains(output, tt.level) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}

			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_Config_UpdatesDefault(t *testing.T) {
	var buf bytes.Buffer

	original := SetDefault(Make(&buf, WithFormat(FormatJSON)))
	defer SetDefault(original)

	Config(WithLevel(LevelError))

	Info("suppressed")

	if buf.Len() != 0 {
		t.Errorf("expected info to be suppressed, got: %s", buf.String())
	}

	Error("shown")

	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected error to be written, got: %s", buf.String())
	}
}
