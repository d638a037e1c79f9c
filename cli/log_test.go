package cli

import (
	"testing"

	"github.com/ardnew/flatenv/log"
)

func TestLogConfig_Scan(t *testing.T) {
	defer log.SetDefault(log.Default())

	tests := []struct {
		name   string
		args   []string
		level  logLevel
		format logFormat
		pretty bool
		caller bool
	}{
		{
			name:   "separate values",
			args:   []string{"export", "--log-level", "debug", "--log-format", "json", "a.env"},
			level:  "debug",
			format: "json",
			pretty: true,
		},
		{
			name:   "assigned values",
			args:   []string{"--log-level=warn", "--log-format=text"},
			level:  "warn",
			format: "text",
			pretty: true,
		},
		{
			name:   "negated booleans",
			args:   []string{"--no-log-pretty", "--log-caller"},
			pretty: false,
			caller: true,
		},
		{
			name:   "assigned booleans",
			args:   []string{"--log-pretty=false", "--no-log-caller=false"},
			pretty: false,
			caller: true,
		},
		{
			name:   "value not consumed from next flag",
			args:   []string{"--log-level", "--log-caller"},
			pretty: true,
			caller: true,
		},
		{
			name:   "invalid boolean ignored",
			args:   []string{"--log-pretty=maybe"},
			pretty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.level || f.Format != tt.format {
				t.Errorf("expected level=%q format=%q, got level=%q format=%q",
					tt.level, tt.format, f.Level, f.Format)
			}

			if f.Pretty != tt.pretty || f.Caller != tt.caller {
				t.Errorf("expected pretty=%v caller=%v, got pretty=%v caller=%v",
					tt.pretty, tt.caller, f.Pretty, f.Caller)
			}
		})
	}
}

func TestLogConfig_Vars(t *testing.T) {
	vars := (&logConfig{}).vars()

	if vars["logLevelEnum"] != "trace,debug,info,warn,error" {
		t.Errorf("unexpected level enum %q", vars["logLevelEnum"])
	}

	if vars["logFormatDefault"] != "text" {
		t.Errorf("expected text default, got %q", vars["logFormatDefault"])
	}
}
