// Package cli contains the command line interface for flatenv.
//
// # Usage
//
//	flatenv [flags] [export] [FILE] [-m TEMPLATE] [-s SEP] [-c CASING] [-o DIR] [-w EXPR]
//	flatenv [flags] browse [FILE] [-m TEMPLATE] [-s SEP] [-c CASING]
//	flatenv [flags] init [--force]
//
// Without FILE, the document is read from stdin and its format guessed.
//
// # Configuration
//
// Flag defaults may come from
//
//   - $XDG_CONFIG_HOME/flatenv/config.json (see [kong.JSON])
//   - $XDG_CONFIG_HOME/flatenv/config.yaml (flat YAML mapping of flag names)
//   - FLATENV_* environment variables, e.g. FLATENV_SEPARATOR=_
//
// Flags given on the command line always win.
//
// The init command writes config.yaml from the current values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize text output
//
// Logs are written to stderr; stdout carries only export statements.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
