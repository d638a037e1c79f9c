// Package log provides the structured logger used throughout flatenv.
//
// It is a thin layer over [log/slog] whose configuration is assembled from
// functional options when a [Logger] is created:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("kitchen"))
//
// Attributes are typed [slog.Attr] values only, never loose key/value pairs:
//
//	logger.Info("spawned", slog.String("dir", dir), slog.Int("count", n))
//
// # Default Logger
//
// The package-level functions ([Debug], [Info], [Error], ...) write through a
// process-wide default logger that starts out writing text to standard error
// at [LevelInfo]. [Config] rebuilds it from additional options; the CLI calls
// it while flags are being parsed so that even parse errors are formatted as
// requested.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used by the parsers to report
// every line and leaf they visit.
//
// # Pretty Output
//
// With [WithPretty] enabled, text output is colorized with lipgloss styles
// and string values are printed without quotes. JSON output is unaffected.
package log
