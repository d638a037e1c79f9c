package input

import (
	"path/filepath"
	"strings"
)

// Format identifies the grammar of a document.
type Format int

const (
	FormatDotenv Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
	FormatXML
)

var formatNames = map[Format]string{
	FormatDotenv: "dotenv",
	FormatJSON:   "json",
	FormatYAML:   "yaml",
	FormatTOML:   "toml",
	FormatXML:    "xml",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}

	return "unknown"
}

// Implemented reports whether documents of format f can be flattened.
func (f Format) Implemented() bool {
	return f == FormatDotenv || f == FormatJSON
}

// FormatOf returns the format implied by the extension of path. Unknown and
// missing extensions are dotenv.
func FormatOf(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "toml":
		return FormatTOML
	case "xml":
		return FormatXML
	default:
		return FormatDotenv
	}
}
