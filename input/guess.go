package input

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/flatenv/dotenv"
	"github.com/ardnew/flatenv/pkg"
)

// Guess returns the format of data by trial parsing: JSON first, then a YAML
// mapping or sequence, then dotenv.
//
// Content that both YAML and dotenv accept is dotenv. Plain YAML scalars do
// not count as YAML, since nearly any text decodes as one.
func Guess(data []byte) (Format, error) {
	if json.Valid(data) {
		return FormatJSON, nil
	}

	isDotenv := parsesAsDotenv(data)

	if !isDotenv && isStructuredYAML(data) {
		return FormatYAML, nil
	}

	if isDotenv {
		return FormatDotenv, nil
	}

	return 0, pkg.ErrUnsupportedFormat
}

func isStructuredYAML(data []byte) bool {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return false
	}

	switch v.(type) {
	case map[string]any, []any:
		return true
	}

	return false
}

func parsesAsDotenv(data []byte) bool {
	_, err := dotenv.Parse(bytes.NewReader(data), dotenv.WithLookupEnv(nil))

	return err == nil
}
