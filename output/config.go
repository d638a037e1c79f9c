package output

import (
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/ardnew/flatenv/pkg"
)

// DefaultSeparator joins the segments of flattened keys.
const DefaultSeparator = "."

// Config holds the options of a [Printer].
type Config struct {
	// Separator is the single character that joins flattened key segments.
	Separator string `validate:"len=1"`
	// Casing is applied to every key after the separator is rendered.
	Casing Casing `validate:"oneof=insensitive lower upper"`
	// Spawn is the directory receiving one executable per pair, "." for the
	// working directory, or "temp" for the system temporary directory.
	// Empty disables spawning.
	Spawn string
	// Where is a boolean expression over key and value. Pairs for which it
	// is false are not printed.
	Where string
}

// DefaultConfig returns a Config with the default separator and casing.
func DefaultConfig() Config {
	return Config{Separator: DefaultSeparator, Casing: DefaultCasing}
}

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first invalid field of c as [pkg.ErrInvalidConfig].
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		return pkg.ErrInvalidConfig.Wrap(err).With(
			slog.String("field", fe.Field()),
			slog.String("rule", fe.Tag()),
			slog.Any("value", fe.Value()),
		)
	}

	return pkg.ErrInvalidConfig.Wrap(err)
}

// separator returns the separator rune. It is only meaningful for a
// validated Config.
func (c Config) separator() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)

	return r
}
