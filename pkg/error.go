package pkg

import (
	"errors"
	"log/slog"
	"strings"
)

// Sentinel errors shared by all flatenv packages.
// Test for them with [errors.Is]; every derived error unwraps to its sentinel.
var (
	// ErrReadInput is returned when opening or reading an input fails.
	ErrReadInput = NewError("failed to read input")

	// ErrParse is returned when a document is malformed. It wraps the
	// grammar-specific diagnostic (a dotenv line error or a JSON error).
	ErrParse = NewError("parse error")

	// ErrUnsupportedFormat is returned when standard input matches none of
	// the supported grammars.
	ErrUnsupportedFormat = NewError("unsupported input format")

	// ErrFormatNotImplemented is returned for formats that are recognized by
	// file extension but not supported.
	ErrFormatNotImplemented = NewError("input format not implemented")

	// ErrInvalidMatchTemplate is returned when a match template cannot be
	// parsed or names an empty replacement key.
	ErrInvalidMatchTemplate = NewError("invalid match template")

	// ErrNotAFile is returned when the input path exists but is not a
	// regular file.
	ErrNotAFile = NewError("not a regular file")

	// ErrInvalidConfig is returned when output options fail validation.
	ErrInvalidConfig = NewError("invalid configuration")

	// ErrInvalidFilter is returned when a --where expression does not
	// compile or does not evaluate to a boolean.
	ErrInvalidFilter = NewError("invalid filter expression")

	// ErrSpawn is returned when an executable stub cannot be written.
	ErrSpawn = NewError("failed to spawn executable")

	// ErrWrite is returned when writing an export line fails.
	ErrWrite = NewError("failed to write output")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	base  *Error      // Sentinel this error was derived from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
// An error that already is (or wraps) an *Error is returned unchanged.
func WrapError(err error) *Error {
	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
// Both the wrapped cause and the originating sentinel are reachable.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)

	if e.base != nil {
		errs = append(errs, e.base)
	}

	if e.err != nil {
		errs = append(errs, e.err)
	}

	return errs
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		base:  e.root(),
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.root(),
	}
}

// Attrs returns a copy of the structured logging attributes.
func (e *Error) Attrs() []slog.Attr {
	return append([]slog.Attr(nil), e.attrs...)
}

// root returns the sentinel at the origin of a derivation chain.
func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
