package dotenv

import (
	"strconv"
	"strings"
	"unicode"
)

// mode is the state of the value scanner. States are checked in declaration
// order; the ordering decides how characters such as '$' and '\' are read in
// each context.
type mode uint8

const (
	modeBare               mode = iota // unquoted text
	modeExpectingEnd                   // after unquoted whitespace
	modeEscaped                        // after a backslash
	modeStrongQuote                    // inside '...'
	modeSubstitution                   // inside $NAME
	modeBracedSubstitution             // inside ${NAME}
	modeWeakQuote                      // inside "..."
)

var modeNames = [...]string{
	modeBare:               "bare",
	modeExpectingEnd:       "expecting-end",
	modeEscaped:            "escaped",
	modeStrongQuote:        "strong-quote",
	modeSubstitution:       "substitution",
	modeBracedSubstitution: "braced-substitution",
	modeWeakQuote:          "weak-quote",
}

func (m mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}

	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// syntaxError is the byte offset of a grammar violation within the text
// handed to a parser.
type syntaxError int

func (e syntaxError) Error() string {
	return "invalid syntax at offset " + strconv.Itoa(int(e))
}

// scanner decodes one value. weak records whether a double quote is open, so
// that escapes and substitutions inside it return to modeWeakQuote.
type scanner struct {
	res  *Resolver
	out  strings.Builder
	name strings.Builder
	mode mode
	weak bool
}

// parseValue decodes input, the remainder of a line after "KEY=".
// Errors are syntaxError offsets relative to input.
func parseValue(input string, res *Resolver) (string, error) {
	s := scanner{res: res}

	for i, c := range input {
		stop, err := s.step(i, c)
		if err != nil {
			return "", err
		}

		if stop {
			break
		}
	}

	return s.finish(len(input))
}

// resume returns the mode to continue in after an escape or substitution.
func (s *scanner) resume() mode {
	if s.weak {
		return modeWeakQuote
	}

	return modeBare
}

// substitute appends the resolved value of the accumulated name.
func (s *scanner) substitute() {
	if s.name.Len() > 0 {
		s.out.WriteString(s.res.Resolve(s.name.String()))
		s.name.Reset()
	}
}

// step consumes c at byte offset i. It reports stop when a trailing comment
// ends the value.
func (s *scanner) step(i int, c rune) (stop bool, err error) {
	switch s.mode {
	case modeExpectingEnd:
		switch c {
		case ' ', '\t':
			return false, nil
		case '#':
			return true, nil
		}

		return false, syntaxError(i)

	case modeEscaped:
		switch c {
		case '\\', '\'', '"', '$', ' ':
			s.out.WriteRune(c)
		case 'n':
			s.out.WriteByte('\n')
		default:
			return false, syntaxError(i)
		}

		s.mode = s.resume()

		return false, nil

	case modeStrongQuote:
		if c == '\'' {
			s.mode = modeBare
		} else {
			s.out.WriteRune(c)
		}

		return false, nil

	case modeSubstitution:
		if isNameRune(c) {
			s.name.WriteRune(c)

			return false, nil
		}

		if c == '{' && s.name.Len() == 0 {
			s.mode = modeBracedSubstitution

			return false, nil
		}

		s.substitute()

		if c == '$' {
			// A new substitution begins immediately.
			return false, nil
		}

		// The terminator is an ordinary character in the enclosing context.
		s.mode = s.resume()

		return s.step(i, c)

	case modeBracedSubstitution:
		if c == '}' {
			s.substitute()
			s.mode = s.resume()
		} else {
			s.name.WriteRune(c)
		}

		return false, nil
	}

	if c == '$' {
		s.mode = modeSubstitution

		return false, nil
	}

	if s.mode == modeWeakQuote {
		switch c {
		case '"':
			s.mode, s.weak = modeBare, false
		case '\\':
			s.mode = modeEscaped
		default:
			s.out.WriteRune(c)
		}

		return false, nil
	}

	switch c {
	case '\'':
		s.mode = modeStrongQuote
	case '"':
		s.mode, s.weak = modeWeakQuote, true
	case '\\':
		s.mode = modeEscaped
	case ' ', '\t':
		s.mode = modeExpectingEnd
	default:
		s.out.WriteRune(c)
	}

	return false, nil
}

// finish validates the final state for an input of n bytes and returns the
// decoded value.
func (s *scanner) finish(n int) (string, error) {
	if s.weak || s.mode == modeStrongQuote || s.mode == modeBracedSubstitution {
		return "", syntaxError(max(0, n-1))
	}

	if s.mode == modeSubstitution {
		s.substitute()
	}

	return s.out.String(), nil
}

// isNameRune reports whether c continues a bare $NAME. Unlike keys, bare
// names do not include '_' or '.'.
func isNameRune(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || unicode.IsNumber(c)
}
