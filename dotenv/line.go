package dotenv

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// LineError describes a line that does not conform to the dotenv grammar.
type LineError struct {
	// Line is the offending line exactly as read, without its terminator.
	Line string
	// Number is the 1-based position of the line in its document.
	Number int
	// Offset is the byte offset into Line where parsing failed.
	Offset int
}

// Error implements the error interface.
func (e *LineError) Error() string {
	var sb strings.Builder

	if e.Number > 0 {
		sb.WriteString("line ")
		sb.WriteString(strconv.Itoa(e.Number))
		sb.WriteString(": ")
	}

	sb.WriteString("invalid syntax at offset ")
	sb.WriteString(strconv.Itoa(e.Offset))
	sb.WriteString(": ")
	sb.WriteString(strconv.Quote(e.Line))

	return sb.String()
}

// lineParser splits one line into a key and a decoded value.
type lineParser struct {
	original string // line as read, used in errors
	line     string // unconsumed remainder
	pos      int    // byte offset of line within original
	vars     Vars
	res      *Resolver
}

// parseLine parses one line, recording the result in vars. It reports ok
// false for blank and comment lines.
func parseLine(line string, vars Vars, res *Resolver) (key, value string, ok bool, err error) {
	p := lineParser{
		original: line,
		line:     strings.TrimRightFunc(line, unicode.IsSpace),
		vars:     vars,
		res:      res,
	}

	return p.parse()
}

func (p *lineParser) fail() error {
	return &LineError{Line: p.original, Offset: p.pos}
}

func (p *lineParser) parse() (key, value string, ok bool, err error) {
	p.skipWhitespace()

	if p.line == "" || strings.HasPrefix(p.line, "#") {
		return "", "", false, nil
	}

	key, err = p.parseKey()
	if err != nil {
		return "", "", false, err
	}

	p.skipWhitespace()

	// "export" is either a prefix keyword or a key of its own.
	if key == "export" && !strings.HasPrefix(p.line, "=") {
		key, err = p.parseKey()
		if err != nil {
			return "", "", false, err
		}

		p.skipWhitespace()
	}

	if err = p.expectEqual(); err != nil {
		return "", "", false, err
	}

	p.skipWhitespace()

	if p.line == "" || strings.HasPrefix(p.line, "#") {
		p.vars.Declare(key)

		return key, "", true, nil
	}

	value, err = parseValue(p.line, p.res)
	if err != nil {
		var off syntaxError
		if errors.As(err, &off) {
			return "", "", false, &LineError{
				Line:   p.original,
				Offset: p.pos + int(off),
			}
		}

		return "", "", false, err
	}

	p.vars.Set(key, value)

	return key, value, true, nil
}

// parseKey consumes [A-Za-z_][A-Za-z0-9_.]*.
func (p *lineParser) parseKey() (string, error) {
	if p.line == "" || !isKeyStart(p.line[0]) {
		return "", p.fail()
	}

	n := strings.IndexFunc(p.line, func(r rune) bool { return !isKeyRune(r) })
	if n < 0 {
		n = len(p.line)
	}

	key := p.line[:n]
	p.advance(n)

	return key, nil
}

func (p *lineParser) expectEqual() error {
	if !strings.HasPrefix(p.line, "=") {
		return p.fail()
	}

	p.advance(1)

	return nil
}

func (p *lineParser) skipWhitespace() {
	n := strings.IndexFunc(p.line, func(r rune) bool { return !unicode.IsSpace(r) })
	if n < 0 {
		n = len(p.line)
	}

	p.advance(n)
}

func (p *lineParser) advance(n int) {
	p.pos += n
	p.line = p.line[n:]
}

func isKeyStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isKeyRune(r rune) bool {
	return r == '_' || r == '.' ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
