// Package dotenv parses dotenv-style documents into ordered key/value pairs.
//
// A document is a sequence of lines of the form
//
//	[export ]KEY[=VALUE]
//
// where blank lines and lines starting with '#' are ignored. Keys match
// [A-Za-z_][A-Za-z0-9_.]*. Values are decoded by a small state machine:
//
//   - 'single quotes' copy everything verbatim up to the closing quote.
//   - "double quotes" allow backslash escapes and substitutions.
//   - Outside quotes, the value ends at the first unescaped space or tab;
//     only whitespace or a '#' comment may follow.
//   - Backslash escapes \\, \', \", \$ and \<space> produce the character
//     itself, and \n produces a newline. Any other escape is an error.
//   - $NAME and ${NAME} are replaced by the value of NAME from the process
//     environment or, failing that, from an earlier line of the same
//     document. Unknown names expand to the empty string. A bare $NAME
//     ends at the first character that is not a letter or digit, so
//     "$A_B" expands A and keeps "_B" literally.
//
// A [Stream] reads one line per produced pair and stops at the first error,
// which reports the offending line and the byte offset of the failure.
package dotenv
