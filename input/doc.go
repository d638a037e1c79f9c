// Package input selects and decodes the document to flatten.
//
// A document comes from a named file, whose extension decides its format, or
// from standard input, whose format is guessed from its content. Either way
// the document is consumed through [Input.Pairs].
package input
