// Package flatten linearizes decoded JSON trees into single-level maps keyed
// by synthetic paths.
//
// Path segments are joined with [Separator], a control character that does
// not occur in ordinary keys. The user-visible separator is substituted only
// when a path is rendered with [Render].
package flatten
