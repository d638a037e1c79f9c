// Package browse implements an interactive fuzzy finder over emitted pairs.
//
// Typing filters the pairs by key. Up and Down move the selection, Enter
// accepts it, and Esc or Ctrl+C quit without a selection.
package browse
