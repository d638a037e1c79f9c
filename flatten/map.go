package flatten

import (
	"iter"
	"maps"
	"slices"
)

// Map holds leaf values keyed by flattened path.
// Iteration through [Map.All] and [Map.Keys] is in lexicographic path order.
type Map map[string]any

// Keys returns the paths of m in lexicographic order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// All returns an iterator over the entries of m in lexicographic path order.
func (m Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// Text returns the leaf at path as emitted text. See [Text].
func (m Map) Text(path string) (string, bool) {
	v, ok := m[path]
	if !ok {
		return "", false
	}

	return Text(v), true
}

// Text returns v if it is a string. Numbers, booleans and null are kept in
// a Map with their decoded value but emit as empty text.
func Text(v any) string {
	s, _ := v.(string)

	return s
}
