package flatten

import "strings"

// Separator joins path segments inside a [Map].
const Separator = '\x1f'

// Join appends seg to parent. An empty parent yields seg unchanged.
func Join(parent, seg string) string {
	if parent == "" {
		return seg
	}

	return parent + string(Separator) + seg
}

// Segments splits path into its segments.
func Segments(path string) []string {
	return strings.Split(path, string(Separator))
}

// Render replaces every [Separator] in path with sep.
func Render(path string, sep rune) string {
	if sep == Separator {
		return path
	}

	return strings.ReplaceAll(path, string(Separator), string(sep))
}
