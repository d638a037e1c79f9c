package match

import (
	"regexp"
	"strings"
)

// placeholder matches $NAME and ${NAME}, with optional surrounding double
// quotes so that already-quoted references are not quoted twice.
var placeholder = regexp.MustCompile(`"?\$(?:\{\s*(\w+)\s*\}|\s*\b(\w+)\b)"?`)

func refName(sub []string) string {
	if sub[1] != "" {
		return sub[1]
	}

	return sub[2]
}

// FixJSON rewrites every $NAME reference in raw as the JSON string "NAME".
func FixJSON(raw string) string {
	return placeholder.ReplaceAllStringFunc(raw, func(m string) string {
		return `"` + refName(placeholder.FindStringSubmatch(m)) + `"`
	})
}

// FixDotenv rewrites every $NAME reference in raw as the bare word NAME and
// splits assignments separated by ';' onto their own lines.
func FixDotenv(raw string) string {
	fixed := placeholder.ReplaceAllStringFunc(raw, func(m string) string {
		sub := placeholder.FindStringSubmatch(m)

		// Quotes matched around the reference are kept.
		var pre, post string
		if strings.HasPrefix(m, `"`) {
			pre = `"`
		}

		if strings.HasSuffix(m, `"`) {
			post = `"`
		}

		return pre + refName(sub) + post
	})

	return strings.ReplaceAll(fixed, ";", "\n")
}
