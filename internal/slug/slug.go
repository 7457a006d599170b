// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"strings"
	"unicode"
)

// Make converts a title to a lowercase dash-separated slug.
// Non-alphanumeric runs collapse to a single dash; leading and trailing
// dashes are stripped. An empty input yields "untitled".
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevDash := true // suppress a leading dash
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}

	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "untitled"
	}
	return out
}
