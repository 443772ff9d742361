package fuzzy

import "unicode"

// SplitPattern strips the argument tail from a raw pattern: everything
// from the first unescaped whitespace rune onward is dropped, leaving
// only the part meant for matching. A backslash escapes the following
// rune. Splitting an already split pattern returns it unchanged.
func SplitPattern(raw string) string {
	escaped := false
	for i, r := range raw {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if unicode.IsSpace(r) {
			return raw[:i]
		}
	}
	return raw
}
