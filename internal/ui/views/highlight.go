package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Highlight renders s with the runes at the matched positions styled
// with matched and everything else with normal. Positions are rune
// indices as produced by the matcher: strictly increasing and within
// the string. Formatting only, no scoring.
func Highlight(s string, positions []int, matched, normal lipgloss.Style) string {
	if len(positions) == 0 {
		return normal.Render(s)
	}

	runes := []rune(s)
	var b strings.Builder
	prev := 0
	for _, span := range spans(positions) {
		if span[0] > prev {
			b.WriteString(normal.Render(string(runes[prev:span[0]])))
		}
		b.WriteString(matched.Render(string(runes[span[0]:span[1]])))
		prev = span[1]
	}
	if prev < len(runes) {
		b.WriteString(normal.Render(string(runes[prev:])))
	}
	return b.String()
}

// spans groups increasing positions into half-open [start, end) runs
// so adjacent matched runes are styled as one segment.
func spans(positions []int) [][2]int {
	var out [][2]int
	start := positions[0]
	end := start + 1
	for _, p := range positions[1:] {
		if p == end {
			end++
			continue
		}
		out = append(out, [2]int{start, end})
		start, end = p, p+1
	}
	return append(out, [2]int{start, end})
}
