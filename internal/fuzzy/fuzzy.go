// Package fuzzy implements the subsequence matcher behind the picker.
// A pattern matches a string when every pattern rune appears in the
// string in order, not necessarily contiguously. The score rewards
// dense matches and matches that start words, in the style of the
// Sublime Text / fzf family of matchers.
package fuzzy

import (
	"unicode"

	"anypick/internal/domain"
)

// Weights are the tunable scoring parameters. They are loaded from
// configuration and immutable during matching.
type Weights struct {
	// BoundaryBonus is added when a matched rune starts the string,
	// follows a separator, or sits on a lower-to-upper transition.
	BoundaryBonus int `toml:"boundary_bonus"`
	// ConsecutiveBonus is added when a matched rune is adjacent to
	// the previously matched one.
	ConsecutiveBonus int `toml:"consecutive_bonus"`
	// GapPenalty is subtracted per skipped rune between two
	// consecutive matches.
	GapPenalty int `toml:"gap_penalty"`
	// MaxGapPenalty caps the penalty for a single gap so one long
	// skip cannot erase an otherwise good match.
	MaxGapPenalty int `toml:"max_gap_penalty"`
	// CaseSensitive disables case folding during matching.
	CaseSensitive bool `toml:"case_sensitive"`
}

// DefaultWeights returns the scoring parameters used when the config
// file does not override them.
func DefaultWeights() Weights {
	return Weights{
		BoundaryBonus:    8,
		ConsecutiveBonus: 5,
		GapPenalty:       1,
		MaxGapPenalty:    10,
	}
}

// Match matches pattern against s and returns whether it matched, the
// score, and the matched rune positions in increasing order.
//
// Position selection is greedy leftmost: each pattern rune takes the
// first remaining string rune that equals it. The scan is a single
// forward pass, so a call costs O(len(pattern)+len(s)).
//
// The empty pattern matches everything with score 0 and no positions.
func Match(w Weights, pattern, s string) domain.MatchOutcome {
	if pattern == "" {
		return domain.MatchOutcome{Matched: true}
	}

	pr := []rune(pattern)
	sr := []rune(s)
	if len(pr) > len(sr) {
		return domain.MatchOutcome{}
	}

	positions := make([]int, 0, len(pr))
	score := 0
	pi := 0
	for si, r := range sr {
		if pi >= len(pr) {
			break
		}
		if !runesEqual(pr[pi], r, w.CaseSensitive) {
			continue
		}

		if isBoundary(sr, si) {
			score += w.BoundaryBonus
		}
		if len(positions) > 0 {
			prev := positions[len(positions)-1]
			if si == prev+1 {
				score += w.ConsecutiveBonus
			} else {
				penalty := w.GapPenalty * (si - prev - 1)
				if penalty > w.MaxGapPenalty {
					penalty = w.MaxGapPenalty
				}
				score -= penalty
			}
		}

		positions = append(positions, si)
		pi++
	}

	if pi < len(pr) {
		return domain.MatchOutcome{}
	}
	return domain.MatchOutcome{Matched: true, Score: score, Positions: positions}
}

func runesEqual(p, s rune, caseSensitive bool) bool {
	if caseSensitive {
		return p == s
	}
	return unicode.ToLower(p) == unicode.ToLower(s)
}

// isBoundary reports whether position i starts a word: the start of
// the string, the rune after a separator, or a case transition.
func isBoundary(sr []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, curr := sr[i-1], sr[i]
	if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}
