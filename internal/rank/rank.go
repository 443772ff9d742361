// Package rank runs the fuzzy matcher over the candidate list and
// produces the ordered result list shown in the picker.
package rank

import (
	"sort"

	"anypick/internal/domain"
	"anypick/internal/fuzzy"
)

// Rank matches pattern against every candidate's short and full name
// and returns the matching candidates in descending score order.
//
// A candidate is included when either field matches. The combined
// score is max(nameScore+nameMatchBonus, fullNameScore): a hit on the
// short name is preferred over the same hit buried in a long path.
// Equal scores keep candidate order, so re-ranking is deterministic.
//
// The result slice is rebuilt from scratch on every call; no state is
// carried between patterns.
func Rank(w fuzzy.Weights, nameMatchBonus int, pattern string, candidates []*domain.Candidate) []domain.Result {
	if pattern == "" {
		// Empty pattern lists everything unscored, no bonus.
		nameMatchBonus = 0
	}

	results := make([]domain.Result, 0, len(candidates))
	for _, c := range candidates {
		name := fuzzy.Match(w, pattern, c.Name)
		full := fuzzy.Match(w, pattern, c.FullName)
		if !name.Matched && !full.Matched {
			continue
		}

		score := 0
		switch {
		case name.Matched && full.Matched:
			score = max(name.Score+nameMatchBonus, full.Score)
		case name.Matched:
			score = name.Score + nameMatchBonus
		default:
			score = full.Score
		}

		results = append(results, domain.Result{
			Score:     score,
			Candidate: c,
			Name:      name,
			FullName:  full,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
