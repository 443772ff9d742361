package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anypick/internal/domain"
	"anypick/internal/fuzzy"
)

func candidates(pairs ...[2]string) []*domain.Candidate {
	out := make([]*domain.Candidate, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, &domain.Candidate{Name: p[0], FullName: p[1]})
	}
	return out
}

func TestRankFiltersNonMatches(t *testing.T) {
	cands := candidates(
		[2]string{"OpenFile", "Menu/File/Open"},
		[2]string{"SaveFile", "Menu/File/Save"},
	)

	results := Rank(fuzzy.DefaultWeights(), 10, "ofi", cands)
	require.Len(t, results, 1)
	assert.Equal(t, "OpenFile", results[0].Candidate.Name)
	assert.True(t, results[0].Name.Matched)
	assert.False(t, results[0].FullName.Matched)
}

func TestRankEmptyPatternListsEverything(t *testing.T) {
	cands := candidates(
		[2]string{"OpenFile", "Menu/File/Open"},
		[2]string{"SaveFile", "Menu/File/Save"},
	)

	results := Rank(fuzzy.DefaultWeights(), 10, "", cands)
	require.Len(t, results, 2)
	assert.Equal(t, "OpenFile", results[0].Candidate.Name)
	assert.Equal(t, "SaveFile", results[1].Candidate.Name)
	assert.Equal(t, 0, results[0].Score)
	assert.Equal(t, 0, results[1].Score)
}

func TestRankCombinedScore(t *testing.T) {
	w := fuzzy.DefaultWeights()
	const bonus = 10
	cands := candidates([2]string{"OpenFile", "Menu/File/Open"})

	results := Rank(w, bonus, "open", cands)
	require.Len(t, results, 1)

	name := fuzzy.Match(w, "open", "OpenFile")
	full := fuzzy.Match(w, "open", "Menu/File/Open")
	require.True(t, name.Matched)
	require.True(t, full.Matched)

	want := name.Score + bonus
	if full.Score > want {
		want = full.Score
	}
	assert.Equal(t, want, results[0].Score)
}

func TestRankNameBonusWhenOnlyFullNameMatches(t *testing.T) {
	w := fuzzy.DefaultWeights()
	cands := candidates([2]string{"SaveFile", "Menu/File/Save"})

	// "menu" only appears in the full name; no name bonus applies.
	results := Rank(w, 100, "menu", cands)
	require.Len(t, results, 1)
	assert.False(t, results[0].Name.Matched)
	assert.Equal(t, fuzzy.Match(w, "menu", "Menu/File/Save").Score, results[0].Score)
}

func TestRankShortNameOutranksLongName(t *testing.T) {
	cands := candidates(
		[2]string{"config", "deep/nested/path/config"},
		[2]string{"zzzz", "another/config"},
	)

	results := Rank(fuzzy.DefaultWeights(), 15, "config", cands)
	require.Len(t, results, 2)
	assert.Equal(t, "config", results[0].Candidate.Name)
}

func TestRankDescendingOrder(t *testing.T) {
	cands := candidates(
		[2]string{"xconfigx", "a"},
		[2]string{"config", "b"},
		[2]string{"cxoxnxfxixg", "c"},
	)

	results := Rank(fuzzy.DefaultWeights(), 0, "config", cands)
	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestRankStableTieBreak(t *testing.T) {
	// Identical names score identically; ranking must keep list order.
	cands := candidates(
		[2]string{"alpha", "one/alpha"},
		[2]string{"alpha", "two/alpha"},
		[2]string{"alpha", "three/alpha"},
	)

	results := Rank(fuzzy.DefaultWeights(), 10, "alp", cands)
	require.Len(t, results, 3)
	assert.Equal(t, "one/alpha", results[0].Candidate.FullName)
	assert.Equal(t, "two/alpha", results[1].Candidate.FullName)
	assert.Equal(t, "three/alpha", results[2].Candidate.FullName)
}
