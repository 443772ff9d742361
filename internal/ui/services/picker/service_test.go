package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anypick/internal/config"
	"anypick/internal/domain"
	"anypick/internal/ui/services/events"
)

// fakeProvider records dispatched actions
type fakeProvider struct {
	opened     *domain.Candidate
	openedWith string
	revealed   *domain.Candidate
}

func (f *fakeProvider) Provide(sink domain.Sink) error  { return nil }
func (f *fakeProvider) Icon(c *domain.Candidate) string { return "" }
func (f *fakeProvider) Label() string                   { return "fake" }
func (f *fakeProvider) OnReveal(c *domain.Candidate) error {
	f.revealed = c
	return nil
}
func (f *fakeProvider) OnOpen(c *domain.Candidate, fullPattern string) error {
	f.opened = c
	f.openedWith = fullPattern
	return nil
}

func newService(t *testing.T, maxResults int, names ...string) (*Service, *fakeProvider) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.MaxResults = maxResults

	provider := &fakeProvider{}
	cands := make([]*domain.Candidate, 0, len(names))
	for _, name := range names {
		cands = append(cands, &domain.Candidate{
			Name:     name,
			FullName: "menu/" + name,
			Provider: provider,
		})
	}

	svc := NewService(&events.NullBus{}, cfg)
	svc.SetCandidates(cands)
	return svc, provider
}

func TestNavigationWraparound(t *testing.T) {
	svc, _ := newService(t, 10, "alpha", "alphb", "alphc")
	svc.SetPattern("alph")
	require.Len(t, svc.VisibleResults(), 3)
	require.Equal(t, 0, svc.Selected())

	svc.MoveUp()
	assert.Equal(t, 2, svc.Selected())

	svc.MoveDown()
	assert.Equal(t, 0, svc.Selected())

	svc.MoveDown()
	svc.MoveDown()
	assert.Equal(t, 2, svc.Selected())
	svc.MoveDown()
	assert.Equal(t, 0, svc.Selected())
}

func TestNavigationNoResultsIsNoop(t *testing.T) {
	svc, _ := newService(t, 10, "alpha")
	svc.SetPattern("zzz")
	require.Empty(t, svc.Results())

	svc.MoveUp()
	assert.Equal(t, 0, svc.Selected())
	svc.MoveDown()
	assert.Equal(t, 0, svc.Selected())
}

func TestPatternChangeResetsSelection(t *testing.T) {
	svc, _ := newService(t, 10, "alpha", "alphb", "alphc")
	svc.SetPattern("alph")
	svc.MoveDown()
	require.Equal(t, 1, svc.Selected())

	svc.SetPattern("alpha")
	assert.Equal(t, 0, svc.Selected())
}

func TestVisibleResultsBoundedByMaxResults(t *testing.T) {
	svc, _ := newService(t, 2, "alpha", "alphb", "alphc")
	svc.SetPattern("alph")

	assert.Len(t, svc.Results(), 3)
	assert.Len(t, svc.VisibleResults(), 2)

	// Wraparound covers the visible slice only
	svc.MoveUp()
	assert.Equal(t, 1, svc.Selected())
}

func TestConfirmPassesFullPatternThrough(t *testing.T) {
	svc, provider := newService(t, 10, "main.go")

	// The argument tail is stripped for matching but kept for the
	// provider.
	svc.SetPattern("main +120")
	require.Len(t, svc.Results(), 1)

	require.True(t, svc.Confirm())
	require.NoError(t, svc.DispatchOpen())
	require.NotNil(t, provider.opened)
	assert.Equal(t, "main.go", provider.opened.Name)
	assert.Equal(t, "main +120", provider.openedWith)
}

func TestConfirmWithNoResults(t *testing.T) {
	svc, provider := newService(t, 10, "alpha")
	svc.SetPattern("zzz")

	assert.False(t, svc.Confirm())
	require.NoError(t, svc.DispatchOpen())
	assert.Nil(t, provider.opened)
}

func TestRevealDispatchesToProvider(t *testing.T) {
	svc, provider := newService(t, 10, "alpha", "beta")
	svc.SetPattern("beta")
	require.Len(t, svc.Results(), 1)

	require.NoError(t, svc.Reveal())
	require.NotNil(t, provider.revealed)
	assert.Equal(t, "beta", provider.revealed.Name)
}

func TestSelectionTargetsRankedOrder(t *testing.T) {
	// "alpha" matched against its short name outranks "zzalpha"
	// matched mid-name, so selection index 1 is the weaker match.
	svc, provider := newService(t, 10, "zzalpha", "alpha")
	svc.SetPattern("alpha")
	require.Len(t, svc.Results(), 2)
	assert.Equal(t, "alpha", svc.VisibleResults()[0].Candidate.Name)

	svc.MoveDown()
	require.True(t, svc.Confirm())
	require.NoError(t, svc.DispatchOpen())
	assert.Equal(t, "zzalpha", provider.opened.Name)
}
