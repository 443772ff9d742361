// Package picker tracks the picker session: the current pattern, the
// ranked results for it, and which visible result is selected.
package picker

import (
	"log"

	"anypick/internal/config"
	"anypick/internal/domain"
	"anypick/internal/fuzzy"
	"anypick/internal/rank"
	"anypick/internal/ui/services/events"
)

// Service handles ranking and selection state
type Service struct {
	state      *State
	bus        events.EventBus
	cfg        *config.Config
	candidates []*domain.Candidate
}

// NewService creates a new picker service
func NewService(bus events.EventBus, cfg *config.Config) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
		cfg:   cfg,
	}
}

// SetCandidates installs the session's candidate list and ranks it
// against the current pattern. The list is read-only afterwards.
func (s *Service) SetCandidates(candidates []*domain.Candidate) {
	s.candidates = candidates
	s.rerank()
}

// SetPattern updates the pattern and recomputes the result list from
// scratch. Selection resets to the top result.
func (s *Service) SetPattern(raw string) {
	if raw == s.state.Pattern {
		return
	}
	s.state.Pattern = raw
	s.state.Matchable = fuzzy.SplitPattern(raw)
	s.rerank()
}

func (s *Service) rerank() {
	s.state.Results = rank.Rank(s.cfg.Match, s.cfg.NameMatchBonus, s.state.Matchable, s.candidates)
	s.state.Selected = 0

	log.Printf("Ranked %d candidates for %q: %d matches", len(s.candidates), s.state.Matchable, len(s.state.Results))
	s.bus.Publish(ResultsUpdatedEvent{
		Pattern:    s.state.Matchable,
		MatchCount: len(s.state.Results),
	})
}

// Pattern returns the raw pattern text
func (s *Service) Pattern() string {
	return s.state.Pattern
}

// Results returns the full ranked result list
func (s *Service) Results() []domain.Result {
	return s.state.Results
}

// VisibleResults returns the top-K slice shown on screen
func (s *Service) VisibleResults() []domain.Result {
	n := s.visibleCount()
	return s.state.Results[:n]
}

// Selected returns the selected index within the visible slice
func (s *Service) Selected() int {
	return s.state.Selected
}

// MoveUp moves the selection up, wrapping to the bottom
func (s *Service) MoveUp() {
	s.move(-1)
}

// MoveDown moves the selection down, wrapping to the top
func (s *Service) MoveDown() {
	s.move(1)
}

func (s *Service) move(delta int) {
	n := s.visibleCount()
	if n == 0 {
		return
	}
	old := s.state.Selected
	s.state.Selected = (s.state.Selected + delta + n) % n
	if old != s.state.Selected {
		s.bus.Publish(SelectionMovedEvent{OldIndex: old, NewIndex: s.state.Selected})
	}
}

// Confirm marks the selected candidate as the session's choice and
// reports whether there was one. The open action itself runs through
// DispatchOpen once the UI has released the terminal.
func (s *Service) Confirm() bool {
	c := s.selectedCandidate()
	if c == nil {
		return false
	}
	s.state.Pending = c
	s.bus.Publish(ConfirmedEvent{Name: c.Name})
	return true
}

// DispatchOpen sends the confirmed candidate to its provider, passing
// the full pattern text so the provider sees the argument tail.
func (s *Service) DispatchOpen() error {
	c := s.state.Pending
	if c == nil {
		return nil
	}
	return c.Provider.OnOpen(c, s.state.Pattern)
}

// Reveal dispatches the secondary action for the selected candidate
func (s *Service) Reveal() error {
	c := s.selectedCandidate()
	if c == nil {
		return nil
	}
	s.bus.Publish(RevealedEvent{Name: c.Name})
	return c.Provider.OnReveal(c)
}

func (s *Service) selectedCandidate() *domain.Candidate {
	n := s.visibleCount()
	if n == 0 {
		return nil
	}
	return s.state.Results[s.state.Selected].Candidate
}

func (s *Service) visibleCount() int {
	n := len(s.state.Results)
	if n > s.cfg.MaxResults {
		n = s.cfg.MaxResults
	}
	return n
}
