// Package providers contains the candidate sources the picker is
// wired with at startup, plus the collection plumbing shared by them.
package providers

import (
	"fmt"
	"log"

	"anypick/internal/domain"
)

// List accumulates candidates during collection and implements
// domain.Sink. Once collection finishes the list is read-only for the
// rest of the session.
type List struct {
	candidates []*domain.Candidate
}

// Add appends a candidate to the list
func (l *List) Add(c *domain.Candidate) {
	l.candidates = append(l.candidates, c)
}

// Candidates returns the collected candidates
func (l *List) Candidates() []*domain.Candidate {
	return l.candidates
}

// Collect runs every registered provider once and returns the
// combined candidate list. A failing provider aborts the session;
// there is no partial collection.
func Collect(registry []domain.Provider) ([]*domain.Candidate, error) {
	list := &List{}
	for _, p := range registry {
		before := len(list.candidates)
		if err := p.Provide(list); err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Label(), err)
		}
		log.Printf("Provider %s supplied %d candidates", p.Label(), len(list.candidates)-before)
	}
	return list.Candidates(), nil
}
