package picker

import "anypick/internal/domain"

// State holds the picker session state
type State struct {
	Pattern   string // raw pattern, argument tail included
	Matchable string // pattern part fed to the matcher
	Results   []domain.Result
	Selected  int // index into the visible top-K slice
	Pending   *domain.Candidate
}

// Event types
type ResultsUpdatedEvent struct {
	Pattern    string
	MatchCount int
}

type SelectionMovedEvent struct {
	OldIndex int
	NewIndex int
}

type ConfirmedEvent struct {
	Name string
}

type RevealedEvent struct {
	Name string
}
