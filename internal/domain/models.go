package domain

// Candidate is one pickable item supplied by a provider
type Candidate struct {
	Name     string // short display name
	FullName string // qualified/long form
	Payload  any    // provider-specific data, opaque to the core
	Provider Provider

	// Icon glyph resolved lazily the first time the candidate
	// becomes visible, then cached for the session.
	icon       string
	iconLoaded bool
}

// Icon returns the cached icon glyph, resolving it on first use.
func (c *Candidate) Icon() string {
	if !c.iconLoaded {
		if c.Provider != nil {
			c.icon = c.Provider.Icon(c)
		}
		c.iconLoaded = true
	}
	return c.icon
}

// MatchOutcome is the result of matching one pattern against one string
type MatchOutcome struct {
	Matched   bool
	Score     int
	Positions []int // matched indices, strictly increasing
}

// Result is one matching candidate with its combined score
type Result struct {
	Score     int
	Candidate *Candidate
	Name      MatchOutcome // outcome against Candidate.Name
	FullName  MatchOutcome // outcome against Candidate.FullName
}

// Sink receives candidates from a provider during collection
type Sink interface {
	Add(c *Candidate)
}

// Provider supplies candidates and handles what happens when one is chosen
type Provider interface {
	// Provide appends the provider's candidates; called once per session.
	Provide(sink Sink) error
	// Icon returns a display glyph for a candidate ("" for none).
	Icon(c *Candidate) string
	// Label is a short tag identifying the provider, shown as a badge.
	Label() string
	// OnOpen is invoked on confirm with the full pattern text,
	// including any argument tail the matcher never saw.
	OnOpen(c *Candidate, fullPattern string) error
	// OnReveal is invoked on secondary confirm.
	OnReveal(c *Candidate) error
}
