package views

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Dim       lipgloss.Style
	Help      lipgloss.Style
	Counter   lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Name      lipgloss.Style
	FullName  lipgloss.Style
	Highlight lipgloss.Style
	Score     lipgloss.Style
	NoResults lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Help:      lipgloss.NewStyle().Faint(true),
		Counter:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Name:      lipgloss.NewStyle(),
		FullName:  lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Score:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NoResults: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

// badgePalette holds the styles provider badges rotate through.
var badgePalette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
	lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // purple
}

// BadgeStyle returns the style for a provider label. The same label
// always maps to the same palette entry.
func BadgeStyle(label string) lipgloss.Style {
	h := fnv.New32a()
	h.Write([]byte(label))
	idx := int(h.Sum32()) % len(badgePalette)
	if idx < 0 {
		idx += len(badgePalette)
	}
	return badgePalette[idx]
}
