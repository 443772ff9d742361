package views

import (
	"fmt"
	"strings"

	"anypick/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	InputView  string // rendered text input line
	Results    []domain.Result
	Selected   int
	TotalCount int // matches beyond the visible slice included
	ShowScores bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("anypick"))
	content.WriteString("\n")

	content.WriteString(r.styles.Prompt.Render("> "))
	content.WriteString(state.InputView)
	content.WriteString("\n\n")

	if len(state.Results) == 0 {
		content.WriteString(r.styles.NoResults.Render("  no matches"))
		content.WriteString("\n")
	}

	for i, res := range state.Results {
		content.WriteString(r.renderResult(res, i == state.Selected, state.ShowScores))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	if state.TotalCount > len(state.Results) {
		content.WriteString(r.styles.Counter.Render(
			fmt.Sprintf("%d/%d shown", len(state.Results), state.TotalCount)))
		content.WriteString("\n")
	}
	content.WriteString(r.styles.Help.Render("↑/↓ navigate · enter open · ctrl+r reveal · esc cancel"))

	return content.String()
}

// renderResult renders one result row: cursor, icon, highlighted short
// name, provider badge, highlighted full name, optional raw score.
func (r *Renderer) renderResult(res domain.Result, selected bool, showScore bool) string {
	c := res.Candidate

	cursor := "  "
	if selected {
		cursor = r.styles.Cursor.Render("> ")
	}

	icon := c.Icon()
	if icon != "" {
		icon += " "
	}

	name := Highlight(c.Name, res.Name.Positions, r.styles.Highlight, r.styles.Name)
	full := Highlight(c.FullName, res.FullName.Positions, r.styles.Highlight, r.styles.FullName)

	badge := ""
	if c.Provider != nil {
		label := c.Provider.Label()
		badge = " " + BadgeStyle(label).Render("["+label+"]")
	}

	score := ""
	if showScore {
		score = " " + r.styles.Score.Render(fmt.Sprintf("(%d)", res.Score))
	}

	line := fmt.Sprintf("%s%s%s%s  %s%s", cursor, icon, name, badge, full, score)
	if selected {
		return r.styles.Selected.Render(line)
	}
	return line
}
