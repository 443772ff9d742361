package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"anypick/internal/config"
	"anypick/internal/ui/services/picker"
	"anypick/internal/ui/views"
)

// revealDoneMsg contains the result of a reveal command
type revealDoneMsg struct {
	err error
}

// Model represents the UI state
type Model struct {
	cfg      *config.Config
	picker   *picker.Service
	renderer *views.Renderer
	input    textinput.Model

	width  int
	height int

	confirmed bool
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, pickerSvc *picker.Service) *Model {
	ti := textinput.New()
	ti.Prompt = "" // prompt is rendered by the view
	ti.Focus()

	return &Model{
		cfg:      cfg,
		picker:   pickerSvc,
		renderer: views.NewRenderer(),
		input:    ti,
	}
}

// Confirmed reports whether the session ended with a confirmed choice
func (m *Model) Confirmed() bool {
	return m.confirmed
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case revealDoneMsg:
		if msg.err != nil {
			log.Printf("Reveal failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Cancel: quit without emitting any action
			return m, tea.Quit

		case "enter":
			if m.picker.Confirm() {
				m.confirmed = true
				return m, tea.Quit
			}
			return m, nil

		case "ctrl+r":
			// Reveal runs as a command: it releases the terminal
			// for the pager, which must not happen on the update
			// goroutine.
			return m, func() tea.Msg {
				return revealDoneMsg{err: m.picker.Reveal()}
			}

		case "up", "ctrl+p":
			m.picker.MoveUp()
			return m, nil

		case "down", "ctrl+n":
			m.picker.MoveDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.picker.SetPattern(m.input.Value())
	return m, cmd
}

// View implements tea.Model
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Height:     m.height,
		InputView:  m.input.View(),
		Results:    m.picker.VisibleResults(),
		Selected:   m.picker.Selected(),
		TotalCount: len(m.picker.Results()),
		ShowScores: m.cfg.ShowScores,
	})
}
