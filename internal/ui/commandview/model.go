package commandview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdeShaq/SUPERSCHEDULER/internal/theme"
)

// CommandSubmittedMsg carries a natural-language command to the app for
// AI parsing.
type CommandSubmittedMsg struct {
	Text string
}

// CommandCancelMsg is dispatched when the user leaves the command view.
type CommandCancelMsg struct{}

// Model is the AI command entry view.
type Model struct {
	input   textinput.Model
	running bool
	result  string
	width   int
	height  int
}

// New creates the command view.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. new task Gym at 7am daily"
	ti.Prompt = ": "
	ti.CharLimit = 200

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Start focuses the input for a new command.
func (m *Model) Start() tea.Cmd {
	m.running = false
	m.result = ""
	m.input.SetValue("")
	return m.input.Focus()
}

// SetRunning marks the in-flight state while the AI call runs.
func (m *Model) SetRunning() {
	m.running = true
}

// SetResult displays the outcome of the last command.
func (m *Model) SetResult(result string) {
	m.running = false
	m.result = result
}

// Update handles messages for the command view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.running {
			return m, nil
		}
		m.input.Blur()
		return m, func() tea.Msg { return CommandSubmittedMsg{Text: text} }
	case "esc":
		return m, func() tea.Msg { return CommandCancelMsg{} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command prompt and any result text.
func (m Model) View() string {
	title := theme.HeaderStyle.Render("System Intelligence")
	body := m.input.View()
	if m.running {
		body = theme.HelpStyle.Render("Analyzing...")
	}
	if m.result != "" {
		body += "\n\n" + theme.PanelStyle.Width(m.width-4).Render(m.result)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}
