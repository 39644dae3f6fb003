package views

import (
	"strings"

	"smartimmo/locale"
	"smartimmo/styles"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type AssistantState int

const (
	AssistantIdle AssistantState = iota
	AssistantLoading
	AssistantAnswered
)

// AssistantPanel collects a prompt and shows the answer. Pages talk to it
// only through messages addressed to its ID.
type AssistantPanel struct {
	id       string
	input    textinput.Model
	state    AssistantState
	response string
	closed   bool
	focused  bool
	width    int
}

func NewAssistantPanel() AssistantPanel {
	ti := textinput.New()
	ti.Placeholder = locale.T(locale.AssistantPlaceholder)
	ti.CharLimit = 500
	ti.Width = 40
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)

	return AssistantPanel{
		id:    uuid.NewString(),
		input: ti,
	}
}

func (a AssistantPanel) ID() string {
	return a.id
}

func (a AssistantPanel) State() AssistantState {
	return a.state
}

func (a AssistantPanel) Loading() bool {
	return a.state == AssistantLoading
}

func (a AssistantPanel) Prompt() string {
	return a.input.Value()
}

func (a AssistantPanel) Response() (string, bool) {
	return a.response, a.state == AssistantAnswered
}

func (a AssistantPanel) Closed() bool {
	return a.closed
}

func (a *AssistantPanel) SetPrompt(prompt string) {
	a.input.SetValue(prompt)
}

// Submit sends the trimmed prompt. Blank prompts and submits made while a
// query is pending are ignored.
func (a *AssistantPanel) Submit() tea.Cmd {
	if a.closed || a.state == AssistantLoading {
		return nil
	}
	prompt := strings.TrimSpace(a.input.Value())
	if prompt == "" {
		return nil
	}
	a.state = AssistantLoading
	id := a.id
	return func() tea.Msg {
		return AgentQueryMsg{PanelID: id, Prompt: prompt}
	}
}

func (a *AssistantPanel) SetLoading(loading bool) {
	if a.closed {
		return
	}
	if loading {
		a.state = AssistantLoading
		return
	}
	if a.state == AssistantLoading {
		a.state = AssistantIdle
		if a.response != "" {
			a.state = AssistantAnswered
		}
	}
}

// SetResponse shows text, clears the prompt and ends loading
func (a *AssistantPanel) SetResponse(text string) {
	if a.closed {
		return
	}
	a.response = text
	a.state = AssistantAnswered
	a.input.Reset()
}

// Close disposes the panel; later agent messages are dropped
func (a *AssistantPanel) Close() {
	a.closed = true
	a.focused = false
	a.input.Blur()
}

func (a *AssistantPanel) Focus() {
	a.focused = true
	a.input.Focus()
}

func (a *AssistantPanel) Blur() {
	a.focused = false
	a.input.Blur()
}

func (a AssistantPanel) Focused() bool {
	return a.focused
}

func (a *AssistantPanel) SetWidth(w int) {
	a.width = w
	if w > 6 {
		a.input.Width = w - 6
	}
}

func (a AssistantPanel) Update(msg tea.Msg) (AssistantPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case AgentLoadingMsg:
		if msg.PanelID == a.id {
			a.SetLoading(msg.Loading)
		}
		return a, nil

	case AgentResponseMsg:
		if msg.PanelID == a.id {
			a.SetResponse(msg.Text)
		}
		return a, nil

	case tea.KeyMsg:
		if !a.focused || a.closed {
			return a, nil
		}
		if msg.String() == "enter" {
			cmd := a.Submit()
			return a, cmd
		}
		if a.state == AssistantLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a AssistantPanel) View() string {
	lines := []string{styles.Title.Render("✦ " + locale.T(locale.AssistantTitle)), a.input.View()}

	switch a.state {
	case AssistantLoading:
		lines = append(lines, styles.Muted.Render(locale.T(locale.AssistantLoading)))
	case AssistantAnswered:
		width := a.width - 4
		if width <= 0 {
			width = 40
		}
		lines = append(lines, "")
		lines = append(lines, wrapText(a.response, width)...)
	}

	style := styles.Panel
	if a.width > 0 {
		style = style.Width(a.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
