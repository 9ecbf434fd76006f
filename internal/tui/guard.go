package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/models"
)

const guardCodeMaxLen = 8

// guardModel asks for a single second-factor code for one account.
type guardModel struct {
	username string
	kind     models.GuardKind

	input  textinput.Model
	errMsg string

	code string
	quit bool
}

func newGuardModel(username string, kind models.GuardKind) guardModel {
	input := textinput.New()
	input.Placeholder = "code"
	input.CharLimit = guardCodeMaxLen
	input.Width = 20
	input.Focus()

	return guardModel{
		username: username,
		kind:     kind,
		input:    input,
	}
}

func (m guardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m guardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.submit):
			code := normalizeCode(m.input.Value())
			if code == "" {
				m.errMsg = "code must not be empty"
				return m, nil
			}
			m.code = code
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m guardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(guardTitle(m.kind)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Account: %s\n\n", accountStyle.Render(m.username)))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit • esc: skip"))
	return appStyle.Render(b.String())
}

func guardTitle(kind models.GuardKind) string {
	switch kind {
	case models.GuardEmailCode:
		return "Enter the code sent to your email"
	default:
		return "Enter the code from your authenticator app"
	}
}

// normalizeCode strips whitespace and upper-cases the code the way the
// authenticator displays it.
func normalizeCode(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}
