package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestGuardModel_Submit(t *testing.T) {
	var m tea.Model = newGuardModel("alice", models.GuardDeviceCode)
	m = typeText(m, " ab1 2c ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	result := m.(guardModel)
	assert.Equal(t, "AB12C", result.code)
	assert.False(t, result.quit)
}

func TestGuardModel_EmptySubmitShowsError(t *testing.T) {
	var m tea.Model = newGuardModel("alice", models.GuardEmailCode)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	result := m.(guardModel)
	assert.Empty(t, result.code)
	assert.NotEmpty(t, result.errMsg)
	assert.Contains(t, result.View(), result.errMsg)
}

func TestGuardModel_Quit(t *testing.T) {
	var m tea.Model = newGuardModel("alice", models.GuardDeviceCode)
	m = typeText(m, "12345")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, m.(guardModel).quit)
}

func TestGuardModel_View(t *testing.T) {
	view := newGuardModel("bob", models.GuardEmailCode).View()
	assert.Contains(t, view, "bob")
	assert.Contains(t, view, "email")

	view = newGuardModel("bob", models.GuardDeviceCode).View()
	assert.Contains(t, view, "authenticator")
}

func TestNormalizeCode(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"   ":       "",
		"abcde":     "ABCDE",
		" 12 3 4 5": "12345",
		"x\ty\nz":   "XYZ",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeCode(in), "input %q", in)
	}
}

func TestPrompter_UnsupportedGuard(t *testing.T) {
	p := New(logger.Nop(), WithIO(strings.NewReader(""), &bytes.Buffer{}))

	_, err := p.GuardCode(context.Background(), "alice", models.GuardDeviceTouch)
	assert.ErrorIs(t, err, ErrUnsupportedGuard)
}

func TestPrompter_CancelledContext(t *testing.T) {
	p := New(logger.Nop(), WithIO(strings.NewReader(""), &bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GuardCode(ctx, "alice", models.GuardDeviceCode)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_CancelWhileWaiting(t *testing.T) {
	// a reader that never yields keeps the prompt open until the context ends
	p := New(logger.Nop(), WithIO(blockingReader{}, &bytes.Buffer{}))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := p.GuardCode(ctx, "alice", models.GuardEmailCode)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}
