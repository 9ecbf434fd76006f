// Package tui implements the interactive guard-code prompt.
//
// Sessions that need a second-factor code during the credential exchange ask
// a [Prompter]. Prompts from concurrent sessions are shown one at a time and
// each one is bound to the asking session's context.
package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// Prompter asks the operator for guard codes in the terminal.
type Prompter struct {
	mu sync.Mutex

	input  io.Reader
	output io.Writer

	logger *logger.Logger
}

// Option customises a [Prompter].
type Option func(*Prompter)

// WithIO replaces the terminal with in and out.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *Prompter) {
		p.input = in
		p.output = out
	}
}

// New creates a Prompter bound to the process terminal unless overridden.
func New(logger *logger.Logger, opts ...Option) *Prompter {
	p := &Prompter{logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GuardCode implements adapter.GuardCodeProvider.
func (p *Prompter) GuardCode(ctx context.Context, username string, kind models.GuardKind) (string, error) {
	if kind != models.GuardDeviceCode && kind != models.GuardEmailCode {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGuard, kind)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.logger.Info().Str("account", username).Str("guard", string(kind)).Msg("waiting for guard code")

	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithoutSignalHandler()}
	if p.input != nil {
		options = append(options, tea.WithInput(p.input))
	}
	if p.output != nil {
		options = append(options, tea.WithOutput(p.output))
	}

	finalModel, err := tea.NewProgram(newGuardModel(username, kind), options...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("guard code prompt: %w", err)
	}

	result, ok := finalModel.(guardModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quit || result.code == "" {
		return "", ErrUserQuit
	}
	return result.code, nil
}
