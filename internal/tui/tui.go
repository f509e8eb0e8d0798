package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddubrovin/tax-intake-client/internal/logger"
	"github.com/ddubrovin/tax-intake-client/internal/profile"
)

var ErrUserQuit = errors.New("user quit")

// TUI drives the interactive intake form in the terminal.
type TUI struct {
	rec    *profile.Reconciler
	logger *logger.Logger
}

func New(rec *profile.Reconciler, log *logger.Logger) (*TUI, error) {
	if rec == nil {
		return nil, errors.New("tui: reconciler is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{rec: rec, logger: log}, nil
}

// Run starts the interactive session and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, version string) error {
	model := newAppModel(ctx, t.rec, version)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
