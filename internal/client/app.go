package client

import (
	"context"
	"errors"

	"github.com/ddubrovin/tax-intake-client/internal/config"
	"github.com/ddubrovin/tax-intake-client/internal/logger"
	"github.com/ddubrovin/tax-intake-client/internal/profile"
	"github.com/ddubrovin/tax-intake-client/internal/tui"
	"github.com/ddubrovin/tax-intake-client/internal/workers"
)

// App runs the interactive intake session: the TUI in the foreground and the
// profile refresh job in the background.
type App struct {
	rec     *profile.Reconciler
	ui      *tui.TUI
	cfg     config.ClientConfig
	logger  *logger.Logger
	refresh *workers.RefreshJob
}

func NewApp(rec *profile.Reconciler, ui *tui.TUI, cfg config.ClientConfig, log *logger.Logger) (*App, error) {
	if rec == nil || ui == nil {
		return nil, errors.New("client: reconciler and ui are required")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		rec:     rec,
		ui:      ui,
		cfg:     cfg,
		logger:  log,
		refresh: workers.NewRefreshJob(rec, log),
	}, nil
}

// Run implements Client. It blocks until the user quits or the UI fails.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.refresh.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.refresh.Stop()

	err := a.ui.Run(ctx, a.cfg.App.Version)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("session ended by user")
		return nil
	}
	return err
}
