package client

import (
	"context"
	"errors"

	"github.com/matu-sky/qrcode1/internal/logger"
	"github.com/matu-sky/qrcode1/internal/tui"
)

// App drives the terminal client lifecycle: it runs the TUI until the user
// quits and translates the deliberate-exit sentinel into a clean shutdown.
type App struct {
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("tui is nil")
	}
	return &App{tui: ui, logger: log}, nil
}

// Run implements [Client]. It blocks until the TUI exits.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("client closed by user")
			return nil
		}
		return err
	}

	return nil
}
