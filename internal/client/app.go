package client

import (
	"context"
	"errors"

	"github.com/cardfolio/cardfolio/internal/logger"
	"github.com/cardfolio/cardfolio/internal/service"
	"github.com/cardfolio/cardfolio/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI

	logger *logger.Logger
}

// NewApp wires the fully constructed services and UI into a runnable client.
func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run implements [Client]. It drives the login flow, resumes any
// interrupted editing session, and runs the main loop until the user exits.
// Whatever draft is in flight is flushed to local storage on the way out.
func (a *App) Run() error {
	ctx := context.Background()

	// The draft outlives the process; losing it on exit defeats the point
	// of local persistence.
	defer func() {
		if err := a.services.DraftService.Flush(); err != nil {
			a.logger.Err(err).Msg("flush draft on exit")
		}
	}()

	if err := a.tui.LoginFlow(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	if _, err := a.services.DraftService.Resume(ctx); err == nil {
		a.logger.Info().Msg("resumed interrupted editing session")
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
