// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/service"
	"github.com/cpm-tools/vault-console/internal/tui"
)

// App ties the services and the terminal UI into one runnable console
// process.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("services and ui are required")
	}
	return &App{services: services, ui: ui, logger: log}, nil
}

// Run restores a persisted session when one exists, then hands control to
// the console. A logout clears the session and returns to the logon screen;
// quitting ends the process.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		restoredUser, err := a.services.Session.Restore(ctx)
		if err != nil {
			if !errors.Is(err, service.ErrNoSession) && !errors.Is(err, service.ErrSessionExpired) {
				return fmt.Errorf("restore session: %w", err)
			}
			a.logger.Info().Err(err).Str("func", "App.Run").Msg("no restorable session, logon required")
			restoredUser = ""
		} else {
			a.logger.Info().Str("func", "App.Run").Str("username", restoredUser).Msg("session restored")
		}

		logout, err := a.ui.Run(ctx, restoredUser)
		if err != nil {
			return fmt.Errorf("console: %w", err)
		}
		if !logout {
			return nil
		}

		if err := a.services.Session.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Str("func", "App.Run").Msg("error clearing session on logout")
		}
	}
}
