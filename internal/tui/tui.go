// SPDX-License-Identifier: Apache-2.0

// Package tui renders the interactive console on top of bubbletea. The app
// model owns a screen enum and delegates each message to the active screen;
// all I/O happens in tea.Cmd closures that call into the service layer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/service"
)

type TUI struct {
	services        *service.ClientServices
	refreshInterval time.Duration
	logger          *logger.Logger
}

func New(services *service.ClientServices, refreshInterval time.Duration, l *logger.Logger) *TUI {
	return &TUI{
		services:        services,
		refreshInterval: refreshInterval,
		logger:          l,
	}
}

// Run drives the console until the operator quits or logs out. restoredUser
// is the username of a previously persisted session, empty when the operator
// has to sign in first. Returns true when the operator chose to log out, so
// the caller can clear the persisted session.
func (t *TUI) Run(ctx context.Context, restoredUser string) (bool, error) {
	model := newAppModel(ctx, t.services, t.refreshInterval, restoredUser)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()

	t.services.Refresh.Stop()

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return false, nil
		}
		return false, fmt.Errorf("running console: %w", err)
	}

	app, ok := final.(appModel)
	if !ok {
		return false, nil
	}
	if app.err != nil && !errors.Is(app.err, ErrUserQuit) {
		return false, app.err
	}
	return app.logout, nil
}
