// SPDX-License-Identifier: Apache-2.0

// Package tui implements the terminal console for operators: a login
// screen, the evidence vault browser with custody actions, and read-only
// views of the audit chain, the alert feed and the field workforce roster.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verdantlabs/wastesentry/internal/adapter"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

// TUI drives the console screens on top of a [adapter.ServerAdapter].
type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// LoginFlow runs the login screen until the operator authenticates or
// quits. On success the adapter already holds the session token and the
// returned user carries the role the server granted.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	model := newLoginAppModel(ctx, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultSession, nil
}

// MainLoop runs the evidence browser until the operator quits or logs out.
// It reports logout=true when the caller should run LoginFlow again.
func (t *TUI) MainLoop(ctx context.Context, session models.User) (logout bool, err error) {
	model := newMainAppModel(ctx, t.server, session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
