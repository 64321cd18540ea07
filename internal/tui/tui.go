// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-profile-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Controller runs the user's actions. bridge.Bridge satisfies it.
type Controller interface {
	Start(ctx context.Context)
	SubmitLogin(ctx context.Context, creds models.Credentials)
	SubmitEdit(ctx context.Context, edit models.ProfileEdit)
	SubmitAvatar(ctx context.Context, file *models.AvatarFile)
	Logout(ctx context.Context)
}

// SessionReader exposes the stored token for the session expiry line.
type SessionReader interface {
	Token(ctx context.Context) (string, error)
}

type TUI struct {
	controller Controller
	sessions   SessionReader
	cells      *Cells
	buildInfo  models.AppBuildInfo
}

func New(controller Controller, sessions SessionReader, cells *Cells, buildInfo models.AppBuildInfo) *TUI {
	return &TUI{
		controller: controller,
		sessions:   sessions,
		cells:      cells,
		buildInfo:  buildInfo,
	}
}

// Run shows the screen until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.controller, t.sessions, t.cells, t.buildInfo)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
