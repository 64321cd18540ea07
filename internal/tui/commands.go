// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-client/internal/presentation"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) cmdStart() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.Start(ctx)
		return refreshedMsg{session: m.readSession()}
	}
}

func (m model) cmdSubmitLogin(creds models.Credentials) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.SubmitLogin(ctx, creds)
		return settledMsg{form: presentation.FormLogin, session: m.readSession()}
	}
}

func (m model) cmdSubmitEdit(edit models.ProfileEdit) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.SubmitEdit(ctx, edit)
		return settledMsg{form: presentation.FormEdit, session: m.readSession()}
	}
}

func (m model) cmdSubmitAvatar(file *models.AvatarFile) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.SubmitAvatar(ctx, file)
		return settledMsg{form: presentation.FormAvatar, session: m.readSession()}
	}
}

func (m model) cmdLogout() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.Logout(ctx)
		return refreshedMsg{session: m.readSession()}
	}
}

// readSession returns the stored session, or an empty one when there is none
// or the store cannot be read.
func (m model) readSession() models.Session {
	if m.sessions == nil {
		return models.Session{}
	}
	token, err := m.sessions.Token(m.ctx)
	if err != nil {
		return models.Session{}
	}
	return models.Session{Token: token}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
