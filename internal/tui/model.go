// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/presentation"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Inputs in tab order.
const (
	inputLoginUsername = iota
	inputLoginPassword
	inputEditUsername
	inputEditEmail
	inputAvatarPath
	inputCount
)

// inputForms maps each input to the form it submits.
var inputForms = [inputCount]presentation.Form{
	presentation.FormLogin,
	presentation.FormLogin,
	presentation.FormEdit,
	presentation.FormEdit,
	presentation.FormAvatar,
}

const formCount = 3

type model struct {
	ctx        context.Context
	controller Controller
	sessions   SessionReader
	cells      *Cells
	buildInfo  models.AppBuildInfo

	inputs  []textinput.Model
	focus   int
	pending [formCount]bool
	spinner spinner.Model

	// last seen cell versions
	usernameInputVersion uint64
	emailInputVersion    uint64
	errorVersion         uint64

	showError    bool
	errorOverlay errorOverlayModel

	expiresAt time.Time
	hasExpiry bool
	loggedIn  bool
	status    string
}

func newModel(ctx context.Context, controller Controller, sessions SessionReader, cells *Cells, buildInfo models.AppBuildInfo) model {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 32
		inputs[i].Prompt = ""
	}
	inputs[inputLoginPassword].EchoMode = textinput.EchoPassword
	inputs[inputLoginPassword].EchoCharacter = '*'
	inputs[inputAvatarPath].Placeholder = "path to image"
	inputs[inputLoginUsername].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:        ctx,
		controller: controller,
		sessions:   sessions,
		cells:      cells,
		buildInfo:  buildInfo,
		inputs:     inputs,
		spinner:    s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdStart(), textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
				m.errorVersion = m.cells.Error.Version()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, keys.backtab):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, keys.enter):
			return m.submit()
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.copy):
			if avatar := m.cells.Avatar.Get(); avatar != "" {
				return m, cmdCopyToClipboard(avatar)
			}
			return m, nil
		}
	case settledMsg:
		m.pending[msg.form] = false
		m.applySession(msg.session)
		m.syncFromCells()
		return m, nil
	case refreshedMsg:
		m.applySession(msg.session)
		m.syncFromCells()
		return m, nil
	case copiedMsg:
		m.status = "Copied!"
		if msg.err != nil {
			m.status = "Copy failed"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.anyPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit sends the form owning the focused input. A form with a request in
// flight ignores the key, like a disabled button.
func (m model) submit() (tea.Model, tea.Cmd) {
	form := inputForms[m.focus]
	if m.pending[form] {
		return m, nil
	}

	var cmd tea.Cmd
	switch form {
	case presentation.FormLogin:
		cmd = m.cmdSubmitLogin(models.Credentials{
			Username: m.inputs[inputLoginUsername].Value(),
			Password: m.inputs[inputLoginPassword].Value(),
		})
	case presentation.FormEdit:
		cmd = m.cmdSubmitEdit(models.ProfileEdit{
			Username: m.inputs[inputEditUsername].Value(),
			Email:    m.inputs[inputEditEmail].Value(),
		})
	case presentation.FormAvatar:
		var file *models.AvatarFile
		if path := strings.TrimSpace(m.inputs[inputAvatarPath].Value()); path != "" {
			f, err := models.ReadAvatarFile(path)
			if err != nil {
				m.cells.Error.ShowError(app.MsgAvatarUploadFailed)
				m.syncFromCells()
				return m, nil
			}
			file = f
		}
		cmd = m.cmdSubmitAvatar(file)
	}

	m.pending[form] = true
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m *model) setFocus(idx int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (idx%inputCount + inputCount) % inputCount
	return m.inputs[m.focus].Focus()
}

// syncFromCells copies what the controller wrote since the last look: the
// edit inputs are overwritten only when their cells changed, and a new error
// opens the overlay.
func (m *model) syncFromCells() {
	if v := m.cells.UsernameInput.Version(); v != m.usernameInputVersion {
		m.usernameInputVersion = v
		m.inputs[inputEditUsername].SetValue(m.cells.UsernameInput.Get())
	}
	if v := m.cells.EmailInput.Version(); v != m.emailInputVersion {
		m.emailInputVersion = v
		m.inputs[inputEditEmail].SetValue(m.cells.EmailInput.Get())
	}
	if v := m.cells.Error.Version(); v != m.errorVersion {
		m.showError = true
		m.errorOverlay.message = m.cells.Error.Get()
	}
}

func (m *model) applySession(session models.Session) {
	m.loggedIn = !session.IsEmpty()
	m.expiresAt, m.hasExpiry = session.ExpiresAt()
}

func (m model) anyPending() bool {
	for _, p := range m.pending {
		if p {
			return true
		}
	}
	return false
}

func (m model) busy(form presentation.Form) bool {
	return m.pending[form] || m.cells.submit(form).Busy()
}
