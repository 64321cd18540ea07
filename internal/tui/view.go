// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-client/internal/presentation"
	"github.com/MKhiriev/go-profile-client/models"
)

const uiDivider = "──────────────────────────────────────────"

const expiryLayout = "2006-01-02 15:04"

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.viewProfile())
	b.WriteString("\n\n")
	b.WriteString(m.viewForm("Login", presentation.FormLogin,
		field{"Username", inputLoginUsername},
		field{"Password", inputLoginPassword},
	))
	b.WriteString("\n")
	b.WriteString(m.viewForm("Edit profile", presentation.FormEdit,
		field{"Username", inputEditUsername},
		field{"Email", inputEditEmail},
	))
	b.WriteString("\n")
	b.WriteString(m.viewForm("Avatar", presentation.FormAvatar,
		field{"File", inputAvatarPath},
	))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	body := b.String()
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m model) viewProfile() string {
	session := "-"
	switch {
	case m.hasExpiry:
		session = "expires " + m.expiresAt.Local().Format(expiryLayout)
	case m.loggedIn:
		session = "active"
	}

	card := fmt.Sprintf("Username: %s\nEmail:    %s\nAvatar:   %s\nSession:  %s",
		valueOrDash(m.cells.Username.Get()),
		valueOrDash(m.cells.Email.Get()),
		valueOrDash(m.cells.Avatar.Get()),
		session,
	)

	return titleStyle.Render("Profile") + "\n" + cardStyle.Render(card)
}

type field struct {
	label string
	input int
}

func (m model) viewForm(title string, form presentation.Form, fields ...field) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "  %-9s [%s]\n", f.label+":", m.inputs[f.input].View())
	}
	b.WriteString("  ")
	b.WriteString(m.viewButton(form))
	b.WriteString("\n")

	return b.String()
}

func (m model) viewButton(form presentation.Form) string {
	if m.busy(form) {
		return busyStyle.Render(presentation.LabelBusy) + " " + m.spinner.View()
	}
	if inputForms[m.focus] == form {
		return activeStyle.Render(presentation.LabelIdle)
	}
	return buttonStyle.Render(presentation.LabelIdle)
}

func (m model) viewFooter() string {
	var b strings.Builder

	b.WriteString(uiDivider)
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	var hints []string
	for _, k := range []struct{ key, desc string }{
		{keys.tab.Help().Key, keys.tab.Help().Desc},
		{keys.enter.Help().Key, keys.enter.Help().Desc},
		{keys.logout.Help().Key, keys.logout.Help().Desc},
		{keys.copy.Help().Key, keys.copy.Help().Desc},
		{keys.quit.Help().Key, keys.quit.Help().Desc},
	} {
		hints = append(hints, k.key+": "+k.desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(hints, "  ")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderBuildInfo(m.buildInfo)))

	return b.String()
}

func renderBuildInfo(info models.AppBuildInfo) string {
	return fmt.Sprintf("version %s (%s, %s)",
		valueOrNA(info.BuildVersion()),
		valueOrNA(info.BuildCommit()),
		valueOrNA(info.BuildDate()),
	)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
