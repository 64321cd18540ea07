// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-profile-client/internal/presentation"

// Cells are the display targets drawn by the screen.
type Cells struct {
	Username presentation.Cell
	Email    presentation.Cell
	Avatar   presentation.Cell

	UsernameInput presentation.Cell
	EmailInput    presentation.Cell

	Error presentation.Cell

	LoginSubmit  presentation.BusyCell
	EditSubmit   presentation.BusyCell
	AvatarSubmit presentation.BusyCell
}

func NewCells() *Cells {
	return &Cells{}
}

// Surface points every target of a [presentation.Surface] at c.
func (c *Cells) Surface() *presentation.Surface {
	return &presentation.Surface{
		UsernameDisplay: &c.Username,
		EmailDisplay:    &c.Email,
		AvatarDisplay:   &c.Avatar,
		UsernameInput:   &c.UsernameInput,
		EmailInput:      &c.EmailInput,
		Error:           &c.Error,
		LoginSubmit:     &c.LoginSubmit,
		EditSubmit:      &c.EditSubmit,
		AvatarSubmit:    &c.AvatarSubmit,
	}
}

func (c *Cells) submit(form presentation.Form) *presentation.BusyCell {
	switch form {
	case presentation.FormLogin:
		return &c.LoginSubmit
	case presentation.FormEdit:
		return &c.EditSubmit
	default:
		return &c.AvatarSubmit
	}
}
