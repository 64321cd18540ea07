// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presentation

import (
	"github.com/MKhiriev/go-profile-client/models"
)

// Surface is the set of display targets. Any field may be nil.
type Surface struct {
	UsernameDisplay TextSink
	EmailDisplay    TextSink
	AvatarDisplay   ImageSink

	// UsernameInput and EmailInput are the profile edit inputs.
	UsernameInput InputSink
	EmailInput    InputSink

	Error ErrorSink

	LoginSubmit  SubmitSink
	EditSubmit   SubmitSink
	AvatarSubmit SubmitSink
}

// ApplyProfile renders profile: username and email go to the display and
// edit targets, the avatar (or defaultAvatar when absent) to the image
// target.
func (s *Surface) ApplyProfile(profile models.UserProfile, defaultAvatar string) {
	if s == nil {
		return
	}

	avatar := profile.Avatar
	if !profile.HasAvatar() {
		avatar = defaultAvatar
	}

	setText(s.UsernameDisplay, profile.Username)
	setText(s.EmailDisplay, profile.Email)
	setSource(s.AvatarDisplay, avatar)
	setValue(s.UsernameInput, profile.Username)
	setValue(s.EmailInput, profile.Email)
}

// ClearProfile blanks every profile target. The error target is left alone.
func (s *Surface) ClearProfile() {
	if s == nil {
		return
	}

	setText(s.UsernameDisplay, "")
	setText(s.EmailDisplay, "")
	setSource(s.AvatarDisplay, "")
	setValue(s.UsernameInput, "")
	setValue(s.EmailInput, "")
}

// ShowError writes message to the error target. Nothing ever clears it.
func (s *Surface) ShowError(message string) {
	if s == nil || s.Error == nil {
		return
	}
	s.Error.ShowError(message)
}

// SetBusy flips the submit control of form.
func (s *Surface) SetBusy(form Form, busy bool) {
	if sink := s.submitSink(form); sink != nil {
		sink.SetBusy(busy)
	}
}

func (s *Surface) submitSink(form Form) SubmitSink {
	if s == nil {
		return nil
	}
	switch form {
	case FormLogin:
		return s.LoginSubmit
	case FormEdit:
		return s.EditSubmit
	case FormAvatar:
		return s.AvatarSubmit
	default:
		return nil
	}
}

func setText(sink TextSink, text string) {
	if sink != nil {
		sink.SetText(text)
	}
}

func setValue(sink InputSink, value string) {
	if sink != nil {
		sink.SetValue(value)
	}
}

func setSource(sink ImageSink, src string) {
	if sink != nil {
		sink.SetSource(src)
	}
}
