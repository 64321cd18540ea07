// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presentation

// Form identifies one of the three user forms.
type Form int

const (
	FormLogin Form = iota
	FormEdit
	FormAvatar
)

func (f Form) String() string {
	switch f {
	case FormLogin:
		return "login"
	case FormEdit:
		return "edit"
	case FormAvatar:
		return "avatar"
	default:
		return "unknown"
	}
}

// FormState is the per-form submission state.
type FormState int

const (
	// Idle accepts a submit.
	Idle FormState = iota
	// Submitting has a request in flight; the form's submit control is
	// disabled.
	Submitting
)

func (s FormState) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}
