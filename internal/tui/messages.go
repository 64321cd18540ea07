// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-profile-client/internal/presentation"
	"github.com/MKhiriev/go-profile-client/models"
)

// settledMsg reports that a form submission finished.
type settledMsg struct {
	form    presentation.Form
	session models.Session
}

// refreshedMsg reports that startup or logout finished.
type refreshedMsg struct {
	session models.Session
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
