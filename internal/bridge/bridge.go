// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge connects user actions to the service layer and writes the
// outcome to a presentation.Surface.
//
// Bridge operations never return errors. A failed operation writes one
// generic message to the surface's error target, logs the cause, and leaves
// the displayed profile as it was.
package bridge

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/presentation"
	"github.com/MKhiriev/go-profile-client/internal/service"
	"github.com/MKhiriev/go-profile-client/internal/store"
	"github.com/MKhiriev/go-profile-client/models"
)

type Bridge struct {
	auth     service.ClientAuthService
	profiles service.ClientProfileService
	sync     service.ClientProfileSyncService

	surface       *presentation.Surface
	defaultAvatar string
	logger        *logger.Logger

	mu     sync.Mutex
	states map[presentation.Form]presentation.FormState
}

func New(services *service.ClientServices, surface *presentation.Surface, defaultAvatar string, log *logger.Logger) *Bridge {
	return &Bridge{
		auth:          services.AuthService,
		profiles:      services.ProfileService,
		sync:          services.ProfileSyncService,
		surface:       surface,
		defaultAvatar: defaultAvatar,
		logger:        log,
		states:        make(map[presentation.Form]presentation.FormState, 3),
	}
}

// Start renders the stored session's profile, if any.
func (b *Bridge) Start(ctx context.Context) {
	b.sync.Refresh(b.withLogger(ctx), b.surface)
}

// SubmitLogin logs in, then fetches and renders the profile directly.
func (b *Bridge) SubmitLogin(ctx context.Context, creds models.Credentials) {
	ctx = b.withLogger(ctx)
	if !b.begin(presentation.FormLogin) {
		return
	}
	defer b.end(presentation.FormLogin)

	session, err := b.auth.Login(ctx, creds)
	if err != nil {
		b.fail(ctx, presentation.FormLogin, app.MsgLoginFailed, err)
		return
	}

	profile, err := b.profiles.Fetch(ctx, session.Token)
	if err != nil {
		b.fail(ctx, presentation.FormLogin, app.MsgLoginFailed, err)
		return
	}

	b.surface.ApplyProfile(profile, b.defaultAvatar)
}

// SubmitEdit sends the edit and refreshes the profile. Without a stored
// session it does nothing.
func (b *Bridge) SubmitEdit(ctx context.Context, edit models.ProfileEdit) {
	ctx = b.withLogger(ctx)
	token, ok := b.token(ctx)
	if !ok {
		return
	}
	if !b.begin(presentation.FormEdit) {
		return
	}
	defer b.end(presentation.FormEdit)

	if _, err := b.profiles.Update(ctx, token, edit); err != nil {
		b.fail(ctx, presentation.FormEdit, app.MsgProfileUpdateFailed, err)
		return
	}

	b.sync.Refresh(ctx, b.surface)
}

// SubmitAvatar uploads file and refreshes the profile. Without a stored
// session or a selected file it does nothing.
func (b *Bridge) SubmitAvatar(ctx context.Context, file *models.AvatarFile) {
	ctx = b.withLogger(ctx)
	token, ok := b.token(ctx)
	if !ok {
		return
	}
	if file == nil {
		return
	}
	if !b.begin(presentation.FormAvatar) {
		return
	}
	defer b.end(presentation.FormAvatar)

	if _, err := b.profiles.UploadAvatar(ctx, token, *file); err != nil {
		b.fail(ctx, presentation.FormAvatar, app.MsgAvatarUploadFailed, err)
		return
	}

	b.sync.Refresh(ctx, b.surface)
}

// Logout forgets the stored session and blanks the displayed profile.
func (b *Bridge) Logout(ctx context.Context) {
	ctx = b.withLogger(ctx)
	if err := b.auth.Logout(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "Bridge.Logout").Msg("failed to delete session")
	}
	b.surface.ClearProfile()
}

// State reports whether form has a request in flight.
func (b *Bridge) State(form presentation.Form) presentation.FormState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states[form]
}

// begin moves form to Submitting. It refuses when form is already
// submitting, since its submit control is disabled.
func (b *Bridge) begin(form presentation.Form) bool {
	b.mu.Lock()
	if b.states[form] == presentation.Submitting {
		b.mu.Unlock()
		return false
	}
	b.states[form] = presentation.Submitting
	b.mu.Unlock()

	b.surface.SetBusy(form, true)
	return true
}

func (b *Bridge) end(form presentation.Form) {
	b.mu.Lock()
	b.states[form] = presentation.Idle
	b.mu.Unlock()

	b.surface.SetBusy(form, false)
}

func (b *Bridge) token(ctx context.Context) (string, bool) {
	token, err := b.auth.Token(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "Bridge.token").Msg("failed to read session token")
		}
		return "", false
	}
	return token, true
}

func (b *Bridge) fail(ctx context.Context, form presentation.Form, message string, err error) {
	logger.FromContext(ctx).Err(err).
		Str("func", "Bridge.fail").
		Stringer("form", form).
		Bool("session_rejected", service.IsSessionRejected(err)).
		Msg(message)
	b.surface.ShowError(message)
}

func (b *Bridge) withLogger(ctx context.Context) context.Context {
	if b.logger == nil {
		return ctx
	}
	return b.logger.WithContext(ctx)
}
