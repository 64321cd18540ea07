// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-profile-client/models"
)

// ClientAuthService owns the session: it logs in against the server and
// keeps the resulting token in the local session store.
type ClientAuthService interface {
	// Login sends the credentials to the server exactly once. On success the
	// token is persisted and the session returned. Any failure is wrapped in
	// [ErrAuthentication] and leaves the store untouched.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout removes the stored token. Logging out without a session is not
	// an error.
	Logout(ctx context.Context) error

	// Token returns the stored token, or store.ErrSessionNotFound.
	Token(ctx context.Context) (string, error)
}

// ClientProfileService performs the authenticated profile calls. The caller
// supplies the token; the service never reads the store.
type ClientProfileService interface {
	// Fetch returns the server's current profile. Errors wrap [ErrProfileFetch].
	Fetch(ctx context.Context, token string) (models.UserProfile, error)

	// Update sends the edit. Errors wrap [ErrProfileUpdate].
	Update(ctx context.Context, token string, edit models.ProfileEdit) (models.UpdateResult, error)

	// UploadAvatar sends the image. Errors wrap [ErrAvatarUpload].
	UploadAvatar(ctx context.Context, token string, file models.AvatarFile) (models.UploadResult, error)
}

// ProfileRenderer displays a fetched profile. defaultAvatar is shown when
// the profile has no avatar.
type ProfileRenderer interface {
	ApplyProfile(profile models.UserProfile, defaultAvatar string)
}

// ClientProfileSyncService re-fetches the authoritative profile and pushes it
// to a renderer.
type ClientProfileSyncService interface {
	// Refresh reads the stored token and, when present, fetches the profile
	// and applies it to renderer. Without a token nothing happens and no
	// network call is made. Fetch failures are logged, never returned.
	Refresh(ctx context.Context, renderer ProfileRenderer)
}
