// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the profile client
// and the remote profile API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. [NewHTTPServerAdapter] is the resty-based implementation.
//
// Non-2xx statuses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
// A 2xx body that does not decode is reported as [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-profile-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the four calls the client makes to the profile API.
// Implementations are stateless with respect to the session: the bearer
// token is passed explicitly to every authenticated call.
type ServerAdapter interface {
	// Login sends POST /login with the credentials as JSON and returns the
	// issued session. A 2xx response without a token is reported as
	// [ErrMalformedResponse].
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// GetUser sends GET /user with the bearer token and returns the
	// authoritative profile.
	GetUser(ctx context.Context, token string) (models.UserProfile, error)

	// UpdateUser sends PUT /user with the edit as JSON.
	UpdateUser(ctx context.Context, token string, edit models.ProfileEdit) (models.UpdateResult, error)

	// UploadAvatar sends POST /avatar to the upload base address with the
	// file as the multipart field "avatar".
	UploadAvatar(ctx context.Context, token string, file models.AvatarFile) (models.UploadResult, error)
}
