// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/internal/utils"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

// mockProfileService implements ProfileService. Unset function fields make
// the corresponding method fail the test.
type mockProfileService struct {
	t *testing.T

	loginFn         func(ctx context.Context, creds models.Credentials) (models.Session, error)
	parseTokenFn    func(ctx context.Context, token string) (string, error)
	profileFn       func(ctx context.Context, userID string) (models.UserProfile, error)
	updateProfileFn func(ctx context.Context, userID string, edit models.ProfileEdit) error
	saveAvatarFn    func(ctx context.Context, userID string, avatar stubserver.Avatar) (string, error)
	avatarFn        func(ctx context.Context, id string) (stubserver.Avatar, error)
}

func (m *mockProfileService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	require.NotNil(m.t, m.loginFn, "unexpected Login call")
	return m.loginFn(ctx, creds)
}

func (m *mockProfileService) ParseToken(ctx context.Context, token string) (string, error) {
	require.NotNil(m.t, m.parseTokenFn, "unexpected ParseToken call")
	return m.parseTokenFn(ctx, token)
}

func (m *mockProfileService) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	require.NotNil(m.t, m.profileFn, "unexpected Profile call")
	return m.profileFn(ctx, userID)
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID string, edit models.ProfileEdit) error {
	require.NotNil(m.t, m.updateProfileFn, "unexpected UpdateProfile call")
	return m.updateProfileFn(ctx, userID, edit)
}

func (m *mockProfileService) SaveAvatar(ctx context.Context, userID string, avatar stubserver.Avatar) (string, error) {
	require.NotNil(m.t, m.saveAvatarFn, "unexpected SaveAvatar call")
	return m.saveAvatarFn(ctx, userID, avatar)
}

func (m *mockProfileService) Avatar(ctx context.Context, id string) (stubserver.Avatar, error) {
	require.NotNil(m.t, m.avatarFn, "unexpected Avatar call")
	return m.avatarFn(ctx, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(profiles ProfileService) *Handler {
	return NewHandler(profiles, logger.Nop())
}

// withUserID puts an authenticated user ID into the request context the way
// the auth middleware does.
func withUserID(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body utils.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}
