// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	var got models.Credentials
	h := newTestHandler(&mockProfileService{t: t,
		loginFn: func(_ context.Context, creds models.Credentials) (models.Session, error) {
			got = creds
			return models.Session{Token: "abc"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Credentials{Username: "alice", Password: "pw"}, got)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, "abc", session.Token)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockProfileService{t: t})

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeMessage(t, rec))
}

func TestLogin_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid credentials", stubserver.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{"invalid data", stubserver.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockProfileService{t: t,
				loginFn: func(context.Context, models.Credentials) (models.Session, error) {
					return models.Session{}, tt.err
				},
			})

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"x"}`))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
		})
	}
}
