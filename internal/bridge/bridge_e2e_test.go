// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-client/internal/adapter"
	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/config"
	handlerhttp "github.com/MKhiriev/go-profile-client/internal/handler/http"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/presentation"
	"github.com/MKhiriev/go-profile-client/internal/service"
	"github.com/MKhiriev/go-profile-client/internal/store"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// e2eClient wires real services, store, and adapter to a running server.
type e2eClient struct {
	bridge   *Bridge
	storages *store.ClientStorages
	surface  *testSurface
}

func newE2EClient(t *testing.T, serverURL, driver string) *e2eClient {
	t.Helper()

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	storages, err := store.NewClientStorages(config.ClientStorage{
		Driver: driver,
		DB:     config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services := service.NewClientServices(storages, serverAdapter, config.ClientApp{DefaultAvatar: testDefaultAvatar})
	ts := newTestSurface()

	return &e2eClient{
		bridge:   New(services, ts.surface, testDefaultAvatar, logger.Nop()),
		storages: storages,
		surface:  ts,
	}
}

// countRequests wraps h and counts the requests that reach it.
func countRequests(h http.Handler, n *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.Add(1)
		h.ServeHTTP(w, r)
	})
}

func newStubServer(t *testing.T, normalizeEmail bool, requests *atomic.Int32) *httptest.Server {
	t.Helper()

	profiles := stubserver.NewService(config.StubServerConfig{
		TokenSignKey:   "e2e-key",
		TokenIssuer:    "e2e",
		TokenDuration:  time.Hour,
		NormalizeEmail: normalizeEmail,
	})
	require.NoError(t, profiles.AddUser("alice", "pw", "a@x.com"))

	srv := httptest.NewServer(countRequests(handlerhttp.NewHandler(profiles, logger.Nop()).Init(), requests))
	t.Cleanup(srv.Close)
	return srv
}

// ── Fixed-token scenario ──

func TestE2E_LoginStoresTokenAndRendersProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	})
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username":"alice","email":"a@x.com"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newE2EClient(t, srv.URL, config.DriverSQLite)

	c.bridge.SubmitLogin(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	token, err := c.storages.Session.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	assert.Equal(t, "alice", c.surface.username.Get())
	assert.Equal(t, "a@x.com", c.surface.email.Get())
	assert.Equal(t, testDefaultAvatar, c.surface.avatar.Get())
	assert.Empty(t, c.surface.errorCell.Get())
}

// ── Against the stub server ──

func TestE2E_StubServer(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverBolt} {
		t.Run(driver, func(t *testing.T) {
			var requests atomic.Int32
			srv := newStubServer(t, false, &requests)
			c := newE2EClient(t, srv.URL, driver)
			ctx := context.Background()

			// no session yet: startup refresh stays offline
			c.bridge.Start(ctx)
			assert.Zero(t, requests.Load())
			assert.Empty(t, c.surface.username.Get())

			// wrong password
			c.bridge.SubmitLogin(ctx, models.Credentials{Username: "alice", Password: "nope"})
			assert.Equal(t, app.MsgLoginFailed, c.surface.errorCell.Get())
			_, err := c.storages.Session.GetToken(ctx)
			assert.ErrorIs(t, err, store.ErrSessionNotFound)

			c.bridge.SubmitLogin(ctx, models.Credentials{Username: "alice", Password: "pw"})
			assert.Equal(t, "alice", c.surface.username.Get())
			assert.Equal(t, "a@x.com", c.surface.email.Get())
			assert.Equal(t, testDefaultAvatar, c.surface.avatar.Get())

			token, err := c.storages.Session.GetToken(ctx)
			require.NoError(t, err)
			_, ok := models.Session{Token: token}.ExpiresAt()
			assert.True(t, ok)

			c.bridge.SubmitEdit(ctx, models.ProfileEdit{Username: "alice2", Email: "b@x.com"})
			assert.Equal(t, "alice2", c.surface.username.Get())
			assert.Equal(t, "b@x.com", c.surface.emailInput.Get())

			c.bridge.SubmitAvatar(ctx, &models.AvatarFile{Name: "me.png", Content: []byte("\x89PNG\r\n\x1a\nimg")})
			assert.True(t, strings.HasPrefix(c.surface.avatar.Get(), srv.URL+stubserver.AvatarPathPrefix), c.surface.avatar.Get())
			assert.Equal(t, presentation.Idle, c.bridge.State(presentation.FormAvatar))

			c.bridge.Logout(ctx)
			assert.Empty(t, c.surface.username.Get())
			_, err = c.storages.Session.GetToken(ctx)
			assert.ErrorIs(t, err, store.ErrSessionNotFound)

			// without a session edits are dropped before reaching the network
			before := requests.Load()
			c.bridge.SubmitEdit(ctx, models.ProfileEdit{Username: "x"})
			c.bridge.SubmitAvatar(ctx, &models.AvatarFile{Name: "a.png", Content: []byte("a")})
			assert.Equal(t, before, requests.Load())
		})
	}
}

func TestE2E_SessionSurvivesRestart(t *testing.T) {
	var requests atomic.Int32
	srv := newStubServer(t, false, &requests)
	dsn := filepath.Join(t.TempDir(), "session.db")
	cfg := config.ClientStorage{Driver: config.DriverSQLite, DB: config.ClientDB{DSN: dsn}}

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	start := func() (*Bridge, *testSurface, *store.ClientStorages) {
		storages, err := store.NewClientStorages(cfg, logger.Nop())
		require.NoError(t, err)
		ts := newTestSurface()
		services := service.NewClientServices(storages, serverAdapter, config.ClientApp{DefaultAvatar: testDefaultAvatar})
		return New(services, ts.surface, testDefaultAvatar, logger.Nop()), ts, storages
	}

	first, _, storages := start()
	first.SubmitLogin(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, storages.Close())

	second, ts, storages := start()
	defer storages.Close()
	second.Start(context.Background())

	assert.Equal(t, "alice", ts.username.Get())
	assert.Equal(t, "a@x.com", ts.email.Get())
}

func TestE2E_EmailNormalizedByServerIsDisplayed(t *testing.T) {
	var requests atomic.Int32
	srv := newStubServer(t, true, &requests)
	c := newE2EClient(t, srv.URL, config.DriverBolt)
	ctx := context.Background()

	c.bridge.SubmitLogin(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.Equal(t, "alice", c.surface.username.Get())

	for _, input := range []string{"  Bob@Example.COM", "CAROL@X.COM ", "dave@x.com"} {
		c.bridge.SubmitEdit(ctx, models.ProfileEdit{Username: "alice", Email: input})

		want := strings.ToLower(strings.TrimSpace(input))
		assert.Equal(t, want, c.surface.email.Get())
		assert.Equal(t, want, c.surface.emailInput.Get())
	}
	assert.Empty(t, c.surface.errorCell.Get())
}

func TestE2E_ExpiredSessionKeepsDisplay(t *testing.T) {
	var requests atomic.Int32
	srv := newStubServer(t, false, &requests)
	c := newE2EClient(t, srv.URL, config.DriverSQLite)
	ctx := context.Background()

	c.bridge.SubmitLogin(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, c.storages.Session.SaveToken(ctx, "revoked"))

	c.bridge.SubmitEdit(ctx, models.ProfileEdit{Username: "mallory", Email: "m@x.com"})

	assert.Equal(t, app.MsgProfileUpdateFailed, c.surface.errorCell.Get())
	assert.Equal(t, "alice", c.surface.username.Get())
	assert.Equal(t, presentation.Idle, c.bridge.State(presentation.FormEdit))
}
