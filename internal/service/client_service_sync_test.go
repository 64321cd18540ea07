// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-profile-client/internal/adapter"
	"github.com/MKhiriev/go-profile-client/internal/mock"
	"github.com/MKhiriev/go-profile-client/internal/store"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testDefaultAvatar = "/default.png"

type recordingRenderer struct {
	calls         int
	profile       models.UserProfile
	defaultAvatar string
}

func (r *recordingRenderer) ApplyProfile(profile models.UserProfile, defaultAvatar string) {
	r.calls++
	r.profile = profile
	r.defaultAvatar = defaultAvatar
}

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (ClientProfileSyncService, *mock.MockServerAdapter, *mock.MockSessionStore) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockSessionStore(ctrl)

	svc := NewClientProfileSyncService(mockStore, NewClientProfileService(mockAdapter), testDefaultAvatar)
	return svc, mockAdapter, mockStore
}

func TestClientProfileSyncService_Refresh_AppliesProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	profile := models.UserProfile{Username: "alice", Email: "a@x.com"}

	gomock.InOrder(
		mockStore.EXPECT().GetToken(ctx).Return("abc", nil),
		mockAdapter.EXPECT().GetUser(ctx, "abc").Return(profile, nil),
	)

	r := &recordingRenderer{}
	svc.Refresh(ctx, r)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, profile, r.profile)
	assert.Equal(t, testDefaultAvatar, r.defaultAvatar)
}

func TestClientProfileSyncService_Refresh_NoToken_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore := newTestSyncSvc(t, ctrl)

	mockStore.EXPECT().GetToken(gomock.Any()).Return("", store.ErrSessionNotFound)
	mockAdapter.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)

	r := &recordingRenderer{}
	svc.Refresh(context.Background(), r)

	assert.Zero(t, r.calls)
}

func TestClientProfileSyncService_Refresh_StoreError_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore := newTestSyncSvc(t, ctrl)

	mockStore.EXPECT().GetToken(gomock.Any()).Return("", errors.New("locked"))
	mockAdapter.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)

	r := &recordingRenderer{}
	svc.Refresh(context.Background(), r)

	assert.Zero(t, r.calls)
}

func TestClientProfileSyncService_Refresh_FetchErrorSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockStore := newTestSyncSvc(t, ctrl)

	mockStore.EXPECT().GetToken(gomock.Any()).Return("stale", nil)
	mockAdapter.EXPECT().GetUser(gomock.Any(), "stale").Return(models.UserProfile{}, adapter.ErrUnauthorized)

	r := &recordingRenderer{}
	assert.NotPanics(t, func() { svc.Refresh(context.Background(), r) })
	assert.Zero(t, r.calls)
}
