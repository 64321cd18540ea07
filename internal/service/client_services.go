// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's business operations: logging in,
// fetching and editing the profile, uploading an avatar, and refreshing the
// displayed profile. It sits between the UI-agnostic bridge and the
// transport/storage layers.
package service

import (
	"github.com/MKhiriev/go-profile-client/internal/adapter"
	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/store"
)

type ClientServices struct {
	AuthService        ClientAuthService
	ProfileService     ClientProfileService
	ProfileSyncService ClientProfileSyncService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, appCfg config.ClientApp) *ClientServices {
	profileSvc := NewClientProfileService(serverAdapter)

	return &ClientServices{
		AuthService:        NewClientAuthService(storages.Session, serverAdapter),
		ProfileService:     profileSvc,
		ProfileSyncService: NewClientProfileSyncService(storages.Session, profileSvc, appCfg.DefaultAvatar),
	}
}
