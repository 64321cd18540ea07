// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-profile-client/internal/adapter"
	"github.com/MKhiriev/go-profile-client/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter}
}

func (p *clientProfileService) Fetch(ctx context.Context, token string) (models.UserProfile, error) {
	profile, err := p.adapter.GetUser(ctx, token)
	if err != nil {
		return models.UserProfile{}, mapAdapterError(ErrProfileFetch, err)
	}
	return profile, nil
}

func (p *clientProfileService) Update(ctx context.Context, token string, edit models.ProfileEdit) (models.UpdateResult, error) {
	result, err := p.adapter.UpdateUser(ctx, token, edit)
	if err != nil {
		return models.UpdateResult{}, mapAdapterError(ErrProfileUpdate, err)
	}
	return result, nil
}

func (p *clientProfileService) UploadAvatar(ctx context.Context, token string, file models.AvatarFile) (models.UploadResult, error) {
	result, err := p.adapter.UploadAvatar(ctx, token, file)
	if err != nil {
		return models.UploadResult{}, mapAdapterError(ErrAvatarUpload, err)
	}
	return result, nil
}
