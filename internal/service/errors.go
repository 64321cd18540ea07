// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Operation errors. Each wraps the underlying adapter or store error, so
// both can be matched with [errors.Is].
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrProfileFetch   = errors.New("profile fetch failed")
	ErrProfileUpdate  = errors.New("profile update failed")
	ErrAvatarUpload   = errors.New("avatar upload failed")
)
