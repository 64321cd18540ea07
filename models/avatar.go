// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"os"
	"path/filepath"
)

// AvatarFile is the image selected for upload. It is sent as the "avatar"
// multipart field and never stored locally.
type AvatarFile struct {
	// Name is the base file name reported in the multipart header.
	Name string

	// Content is the raw file content.
	Content []byte
}

// ReadAvatarFile loads the file at path into an [AvatarFile].
func ReadAvatarFile(path string) (*AvatarFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read avatar file: %w", err)
	}

	return &AvatarFile{Name: filepath.Base(path), Content: content}, nil
}
