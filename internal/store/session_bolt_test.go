// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBoltStore(t *testing.T) (*BoltSessionStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.bolt")

	s, err := NewBoltSessionStore(path)
	require.NoError(t, err)
	return s, path
}

func TestBoltSessionStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := createTestBoltStore(t)
	defer s.Close()

	_, err := s.GetToken(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, s.SaveToken(ctx, "abc"))
	token, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.SaveToken(ctx, "xyz"))
	token, err = s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	require.NoError(t, s.DeleteToken(ctx))
	_, err = s.GetToken(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBoltSessionStore_DeleteAbsentIsNoError(t *testing.T) {
	s, _ := createTestBoltStore(t)
	defer s.Close()

	assert.NoError(t, s.DeleteToken(context.Background()))
}

func TestBoltSessionStore_EmptyTokenIsAbsent(t *testing.T) {
	ctx := context.Background()
	s, _ := createTestBoltStore(t)
	defer s.Close()

	require.NoError(t, s.SaveToken(ctx, ""))

	_, err := s.GetToken(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBoltSessionStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	s, path := createTestBoltStore(t)
	require.NoError(t, s.SaveToken(ctx, "abc"))
	require.NoError(t, s.Close())

	storages, err := NewClientStorages(config.ClientStorage{
		Driver: config.DriverBolt,
		DB:     config.ClientDB{DSN: path},
	}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	token, err := storages.Session.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestNewClientStorages_UnknownDriver(t *testing.T) {
	_, err := NewClientStorages(config.ClientStorage{Driver: "redis"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
