// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	raw := `{
		"app": {"default_avatar": "none.png", "log_file": "client.log"},
		"storage": {"driver": "bolt", "db": {"dsn": "session.bolt"}},
		"adapter": {"http_address": "http://api", "upload_address": "http://upload", "request_timeout": "10s"},
		"server": {"http_address": "localhost:9000", "token_sign_key": "k", "token_issuer": "i", "token_duration": "1h", "normalize_email": true}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "none.png", cfg.App.DefaultAvatar)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "bolt", cfg.Storage.Driver)
	assert.Equal(t, "session.bolt", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "http://upload", cfg.Adapter.UploadAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Server.TokenDuration)
	assert.True(t, cfg.Server.NormalizeEmail)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"forever"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"2s"`, string(data))
}
