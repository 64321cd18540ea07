// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetTokenQuery(t *testing.T) {
	query, args, err := buildGetTokenQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select value from session")
	assert.Contains(t, q, "where key = ?")
	assert.Equal(t, []any{tokenKey}, args)
}

func Test_buildSaveTokenQuery(t *testing.T) {
	query, args, err := buildSaveTokenQuery("abc")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into session (key,value,updated_at)")
	assert.Contains(t, q, "values (?,?,current_timestamp)")
	assert.Contains(t, q, "on conflict(key) do update")
	// sqlite placeholders only
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{tokenKey, "abc"}, args)
}

func Test_buildDeleteTokenQuery(t *testing.T) {
	query, args, err := buildDeleteTokenQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "delete from session")
	assert.Contains(t, q, "where key = ?")
	assert.Equal(t, []any{tokenKey}, args)
}
