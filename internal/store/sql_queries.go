// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTable = "session"
	tokenKey     = "token"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetTokenQuery() (string, []any, error) {
	query, args, err := sqlite.
		Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": tokenKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSaveTokenQuery builds an upsert on the primary key.
func buildSaveTokenQuery(token string) (string, []any, error) {
	query, args, err := sqlite.
		Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(tokenKey, token, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTokenQuery() (string, []any, error) {
	query, args, err := sqlite.
		Delete(sessionTable).
		Where(sq.Eq{"key": tokenKey}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
