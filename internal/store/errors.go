// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrSessionNotFound is returned when no non-empty token is stored.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnknownDriver is returned by [NewClientStorages] for an unsupported
	// storage driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
