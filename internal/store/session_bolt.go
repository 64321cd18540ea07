// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var bucketSession = []byte(sessionTable)

// BoltSessionStore is the bbolt-backed [SessionStore].
type BoltSessionStore struct {
	db *bbolt.DB
}

// NewBoltSessionStore opens (or creates) the bbolt file at path and makes
// sure the session bucket exists.
func NewBoltSessionStore(path string) (*BoltSessionStore, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create session bucket: %w", err)
	}

	return &BoltSessionStore{db: db}, nil
}

func (s *BoltSessionStore) GetToken(ctx context.Context) (string, error) {
	var token string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return errors.New("session bucket not found")
		}

		// value is only valid inside the transaction
		token = string(bucket.Get([]byte(tokenKey)))
		return nil
	})
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrSessionNotFound
	}

	return token, nil
}

func (s *BoltSessionStore) SaveToken(ctx context.Context, token string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return errors.New("session bucket not found")
		}

		if err := bucket.Put([]byte(tokenKey), []byte(token)); err != nil {
			return fmt.Errorf("failed to save session token: %w", err)
		}
		return nil
	})
}

func (s *BoltSessionStore) DeleteToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return errors.New("session bucket not found")
		}

		if err := bucket.Delete([]byte(tokenKey)); err != nil {
			return fmt.Errorf("failed to delete session token: %w", err)
		}
		return nil
	})
}

func (s *BoltSessionStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
