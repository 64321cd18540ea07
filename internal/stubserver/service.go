// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stubserver is an in-memory implementation of the profile API the
// client talks to. It backs cmd/stubserver and the end-to-end tests.
//
// Passwords are stored as bcrypt hashes. Sessions are HS256 JWTs whose
// subject is the user's stable ID, so a token survives a username change.
package stubserver

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/utils"
	"github.com/MKhiriev/go-profile-client/models"
	"golang.org/x/crypto/bcrypt"
)

// AvatarPathPrefix is the route under which uploaded avatars are served.
const AvatarPathPrefix = "/avatars/"

type user struct {
	id           string
	username     string
	email        string
	passwordHash []byte
	avatarID     string
}

// Avatar is an uploaded image.
type Avatar struct {
	ContentType string
	Content     []byte
}

type Service struct {
	mu       sync.RWMutex
	users    map[string]*user
	byName   map[string]string
	avatars  map[string]Avatar
	ids      *utils.UUIDGenerator
	bcryptOp int

	signKey        string
	issuer         string
	tokenDuration  time.Duration
	normalizeEmail bool
}

func NewService(cfg config.StubServerConfig) *Service {
	return &Service{
		users:          make(map[string]*user),
		byName:         make(map[string]string),
		avatars:        make(map[string]Avatar),
		ids:            utils.NewUUIDGenerator(),
		bcryptOp:       bcrypt.DefaultCost,
		signKey:        cfg.TokenSignKey,
		issuer:         cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		normalizeEmail: cfg.NormalizeEmail,
	}
}

// AddUser registers a user. The username must be unique.
func (s *Service) AddUser(username, password, email string) error {
	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptOp)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return ErrUsernameTaken
	}

	u := &user{id: s.ids.Generate(), username: username, email: s.email(email), passwordHash: hash}
	s.users[u.id] = u
	s.byName[username] = u.id
	return nil
}

// Login checks the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	s.mu.RLock()
	id, ok := s.byName[creds.Username]
	var hash []byte
	if ok {
		hash = s.users[id].passwordHash
	}
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(s.issuer, id, s.tokenDuration, s.signKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("issue token: %w", err)
	}
	return models.Session{Token: token}, nil
}

// ParseToken verifies token and returns the user ID it was issued for.
func (s *Service) ParseToken(ctx context.Context, token string) (string, error) {
	userID, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return userID, nil
}

// Profile returns the user's profile. Avatar is a server-relative path
// under [AvatarPathPrefix], or empty when none was uploaded.
func (s *Service) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return models.UserProfile{}, ErrUserNotFound
	}

	profile := models.UserProfile{Username: u.username, Email: u.email}
	if u.avatarID != "" {
		profile.Avatar = AvatarPathPrefix + u.avatarID
	}
	return profile, nil
}

// UpdateProfile overwrites username and email. With email normalization on,
// the stored email is trimmed and lower-cased.
func (s *Service) UpdateProfile(ctx context.Context, userID string, edit models.ProfileEdit) error {
	if strings.TrimSpace(edit.Username) == "" {
		return ErrInvalidDataProvided
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	if owner, taken := s.byName[edit.Username]; taken && owner != userID {
		return ErrUsernameTaken
	}

	delete(s.byName, u.username)
	u.username = edit.Username
	u.email = s.email(edit.Email)
	s.byName[u.username] = userID
	return nil
}

// SaveAvatar stores the image and makes it the user's avatar. It returns
// the new avatar path.
func (s *Service) SaveAvatar(ctx context.Context, userID string, avatar Avatar) (string, error) {
	if len(avatar.Content) == 0 {
		return "", ErrInvalidDataProvided
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return "", ErrUserNotFound
	}

	id := s.ids.Generate()
	s.avatars[id] = avatar
	if u.avatarID != "" {
		delete(s.avatars, u.avatarID)
	}
	u.avatarID = id

	return AvatarPathPrefix + id, nil
}

// Avatar returns the image stored under id.
func (s *Service) Avatar(ctx context.Context, id string) (Avatar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	avatar, ok := s.avatars[id]
	if !ok {
		return Avatar{}, ErrAvatarNotFound
	}
	return avatar, nil
}

func (s *Service) email(email string) string {
	if !s.normalizeEmail {
		return email
	}
	return strings.ToLower(strings.TrimSpace(email))
}
