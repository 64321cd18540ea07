// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the login form payload sent to POST /login.
// It only lives for the duration of a single login call and is never
// persisted.
type Credentials struct {
	// Username is passed through to the server as typed, empty strings
	// included.
	Username string `json:"username"`

	// Password is the plaintext password. It must never be logged.
	Password string `json:"password"`
}

// UserProfile is the server's authoritative view of the current user as
// returned by GET /user. The client keeps it only long enough to render it.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`

	// Avatar is the avatar URL. An empty value means the user has no avatar
	// and the default image is shown instead.
	Avatar string `json:"avatar,omitempty"`
}

// HasAvatar reports whether the profile carries a non-empty avatar URL.
func (u UserProfile) HasAvatar() bool {
	return u.Avatar != ""
}

// ProfileEdit is the write intent sent to PUT /user. It is built from the
// edit form inputs at submit time, whatever they currently contain.
type ProfileEdit struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
