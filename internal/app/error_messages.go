// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message strings used by the profile client
// and the stub profile server.
//
// Client Msg* constants are the only failure texts a user ever sees; the
// underlying error detail goes to the log. Server Msg* constants are written
// into HTTP response bodies.
package app

// Client-facing messages.
const (
	// MsgLoginFailed is shown when login or the post-login profile fetch
	// fails for any reason.
	MsgLoginFailed = "Login failed. Please try again."

	// MsgProfileUpdateFailed is shown when PUT /user fails.
	MsgProfileUpdateFailed = "Failed to update profile. Please try again."

	// MsgAvatarUploadFailed is shown when POST /avatar fails.
	MsgAvatarUploadFailed = "Failed to upload avatar. Please try again."
)

// Stub server response messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired, or fails verification.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUserNotFound is returned when a valid token names a user that no
	// longer exists.
	MsgUserNotFound = "user not found"

	// MsgNoAvatarProvided is returned when the multipart request has no
	// "avatar" file part.
	MsgNoAvatarProvided = "no avatar provided"

	// MsgAvatarNotFound is returned by GET /avatars/{id} for unknown ids.
	MsgAvatarNotFound = "avatar not found"

	// MsgProfileUpdated is the message of a successful PUT /user.
	MsgProfileUpdated = "profile updated"

	// MsgAvatarUploaded is the message of a successful POST /avatar.
	MsgAvatarUploaded = "avatar uploaded"
)
