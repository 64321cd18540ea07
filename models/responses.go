// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// UpdateResult is the body returned by a successful PUT /user. Its shape is
// defined by the server; the client keeps the optional human-readable
// message and the raw data member untouched.
type UpdateResult struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UploadResult is the body returned by a successful POST /avatar. Like
// [UpdateResult] it is opaque beyond being a JSON object.
type UploadResult struct {
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
