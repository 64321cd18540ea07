// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every request sent through it carries an X-Request-ID header; a value set
// explicitly on the request is left untouched.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
// Each call returns an independent client with its own configuration,
// connection pool, and state.
func NewHTTPClient() *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New()
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, ids.Generate())
		}
		return nil
	})

	return &HTTPClient{Client: client}
}
