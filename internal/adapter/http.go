// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/utils"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/go-resty/resty/v2"
)

// AvatarFieldName is the multipart field that carries the uploaded image.
const AvatarFieldName = "avatar"

type httpServerAdapter struct {
	api    *utils.HTTPClient
	upload *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. Login and profile calls go to adapterCfg.HTTPAddress,
// avatar uploads to adapterCfg.UploadAddress (or HTTPAddress when empty).
//
// Returns an error if an address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	apiURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	uploadAddress := adapterCfg.UploadAddress
	if strings.TrimSpace(uploadAddress) == "" {
		uploadAddress = adapterCfg.HTTPAddress
	}
	uploadURL, err := normalizeBaseURL(uploadAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter upload address: %w", err)
	}

	api := utils.NewHTTPClient()
	api.SetBaseURL(apiURL).SetTimeout(adapterCfg.RequestTimeout)

	upload := utils.NewHTTPClient()
	upload.SetBaseURL(uploadURL).SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{api: api, upload: upload, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.api.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = decodeBody(resp, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode login response: %w", err)
	}
	session.Token = strings.TrimSpace(session.Token)
	if session.IsEmpty() {
		return models.Session{}, fmt.Errorf("%w: login response has no token", ErrMalformedResponse)
	}

	return session, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, token string) (models.UserProfile, error) {
	resp, err := authedRequest(ctx, h.api, token).Get("/user")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = decodeBody(resp, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode user response: %w", err)
	}

	return profile, nil
}

// UpdateUser implements [ServerAdapter]. An empty 2xx body yields a zero
// [models.UpdateResult]; a body that is not JSON is [ErrMalformedResponse].
func (h *httpServerAdapter) UpdateUser(ctx context.Context, token string, edit models.ProfileEdit) (models.UpdateResult, error) {
	resp, err := authedRequest(ctx, h.api, token).
		SetHeader("Content-Type", "application/json").
		SetBody(edit).
		Put("/user")
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UpdateResult{}, err
	}

	message, data, err := decodeResult(resp)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("decode update response: %w", err)
	}

	return models.UpdateResult{Message: message, Data: data}, nil
}

// UploadAvatar implements [ServerAdapter]. An empty 2xx body yields a zero
// [models.UploadResult].
func (h *httpServerAdapter) UploadAvatar(ctx context.Context, token string, file models.AvatarFile) (models.UploadResult, error) {
	resp, err := authedRequest(ctx, h.upload, token).
		SetFileReader(AvatarFieldName, file.Name, bytes.NewReader(file.Content)).
		Post("/avatar")
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload avatar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResult{}, err
	}

	message, data, err := decodeResult(resp)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("decode upload response: %w", err)
	}

	return models.UploadResult{Message: message, Data: data}, nil
}

func authedRequest(ctx context.Context, client *utils.HTTPClient, token string) *resty.Request {
	req := client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// decodeResult reads an opaque update/upload body. An empty body is a valid
// empty result; any valid JSON that is not an object with a string "message"
// is kept whole as data.
func decodeResult(resp *resty.Response) (string, json.RawMessage, error) {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return "", nil, nil
	}
	if !json.Valid(body) {
		return "", nil, fmt.Errorf("%w: invalid JSON body", ErrMalformedResponse)
	}

	var obj struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return "", json.RawMessage(body), nil
	}
	return obj.Message, obj.Data, nil
}
