// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/utils"
	"github.com/MKhiriev/go-trail-service/models"
)

type httpAuthAdapter struct {
	client  *utils.HTTPClient
	authURL string

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the HTTP implementation of [AuthVerifier].
// Credentials are POSTed as JSON to cfg.AuthURL; every call is bounded by
// cfg.AuthTimeout.
//
// Returns an error if cfg.AuthURL is not an absolute http(s) URL.
func NewHTTPAuthAdapter(cfg config.Adapter, log *logger.Logger) (AuthVerifier, error) {
	authURL, err := normalizeAuthURL(cfg.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthURL, err)
	}

	return &httpAuthAdapter{
		client:  utils.NewHTTPClient(cfg.AuthTimeout),
		authURL: authURL,
		logger:  log,
	}, nil
}

func normalizeAuthURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("address must include http(s) scheme and host")
	}

	return u.String(), nil
}

// Verify implements [AuthVerifier]. Only an exact 200 counts as verified;
// 201, 204 and every other status do not.
func (a *httpAuthAdapter) Verify(ctx context.Context, email, password string) bool {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Email: email, Password: password}).
		Post(a.authURL)
	if err != nil {
		a.logger.Warn().Err(fmt.Errorf("%w: %w", ErrAuthUnavailable, err)).Msg("auth verification call failed")
		return false
	}

	if resp.StatusCode() != http.StatusOK {
		a.logger.Info().
			Err(ErrAuthRejected).
			Int("status", resp.StatusCode()).
			Msg("auth service did not verify credentials")
		return false
	}

	return true
}
