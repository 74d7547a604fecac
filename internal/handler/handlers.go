// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler aggregates the transport handlers of the trail service.
package handler

import (
	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/handler/http"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Manager, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}, nil
}
