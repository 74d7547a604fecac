// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/service"
	"github.com/MKhiriev/go-trail-service/internal/utils"
)

type Handler struct {
	services *service.Services

	// metrics is nil when SERVER_METRICS_ENABLED is off
	metrics        *metrics.Manager
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
