// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business layer of the trail service: trail
// operations over the repository, credential verification, and build
// information.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-trail-service/internal/adapter"
	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/store"
	"github.com/MKhiriev/go-trail-service/models"
)

type Services struct {
	TrailService        TrailService
	VerificationService VerificationService
	AppInfoService      AppInfoService
}

func NewServices(
	storages *store.Storages,
	verifier adapter.AuthVerifier,
	cfg config.App,
	buildInfo models.AppBuildInfo,
	m *metrics.Manager,
	logger *logger.Logger,
) (*Services, error) {
	trailService, err := NewTrailService(storages.TrailRepository, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating trail service: %w", err)
	}

	verificationService, err := NewVerificationService(verifier, cfg, m, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating verification service: %w", err)
	}

	return &Services{
		TrailService:        trailService,
		VerificationService: verificationService,
		AppInfoService:      NewAppInfoService(cfg, buildInfo, logger),
	}, nil
}
