// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-trail-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TrailService exposes the trail operations to the transport layer.
type TrailService interface {
	ListTrails(ctx context.Context) ([]models.Row, error)
	// GetTrail returns the first matching row or ErrTrailNotFound.
	GetTrail(ctx context.Context, id int64) (models.Row, error)
	CreateTrail(ctx context.Context, trail models.TrailRequest) error
	UpdateTrail(ctx context.Context, id int64, trail models.TrailRequest) error
	DeleteTrail(ctx context.Context, id int64) error
}

// VerificationService decides whether a credential pair may perform a
// mutating operation.
type VerificationService interface {
	Verify(ctx context.Context, email, password string) bool
	// PurgeExpired drops expired cache entries and returns how many were
	// removed. It is a no-op when caching is disabled.
	PurgeExpired(ctx context.Context) int
}

type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}
