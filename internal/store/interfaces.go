// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-trail-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Gateway executes stored procedure invocations.
type Gateway interface {
	Execute(ctx context.Context, stmt Statement, wantRows bool) ([]models.Row, error)
}

// TrailRepository is the typed access layer over the trail procedures.
//
// GetByID returns an empty slice, not an error, when no row matches.
type TrailRepository interface {
	GetAll(ctx context.Context) ([]models.Row, error)
	GetByID(ctx context.Context, id int64) ([]models.Row, error)
	Create(ctx context.Context, trail models.TrailRequest) error
	Update(ctx context.Context, id int64, trail models.TrailRequest) error
	Delete(ctx context.Context, id int64) error
}
