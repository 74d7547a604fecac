// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-trail-service/models"
)

type trailRepository struct {
	gateway    Gateway
	procedures *Procedures
}

// NewTrailRepository returns a [TrailRepository] calling procedures through
// gateway.
func NewTrailRepository(gateway Gateway, procedures *Procedures) TrailRepository {
	return &trailRepository{gateway: gateway, procedures: procedures}
}

func (r *trailRepository) GetAll(ctx context.Context) ([]models.Row, error) {
	stmt, err := r.procedures.GetAllTrails()
	if err != nil {
		return nil, err
	}
	return r.gateway.Execute(ctx, stmt, true)
}

func (r *trailRepository) GetByID(ctx context.Context, id int64) ([]models.Row, error) {
	stmt, err := r.procedures.GetTrailByID(id)
	if err != nil {
		return nil, err
	}
	return r.gateway.Execute(ctx, stmt, true)
}

func (r *trailRepository) Create(ctx context.Context, trail models.TrailRequest) error {
	stmt, err := r.procedures.CreateTrail(trail)
	if err != nil {
		return err
	}
	_, err = r.gateway.Execute(ctx, stmt, false)
	return err
}

func (r *trailRepository) Update(ctx context.Context, id int64, trail models.TrailRequest) error {
	stmt, err := r.procedures.UpdateTrail(id, trail)
	if err != nil {
		return err
	}
	_, err = r.gateway.Execute(ctx, stmt, false)
	return err
}

func (r *trailRepository) Delete(ctx context.Context, id int64) error {
	stmt, err := r.procedures.DeleteTrail(id)
	if err != nil {
		return err
	}
	_, err = r.gateway.Execute(ctx, stmt, false)
	return err
}
