// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/store"
	"github.com/MKhiriev/go-trail-service/models"
)

type trailService struct {
	trailRepository store.TrailRepository

	logger *logger.Logger
}

func NewTrailService(trailRepository store.TrailRepository, logger *logger.Logger) (TrailService, error) {
	if trailRepository == nil {
		return nil, ErrNilRepository
	}

	return &trailService{
		trailRepository: trailRepository,
		logger:          logger,
	}, nil
}

func (s *trailService) ListTrails(ctx context.Context) ([]models.Row, error) {
	rows, err := s.trailRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trails: %w", err)
	}
	if rows == nil {
		rows = []models.Row{}
	}
	return rows, nil
}

// GetTrail returns the first row only; a procedure yielding several rows for
// one id is not treated as an error.
func (s *trailService) GetTrail(ctx context.Context, id int64) (models.Row, error) {
	rows, err := s.trailRepository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trail %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, ErrTrailNotFound
	}
	if len(rows) > 1 {
		s.logger.Warn().Int64("trail_id", id).Int("rows", len(rows)).Msg("more than one row for trail id")
	}
	return rows[0], nil
}

func (s *trailService) CreateTrail(ctx context.Context, trail models.TrailRequest) error {
	if err := s.trailRepository.Create(ctx, trail); err != nil {
		return fmt.Errorf("create trail: %w", err)
	}
	return nil
}

// UpdateTrail does not check that the trail exists or who owns it.
func (s *trailService) UpdateTrail(ctx context.Context, id int64, trail models.TrailRequest) error {
	if err := s.trailRepository.Update(ctx, id, trail); err != nil {
		return fmt.Errorf("update trail %d: %w", id, err)
	}
	return nil
}

// DeleteTrail does not check that the trail exists or who owns it, so
// deleting twice succeeds twice.
func (s *trailService) DeleteTrail(ctx context.Context, id int64) error {
	if err := s.trailRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete trail %d: %w", id, err)
	}
	return nil
}
