// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trail-service/internal/adapter"
	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/utils"
)

type verificationService struct {
	verifier adapter.AuthVerifier

	// cache and hasher are nil when caching is disabled
	cache  *verificationCache
	hasher *utils.KeyedHasher

	metrics *metrics.Manager
	logger  *logger.Logger
}

// NewVerificationService wraps verifier. With a positive
// cfg.VerificationCacheTTL, successful verifications are remembered for that
// long under a keyed blake2b digest of the credentials; rejections are never
// cached.
func NewVerificationService(verifier adapter.AuthVerifier, cfg config.App, m *metrics.Manager, logger *logger.Logger) (VerificationService, error) {
	if verifier == nil {
		return nil, ErrNilVerifier
	}

	s := &verificationService{
		verifier: verifier,
		metrics:  m,
		logger:   logger,
	}

	if cfg.VerificationCacheTTL > 0 {
		hasher, err := utils.NewKeyedHasher(cfg.CacheKey)
		if err != nil {
			return nil, fmt.Errorf("error creating verification cache: %w", err)
		}
		s.hasher = hasher
		s.cache = newVerificationCache(cfg.VerificationCacheTTL)
		logger.Info().Dur("ttl", cfg.VerificationCacheTTL).Msg("verification cache enabled")
	}

	return s, nil
}

func (s *verificationService) Verify(ctx context.Context, email, password string) bool {
	var key string
	if s.cache != nil {
		key = s.hasher.HashString(email + ":" + password)
		if s.cache.get(key) {
			s.metrics.ObserveVerification(metrics.VerificationCached)
			return true
		}
	}

	if !s.verifier.Verify(ctx, email, password) {
		s.metrics.ObserveVerification(metrics.VerificationRejected)
		return false
	}
	s.metrics.ObserveVerification(metrics.VerificationVerified)

	if s.cache != nil {
		s.cache.put(key)
		s.metrics.SetCacheEntries(s.cache.len())
	}

	return true
}

func (s *verificationService) PurgeExpired(ctx context.Context) int {
	if s.cache == nil {
		return 0
	}

	removed := s.cache.purge()
	s.metrics.SetCacheEntries(s.cache.len())
	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("purged expired verification cache entries")
	}
	return removed
}
