// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewVerificationService_NilVerifier(t *testing.T) {
	svc, err := NewVerificationService(nil, config.App{}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNilVerifier)
}

func TestVerificationService_NoCache_AlwaysDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockAuthVerifier(ctrl)

	svc, err := NewVerificationService(verifier, config.App{}, nil, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	gomock.InOrder(
		verifier.EXPECT().Verify(ctx, "walker@example.com", "pw").Return(true),
		verifier.EXPECT().Verify(ctx, "walker@example.com", "pw").Return(true),
		verifier.EXPECT().Verify(ctx, "walker@example.com", "bad").Return(false),
	)

	assert.True(t, svc.Verify(ctx, "walker@example.com", "pw"))
	assert.True(t, svc.Verify(ctx, "walker@example.com", "pw"))
	assert.False(t, svc.Verify(ctx, "walker@example.com", "bad"))
	assert.Zero(t, svc.PurgeExpired(ctx))
}

func TestVerificationService_Cache_RemembersPositiveResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockAuthVerifier(ctrl)
	m := metrics.NewManager(metrics.WithRegistry(prometheus.NewRegistry()))

	svc, err := NewVerificationService(verifier, config.App{VerificationCacheTTL: time.Minute, CacheKey: "k"}, m, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	verifier.EXPECT().Verify(ctx, "walker@example.com", "pw").Return(true).Times(1)

	assert.True(t, svc.Verify(ctx, "walker@example.com", "pw"))
	assert.True(t, svc.Verify(ctx, "walker@example.com", "pw"), "second call must be served from cache")
}

func TestVerificationService_Cache_NeverRemembersRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockAuthVerifier(ctrl)

	svc, err := NewVerificationService(verifier, config.App{VerificationCacheTTL: time.Minute}, nil, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	verifier.EXPECT().Verify(ctx, "walker@example.com", "bad").Return(false).Times(2)

	assert.False(t, svc.Verify(ctx, "walker@example.com", "bad"))
	assert.False(t, svc.Verify(ctx, "walker@example.com", "bad"))
}

func TestVerificationService_Cache_DistinguishesPasswords(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockAuthVerifier(ctrl)

	svc, err := NewVerificationService(verifier, config.App{VerificationCacheTTL: time.Minute}, nil, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	gomock.InOrder(
		verifier.EXPECT().Verify(ctx, "walker@example.com", "pw").Return(true),
		verifier.EXPECT().Verify(ctx, "walker@example.com", "other").Return(false),
	)

	assert.True(t, svc.Verify(ctx, "walker@example.com", "pw"))
	assert.False(t, svc.Verify(ctx, "walker@example.com", "other"))
}

func TestVerificationService_Cache_ExpiresAndPurges(t *testing.T) {
	ctrl := gomock.NewController(t)
	verifier := mock.NewMockAuthVerifier(ctrl)

	svc, err := NewVerificationService(verifier, config.App{VerificationCacheTTL: time.Minute}, nil, logger.Nop())
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := svc.(*verificationService).cache
	cache.now = func() time.Time { return now }

	ctx := context.Background()
	verifier.EXPECT().Verify(ctx, "a@example.com", "pw").Return(true).Times(2)
	verifier.EXPECT().Verify(ctx, "b@example.com", "pw").Return(true).Times(1)

	assert.True(t, svc.Verify(ctx, "a@example.com", "pw"))
	now = now.Add(30 * time.Second)
	assert.True(t, svc.Verify(ctx, "b@example.com", "pw"))

	now = now.Add(45 * time.Second)
	assert.Equal(t, 1, svc.PurgeExpired(ctx), "only the first entry has expired")
	assert.Equal(t, 1, cache.len())

	// expired entry goes back to the remote verifier
	assert.True(t, svc.Verify(ctx, "a@example.com", "pw"))
}
