// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAppBuildInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")
	svc := NewAppInfoService(config.App{}, info, logger.Nop())

	assert.Equal(t, info, svc.GetAppBuildInfo(context.Background()))
}

func TestGetAppBuildInfo_ConfiguredVersionWins(t *testing.T) {
	info := models.NewAppBuildInfo("", "", "")
	svc := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, info, logger.Nop())

	got := svc.GetAppBuildInfo(context.Background())
	assert.Equal(t, "v1.2.3-beta+build.42", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}

func TestGetAppBuildInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppBuildInfo(ctx).Version)
}
