// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-trail-service/internal/adapter"
	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/handler"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/internal/server"
	"github.com/MKhiriev/go-trail-service/internal/service"
	"github.com/MKhiriev/go-trail-service/internal/store"
	"github.com/MKhiriev/go-trail-service/internal/workers"
	"github.com/MKhiriev/go-trail-service/models"
)

const role = "trail-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	var m *metrics.Manager
	if cfg.Server.MetricsEnabled {
		m = metrics.NewManager()
	}

	storages := store.NewStorages(cfg.Storage.DB, m, log)
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	verifier, err := adapter.NewHTTPAuthAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth adapter")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, verifier, cfg.App, buildInfo, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	bg := workers.NewWorkers(*cfg, services.VerificationService, log)
	bg.Run(ctx)

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	bg.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
