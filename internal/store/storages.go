// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
)

// Storages groups the repositories of the service together with the
// connector backing them.
type Storages struct {
	TrailRepository TrailRepository

	connector Connector
}

// NewStorages wires connector, gateway and repositories from cfg.
// No connection is opened here.
func NewStorages(cfg config.DB, m *metrics.Manager, log *logger.Logger) *Storages {
	connector := NewConnector(cfg, log)
	gateway := NewGateway(connector, m, log)

	return &Storages{
		TrailRepository: NewTrailRepository(gateway, NewProcedures(cfg.Schema)),
		connector:       connector,
	}
}

// Close releases the shared pool, if any.
func (s *Storages) Close() error {
	return s.connector.Close()
}
