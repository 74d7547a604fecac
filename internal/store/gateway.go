// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
	"github.com/MKhiriev/go-trail-service/models"
)

// sqlGateway runs statements on a connection obtained from a [Connector].
// No transaction is opened, so every statement autocommits.
type sqlGateway struct {
	connector          Connector
	errorClassificator ErrorClassificator
	metrics            *metrics.Manager
	logger             *logger.Logger
}

// NewGateway builds a [Gateway] on top of connector. m may be nil.
func NewGateway(connector Connector, m *metrics.Manager, log *logger.Logger) Gateway {
	return &sqlGateway{
		connector:          connector,
		errorClassificator: NewPostgresErrorClassifier(),
		metrics:            m,
		logger:             log,
	}
}

// Execute runs stmt. With wantRows it returns every result row (never nil);
// otherwise it returns nil rows on success.
//
// Every failure is returned as a *Failure.
func (g *sqlGateway) Execute(ctx context.Context, stmt Statement, wantRows bool) (rows []models.Row, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		g.metrics.ObserveDBCall(stmt.Name, err, elapsed)

		event := g.logger.Debug()
		if err != nil {
			event = g.logger.Error().Err(err)
		}
		event.Str("statement", stmt.Name).
			Dur("duration", elapsed).
			Int("rows", len(rows)).
			Msg("database call finished")
	}()

	db, release, err := g.connector.Connect(ctx)
	if err != nil {
		return nil, g.fail(stmt, err)
	}
	defer func() {
		if releaseErr := release(); releaseErr != nil {
			g.logger.Warn().Err(releaseErr).Str("statement", stmt.Name).Msg("error releasing database connection")
		}
	}()

	if !wantRows {
		if _, err = db.ExecContext(ctx, stmt.SQL, stmt.Args...); err != nil {
			return nil, g.fail(stmt, err)
		}
		return nil, nil
	}

	sqlRows, err := db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, g.fail(stmt, err)
	}
	defer sqlRows.Close()

	result, err := scanRows(sqlRows)
	if err != nil {
		return nil, g.fail(stmt, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return result, nil
}

func (g *sqlGateway) fail(stmt Statement, err error) *Failure {
	f := newFailure(err, g.errorClassificator)
	g.logger.Debug().
		Str("statement", stmt.Name).
		Str("sqlstate", f.Code).
		Bool("retryable", f.Retryable).
		Msg("database failure classified")
	return f
}
