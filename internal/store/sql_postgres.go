// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-trail-service/internal/config"
	"github.com/MKhiriev/go-trail-service/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

// openFunc matches sql.Open and is swapped out in tests.
type openFunc func(driverName, dsn string) (*sql.DB, error)

// Connector hands out a database handle for a single gateway call.
//
// The returned release function must be called exactly once when the call
// is finished, on every exit path.
type Connector interface {
	Connect(ctx context.Context) (*sql.DB, func() error, error)
	Close() error
}

// NewConnector returns a per-call connector, or a shared pooled one when
// cfg.Pooled is set.
func NewConnector(cfg config.DB, log *logger.Logger) Connector {
	if cfg.Pooled {
		return newPooledConnector(cfg.DSN, cfg.MaxOpenConns, sql.Open, log)
	}
	return newPerCallConnector(cfg.DSN, sql.Open, log)
}

// perCallConnector opens a fresh single-connection handle for every call
// and closes it on release.
type perCallConnector struct {
	dsn    string
	open   openFunc
	logger *logger.Logger
}

func newPerCallConnector(dsn string, open openFunc, log *logger.Logger) *perCallConnector {
	return &perCallConnector{dsn: dsn, open: open, logger: log}
}

func (c *perCallConnector) Connect(ctx context.Context) (*sql.DB, func() error, error) {
	db, err := c.open(driverName, c.dsn)
	if err != nil {
		c.logger.Err(err).Str("func", "perCallConnector.Connect").Msg("error opening database handle")
		return nil, nil, fmt.Errorf("error opening database handle: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err = db.PingContext(ctx); err != nil {
		c.logger.Err(err).Str("func", "perCallConnector.Connect").Msg("error connecting database (ping)")
		_ = db.Close()
		return nil, nil, err
	}

	return db, db.Close, nil
}

// Close is a no-op: per-call handles are closed by their release function.
func (c *perCallConnector) Close() error {
	return nil
}

// pooledConnector lazily opens one bounded *sql.DB shared by all calls.
type pooledConnector struct {
	dsn          string
	maxOpenConns int
	open         openFunc
	logger       *logger.Logger

	mu sync.Mutex
	db *sql.DB
}

func newPooledConnector(dsn string, maxOpenConns int, open openFunc, log *logger.Logger) *pooledConnector {
	return &pooledConnector{dsn: dsn, maxOpenConns: maxOpenConns, open: open, logger: log}
}

func (c *pooledConnector) Connect(ctx context.Context) (*sql.DB, func() error, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		db, err := c.open(driverName, c.dsn)
		if err != nil {
			c.logger.Err(err).Str("func", "pooledConnector.Connect").Msg("error opening database pool")
			return nil, nil, fmt.Errorf("error opening database pool: %w", err)
		}
		db.SetMaxOpenConns(c.maxOpenConns)
		db.SetMaxIdleConns(c.maxOpenConns)

		if err = db.PingContext(ctx); err != nil {
			c.logger.Err(err).Str("func", "pooledConnector.Connect").Msg("error connecting database (ping)")
			_ = db.Close()
			return nil, nil, err
		}
		c.logger.Info().Int("max_open_conns", c.maxOpenConns).Msg("connected to database pool successfully")
		c.db = db
	}

	return c.db, noopRelease, nil
}

func (c *pooledConnector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func noopRelease() error { return nil }
