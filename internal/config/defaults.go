// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress        = "0.0.0.0:8000"
	DefaultDBSchema           = "cw2"
	DefaultMaxOpenConns       = 4
	DefaultAuthTimeout        = 5 * time.Second
	DefaultCachePurgeInterval = time.Minute
	DefaultLogLevel           = "info"
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Storage.DB.Schema == "" {
		cfg.Storage.DB.Schema = DefaultDBSchema
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Adapter.AuthTimeout == 0 {
		cfg.Adapter.AuthTimeout = DefaultAuthTimeout
	}
	if cfg.Workers.CachePurgeInterval == 0 {
		cfg.Workers.CachePurgeInterval = DefaultCachePurgeInterval
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
}
