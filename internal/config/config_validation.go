// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"regexp"
)

var sqlIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants needed at startup. Defaults must already be applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if !sqlIdentifier.MatchString(db.Schema) {
		return fmt.Errorf("%w: schema %q is not an SQL identifier", ErrInvalidStorageConfigs, db.Schema)
	}
	if db.MaxOpenConns < 1 {
		return fmt.Errorf("%w: max open conns must be positive", ErrInvalidStorageConfigs)
	}

	authURL, err := url.Parse(cfg.Adapter.AuthURL)
	if cfg.Adapter.AuthURL == "" || err != nil || (authURL.Scheme != "http" && authURL.Scheme != "https") || authURL.Host == "" {
		return fmt.Errorf("%w: auth url %q", ErrInvalidAdapterConfigs, cfg.Adapter.AuthURL)
	}
	if cfg.Adapter.AuthTimeout <= 0 {
		return fmt.Errorf("%w: auth timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.App.VerificationCacheTTL < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Workers.CachePurgeInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
