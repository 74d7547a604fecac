// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel             string   `json:"log_level"`
		Version              string   `json:"version"`
		VerificationCacheTTL Duration `json:"verification_cache_ttl"`
		CacheKey             string   `json:"cache_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Schema       string `json:"schema"`
			Pooled       bool   `json:"pooled"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MetricsEnabled bool     `json:"metrics_enabled"`
	} `json:"server,omitempty"`

	Adapter struct {
		AuthURL     string   `json:"auth_url"`
		AuthTimeout Duration `json:"auth_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CachePurgeInterval Duration `json:"cache_purge_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:             jsonCfg.App.LogLevel,
			Version:              jsonCfg.App.Version,
			VerificationCacheTTL: time.Duration(jsonCfg.App.VerificationCacheTTL),
			CacheKey:             jsonCfg.App.CacheKey,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Schema:       jsonCfg.Storage.DB.Schema,
				Pooled:       jsonCfg.Storage.DB.Pooled,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MetricsEnabled: jsonCfg.Server.MetricsEnabled,
		},
		Adapter: Adapter{
			AuthURL:     jsonCfg.Adapter.AuthURL,
			AuthTimeout: time.Duration(jsonCfg.Adapter.AuthTimeout),
		},
		Workers: Workers{
			CachePurgeInterval: time.Duration(jsonCfg.Workers.CachePurgeInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
