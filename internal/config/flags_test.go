// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8000}, expected: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{name: "localhost", input: "localhost:8000", wantHost: "localhost", wantPort: 8000},
		{name: "any interface", input: "0.0.0.0:8000", wantHost: "0.0.0.0", wantPort: 8000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname that is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8000",
		"-request-timeout", "20s",
		"-metrics",
		"-d", "postgres://flags",
		"-db-schema", "trails",
		"-db-pooled",
		"-db-max-open-conns", "6",
		"-auth-url", "https://auth.example.com/api/users",
		"-auth-timeout", "2s",
		"-verification-cache-ttl", "1m",
		"-cache-key", "k",
		"-cache-purge-interval", "10s",
		"-log-level", "error",
		"-version", "2.0.0",
		"-config", "/etc/trails.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.MetricsEnabled)
	assert.Equal(t, "postgres://flags", cfg.Storage.DB.DSN)
	assert.Equal(t, "trails", cfg.Storage.DB.Schema)
	assert.True(t, cfg.Storage.DB.Pooled)
	assert.Equal(t, 6, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, "https://auth.example.com/api/users", cfg.Adapter.AuthURL)
	assert.Equal(t, 2*time.Second, cfg.Adapter.AuthTimeout)
	assert.Equal(t, time.Minute, cfg.App.VerificationCacheTTL)
	assert.Equal(t, "k", cfg.App.CacheKey)
	assert.Equal(t, 10*time.Second, cfg.Workers.CachePurgeInterval)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "/etc/trails.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
