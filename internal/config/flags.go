// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-metrics expose Prometheus metrics
//	-d database DSN
//	-db-schema schema holding the trail procedures
//	-db-pooled use a shared bounded connection pool
//	-db-max-open-conns pool bound
//	-auth-url remote auth endpoint
//	-auth-timeout remote auth call timeout
//	-verification-cache-ttl verification cache TTL, 0 disables it
//	-cache-key verification cache digest key
//	-cache-purge-interval expired cache entries sweep interval
//	-log-level zerolog level
//	-version version reported by GET /version
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var metricsEnabled bool
	var databaseDSN, dbSchema string
	var dbPooled bool
	var dbMaxOpenConns int
	var authURL string
	var authTimeout time.Duration
	var cacheTTL time.Duration
	var cacheKey string
	var purgeInterval time.Duration
	var logLevel, version string
	var jsonConfigPath string

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&metricsEnabled, "metrics", false, "Expose Prometheus metrics on /metrics")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&dbSchema, "db-schema", "", "Schema holding the trail procedures")
	fs.BoolVar(&dbPooled, "db-pooled", false, "Use a shared bounded connection pool")
	fs.IntVar(&dbMaxOpenConns, "db-max-open-conns", 0, "Max open connections of the shared pool")
	fs.StringVar(&authURL, "auth-url", "", "Remote auth endpoint")
	fs.DurationVar(&authTimeout, "auth-timeout", 0, "Remote auth call timeout")
	fs.DurationVar(&cacheTTL, "verification-cache-ttl", 0, "Verification cache TTL, 0 disables caching")
	fs.StringVar(&cacheKey, "cache-key", "", "Verification cache digest key")
	fs.DurationVar(&purgeInterval, "cache-purge-interval", 0, "Expired cache entries sweep interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&version, "version", "", "Version reported by GET /version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:             logLevel,
			Version:              version,
			VerificationCacheTTL: cacheTTL,
			CacheKey:             cacheKey,
		},
		Storage: Storage{
			DB: DB{
				DSN:          databaseDSN,
				Schema:       dbSchema,
				Pooled:       dbPooled,
				MaxOpenConns: dbMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MetricsEnabled: metricsEnabled,
		},
		Adapter: Adapter{
			AuthURL:     authURL,
			AuthTimeout: authTimeout,
		},
		Workers: Workers{
			CachePurgeInterval: purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
