// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the HTTP transport server.
//
// It owns the server lifecycle: startup, stop on context cancellation (the
// caller ties it to SIGTERM, SIGINT and SIGQUIT), and graceful shutdown.
package server
