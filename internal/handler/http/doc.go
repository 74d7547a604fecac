// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the trail service.
//
// It exposes route wiring, the trail resource handlers, and the middleware
// run before them: request tracing, access logging, metrics, response
// compression and the Basic-auth gate guarding mutating routes.
package http
