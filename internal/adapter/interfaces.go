// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the trail service.
//
// The only integration is [AuthVerifier], which checks a credential pair
// against the remote authentication service over HTTP.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_verifier_mock.go -package=mock

// AuthVerifier checks credentials against the remote auth service.
type AuthVerifier interface {
	// Verify reports whether the remote service accepts the credentials.
	// It never returns an error: every transport failure is logged and
	// reported as not verified.
	Verify(ctx context.Context, email, password string) bool
}
