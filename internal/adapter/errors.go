// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrAuthRejected is logged when the auth service answers with any
	// status other than 200.
	ErrAuthRejected = errors.New("credentials rejected by auth service")

	// ErrAuthUnavailable is logged when the auth service cannot be reached.
	ErrAuthUnavailable = errors.New("auth service unavailable")

	ErrInvalidAuthURL = errors.New("invalid auth url")
)
