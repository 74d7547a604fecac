// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors logged by the auth gate and the request decoders. Callers
// can match against them with [errors.Is].
var (
	// ErrAuthenticationRequired is logged when a protected route is called
	// without usable Basic credentials.
	ErrAuthenticationRequired = errors.New("missing or incomplete basic credentials")

	// ErrInvalidCredentials is logged when the verifier rejects the
	// credentials or cannot be reached.
	ErrInvalidCredentials = errors.New("credentials were not verified")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrInvalidID   = errors.New("invalid trail id")
)

// Response messages.
const (
	msgAuthRequired       = "Authentication required!"
	msgInvalidCredentials = "Invalid Credentials (Email/Password)."
	msgDatabaseError      = "Database error"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgNotFound           = "Not found"
	msgMethodNotAllowed   = "Method not allowed"
	msgTrailCreated       = "Trail created successfully."
	msgTrailCreateFailed  = "Failed to create trail."

	fmtTrailNotFound     = "Trail ID %d not found."
	fmtTrailUpdated      = "Trail ID %d updated successfully."
	fmtTrailUpdateFailed = "Failed to update Trail ID %d."
	fmtTrailDeleted      = "Trail ID %d deleted successfully."
	fmtTrailDeleteFailed = "Failed to delete Trail ID %d."
)
