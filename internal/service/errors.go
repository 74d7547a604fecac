// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrTrailNotFound is returned by GetTrail when the procedure yields no row.
	ErrTrailNotFound = errors.New("trail not found")

	ErrNilRepository = errors.New("trail repository is not specified")
	ErrNilVerifier   = errors.New("auth verifier is not specified")
)
