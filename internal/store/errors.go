// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrDatabaseFailure is matched (via [errors.Is]) by every error the
	// gateway returns for a driver, connectivity or SQL failure.
	ErrDatabaseFailure = errors.New("database failure")

	// ErrBuildingSQLQuery is returned when a procedure invocation cannot be
	// rendered into SQL.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRows is wrapped when reading a result set fails mid-way.
	ErrScanningRows = errors.New("failed to scan result rows")
)

// Failure describes a failed database call.
//
// Detail is the driver's human readable message and is surfaced to HTTP
// callers. Code is the SQLSTATE when the server reported one. Retryable is
// informational only; the gateway never retries.
type Failure struct {
	Detail    string
	Code      string
	Retryable bool

	err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", ErrDatabaseFailure, f.Detail)
}

// Unwrap exposes both [ErrDatabaseFailure] and the driver error.
func (f *Failure) Unwrap() []error {
	return []error{ErrDatabaseFailure, f.err}
}

// AsFailure extracts the *Failure carried by err, if any.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
