// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trail-service/internal/service"
	"github.com/MKhiriev/go-trail-service/internal/store"
)

var errorStatusMap = map[error]int{
	ErrAuthenticationRequired: http.StatusUnauthorized,
	ErrInvalidCredentials:     http.StatusForbidden,
	ErrInvalidJSON:            http.StatusBadRequest,
	ErrInvalidID:              http.StatusNotFound,

	service.ErrTrailNotFound: http.StatusNotFound,

	store.ErrDatabaseFailure:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorDetails returns the driver message of a database failure, or the
// error text for anything else.
func errorDetails(err error) string {
	if failure, ok := store.AsFailure(err); ok {
		return failure.Detail
	}
	return err.Error()
}
