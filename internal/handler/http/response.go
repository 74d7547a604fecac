// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/utils"
	"github.com/MKhiriev/go-trail-service/models"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, status, models.MessageResponse{Message: message})
}

// writeError answers with message and, for database failures, the driver
// detail. The status is derived from err.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	h.writeJSON(w, r, statusFromError(err), models.MessageResponse{
		Message: message,
		Details: errorDetails(err),
	})
}
