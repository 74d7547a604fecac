// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/metrics"
)

const wwwAuthenticate = `Basic realm="trails"`

// auth is the gate in front of mutating trail routes.
//
// It rejects with 401 when the request has no Basic credentials, a malformed
// Authorization header, or an empty username or password; the verifier is
// not called in that case. It rejects with 403 when the verification service
// does not accept the credentials. Otherwise the request is passed on
// unchanged: no identity is added to the context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, ok := r.BasicAuth()
		if !ok || email == "" || password == "" {
			log.Err(ErrAuthenticationRequired).Send()
			h.metrics.ObserveVerification(metrics.VerificationMissing)
			w.Header().Set("WWW-Authenticate", wwwAuthenticate)
			h.writeMessage(w, r, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		if !h.services.VerificationService.Verify(r.Context(), email, password) {
			log.Err(ErrInvalidCredentials).Str("email", email).Send()
			h.writeMessage(w, r, http.StatusForbidden, msgInvalidCredentials)
			return
		}

		next.ServeHTTP(w, r)
	})
}
