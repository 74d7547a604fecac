// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// trailIDPattern only admits non-negative integers; anything else misses the
// route and is answered with 404.
const trailIDPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// must be set before mounting sub-routers so they inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/trails", func(r chi.Router) {
		// public routes
		r.Get("/", h.listTrails)
		r.Get(trailIDPattern, h.getTrail)

		// routes behind the auth gate
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createTrail)
			r.Put(trailIDPattern, h.updateTrail)
			r.Delete(trailIDPattern, h.deleteTrail)
		})
	})

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, r, http.StatusNotFound, msgNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeMessage(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
