// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-trail-service/internal/logger"
	"github.com/MKhiriev/go-trail-service/internal/service"
	"github.com/MKhiriev/go-trail-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTrails(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	trails, err := h.services.TrailService.ListTrails(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTrails").Msg("error listing trails")
		h.writeError(w, r, err, msgDatabaseError)
		return
	}

	h.writeJSON(w, r, http.StatusOK, trails)
}

func (h *Handler) getTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.trailID(w, r)
	if !ok {
		return
	}

	trail, err := h.services.TrailService.GetTrail(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrTrailNotFound):
		h.writeMessage(w, r, http.StatusNotFound, fmt.Sprintf(fmtTrailNotFound, id))
		return
	case err != nil:
		log.Err(err).Str("func", "*Handler.getTrail").Int64("trail_id", id).Msg("error getting trail")
		h.writeError(w, r, err, msgDatabaseError)
		return
	}

	h.writeJSON(w, r, http.StatusOK, trail)
}

func (h *Handler) createTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	trail, ok := h.decodeTrail(w, r)
	if !ok {
		return
	}

	if err := h.services.TrailService.CreateTrail(r.Context(), trail); err != nil {
		log.Err(err).Str("func", "*Handler.createTrail").Msg("error creating trail")
		h.writeError(w, r, err, msgTrailCreateFailed)
		return
	}

	h.writeMessage(w, r, http.StatusCreated, msgTrailCreated)
}

func (h *Handler) updateTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.trailID(w, r)
	if !ok {
		return
	}

	trail, ok := h.decodeTrail(w, r)
	if !ok {
		return
	}

	if err := h.services.TrailService.UpdateTrail(r.Context(), id, trail); err != nil {
		log.Err(err).Str("func", "*Handler.updateTrail").Int64("trail_id", id).Msg("error updating trail")
		h.writeError(w, r, err, fmt.Sprintf(fmtTrailUpdateFailed, id))
		return
	}

	h.writeMessage(w, r, http.StatusOK, fmt.Sprintf(fmtTrailUpdated, id))
}

func (h *Handler) deleteTrail(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := h.trailID(w, r)
	if !ok {
		return
	}

	if err := h.services.TrailService.DeleteTrail(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTrail").Int64("trail_id", id).Msg("error deleting trail")
		h.writeError(w, r, err, fmt.Sprintf(fmtTrailDeleteFailed, id))
		return
	}

	h.writeMessage(w, r, http.StatusOK, fmt.Sprintf(fmtTrailDeleted, id))
}

// trailID parses the {id} URL parameter. The route pattern already limits it
// to digits, so only values overflowing int64 fail here; those are answered
// as a route miss.
func (h *Handler) trailID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Err(fmt.Errorf("%w: %w", ErrInvalidID, err)).Str("id", raw).Send()
		h.writeMessage(w, r, statusFromError(ErrInvalidID), msgNotFound)
		return 0, false
	}
	return id, true
}

// decodeTrail reads the JSON body. Missing fields stay nil; no other
// validation is done here.
func (h *Handler) decodeTrail(w http.ResponseWriter, r *http.Request) (models.TrailRequest, bool) {
	var trail models.TrailRequest
	if err := json.NewDecoder(r.Body).Decode(&trail); err != nil {
		logger.FromRequest(r).Err(fmt.Errorf("%w: %w", ErrInvalidJSON, err)).Msg("Invalid JSON was passed")
		h.writeMessage(w, r, statusFromError(ErrInvalidJSON), msgInvalidJSON)
		return models.TrailRequest{}, false
	}
	return trail, true
}
