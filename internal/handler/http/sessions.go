// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	statuses := h.services.StatusService.List(r.Context())

	if _, err := utils.WriteJSON(w, statuses, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listSessions").Msg("error writing response")
	}
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	username := chi.URLParam(r, "username")

	status, err := h.services.StatusService.Get(r.Context(), username)
	if err != nil {
		log.Debug().Err(err).Str("account", username).Msg("session lookup failed")
		_, _ = utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, status, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getSession").Msg("error writing response")
	}
}
