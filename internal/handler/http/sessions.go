// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/focus-on-it/internal/utils"
	"github.com/MKhiriev/focus-on-it/models"
)

func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.listSessions", err)
		return
	}

	sessions, err := h.services.SessionService.ListSessions(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listSessions", err)
		return
	}
	if sessions == nil {
		sessions = []models.TimerSession{}
	}

	utils.WriteJSON(w, models.SessionsResponse{Sessions: sessions, Length: len(sessions)}, http.StatusOK)
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createSession", err)
		return
	}

	var newSession models.NewTimerSession
	if err = utils.ReadJSON(r, &newSession); err != nil {
		writeError(w, r, "*Handler.createSession", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.SessionService.CreateSession(r.Context(), userID, newSession)
	if err != nil {
		writeError(w, r, "*Handler.createSession", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSession(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateSession", err)
		return
	}

	var patch models.SessionPatch
	if err = utils.ReadJSON(r, &patch); err != nil {
		writeError(w, r, "*Handler.updateSession", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.SessionService.UpdateSession(r.Context(), userID, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, "*Handler.updateSession", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteSession", err)
		return
	}

	if err = h.services.SessionService.DeleteSession(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
