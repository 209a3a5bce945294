// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/focus-on-it/internal/utils"
	"github.com/MKhiriev/focus-on-it/models"
)

// getStats serves the dashboard aggregate. The optional from and to query
// parameters are RFC 3339 timestamps; a missing bound is unbounded.
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getStats", err)
		return
	}

	req := models.StatsRequest{UserID: userID}
	if req.From, err = parseTimeParam(r, "from"); err != nil {
		writeError(w, r, "*Handler.getStats", err)
		return
	}
	if req.To, err = parseTimeParam(r, "to"); err != nil {
		writeError(w, r, "*Handler.getStats", err)
		return
	}

	stats, err := h.services.StatsService.GetStats(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.getStats", err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func parseTimeParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidTimeParam, name, err)
	}

	return t.UTC(), nil
}
