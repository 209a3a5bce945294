// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/utils"
	"github.com/MKhiriev/focus-on-it/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listTasks", err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, models.TasksResponse{Tasks: tasks, Length: len(tasks)}, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	var newTask models.NewTask
	if err = utils.ReadJSON(r, &newTask); err != nil {
		writeError(w, r, "*Handler.createTask", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.TaskService.CreateTask(r.Context(), userID, newTask)
	if err != nil {
		writeError(w, r, "*Handler.createTask", err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", created.ID).Int64("user_id", userID).Msg("task created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	var patch models.TaskPatch
	if err = utils.ReadJSON(r, &patch); err != nil {
		writeError(w, r, "*Handler.updateTask", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.TaskService.UpdateTask(r.Context(), userID, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, "*Handler.updateTask", err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteTask", err)
		return
	}

	if err = h.services.TaskService.DeleteTask(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteTask", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
