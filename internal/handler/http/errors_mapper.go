// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/realtime"
	"github.com/MKhiriev/focus-on-it/internal/service"
	"github.com/MKhiriev/focus-on-it/internal/store"
	"github.com/MKhiriev/focus-on-it/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidTimeParam: http.StatusBadRequest,
	ErrNoUserInContext:  http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrEmptyTitle:         http.StatusBadRequest,
	validators.ErrTitleTooLong:       http.StatusBadRequest,
	validators.ErrInvalidPriority:    http.StatusBadRequest,
	validators.ErrInvalidPosition:    http.StatusBadRequest,
	validators.ErrEmptyTag:           http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:   http.StatusBadRequest,
	validators.ErrInvalidSessionKind: http.StatusBadRequest,
	validators.ErrInvalidPlannedTime: http.StatusBadRequest,
	validators.ErrInvalidTaskID:      http.StatusBadRequest,
	validators.ErrInvalidStatsWindow: http.StatusBadRequest,
	validators.ErrInvalidRecordID:    http.StatusBadRequest,

	store.ErrTaskNotFound:    http.StatusNotFound,
	store.ErrSessionNotFound: http.StatusNotFound,
	store.ErrDuplicateID:     http.StatusConflict,
	store.ErrRetryable:       http.StatusServiceUnavailable,

	realtime.ErrHubClosed: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError returns the first non-500 status matched by err. A
// retryable query error matches both ErrRetryable and ErrExecutingQuery and
// must become 503.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if status != http.StatusInternalServerError && errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Server errors are
// reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	http.Error(w, message, status)
}
