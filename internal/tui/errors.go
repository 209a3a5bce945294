// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/focus-on-it/internal/optimistic"
	"github.com/MKhiriev/focus-on-it/internal/service"
)

var ErrNoServices = errors.New("client services are not initialized")

// userMessage turns a service error into a line for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var writeErr *optimistic.WriteError
	switch {
	case errors.Is(err, optimistic.ErrOperationPending):
		return "Still saving the previous change, try again in a moment"
	case errors.Is(err, service.ErrSessionRunning):
		return "A focus session is already running"
	case errors.Is(err, service.ErrNoSessionRunning):
		return "No focus session is running"
	case errors.Is(err, service.ErrNotAuthorized):
		return "Not authorized, check the token"
	case errors.As(err, &writeErr) && errors.Is(err, service.ErrRecordGone):
		return "The task was removed on another device, change reverted"
	case errors.As(err, &writeErr):
		return "Change reverted: " + serverUnavailable(writeErr.Err)
	}

	return serverUnavailable(err)
}

func serverUnavailable(err error) string {
	if errors.Is(err, service.ErrServerNotReached) {
		return "No network or the server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
