// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/focus-on-it/models"
)

type tickMsg time.Time

// failureMsg carries a rolled-back change reported by the client services.
type failureMsg struct {
	err error
}

type opDoneMsg struct {
	err error
}

type createDoneMsg struct {
	task models.Task
	err  error
}

type sessionStartedMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
