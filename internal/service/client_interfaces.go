// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/focus-on-it/internal/optimistic"
	"github.com/MKhiriev/focus-on-it/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientTaskService is the client view of the task list. It owns a
// synchronized collection: reads are local, writes are applied locally
// first and confirmed or rolled back by the server.
type ClientTaskService interface {
	// Load fetches the tasks and opens the change feed.
	Load(ctx context.Context) error

	// Refresh refetches the tasks, keeping pending local changes.
	Refresh(ctx context.Context) error

	// Resubscribe reopens a dropped change feed.
	Resubscribe(ctx context.Context) error

	// Tasks returns the local tasks in presentation order.
	Tasks() []models.Task

	// IsPending reports whether a local change to the task is unconfirmed.
	IsPending(id string) bool

	// Live reports whether the change feed is open.
	Live() bool

	// Loading reports whether the initial fetch is in flight.
	Loading() bool

	// LoadErr returns the error of the last failed fetch.
	LoadErr() error

	// Toggle flips the done flag of the task.
	Toggle(id string) (*optimistic.Operation, error)

	// Rename replaces the title of the task.
	Rename(id, title string) (*optimistic.Operation, error)

	// Delete removes the task.
	Delete(id string) (*optimistic.Operation, error)

	// Create asks the server for a new task and adds it to the list.
	Create(ctx context.Context, task models.NewTask) (models.Task, error)

	Close() error
}

// ClientSessionService is the client view of the focus timer.
type ClientSessionService interface {
	Load(ctx context.Context) error
	Refresh(ctx context.Context) error
	Resubscribe(ctx context.Context) error
	Live() bool

	// LoadErr returns the error of the last failed fetch.
	LoadErr() error

	// Sessions returns the local sessions, most recent first.
	Sessions() []models.TimerSession

	// Running returns the focus session without an end time, if any.
	Running() (models.TimerSession, bool)

	// Start creates a focus session of the given length, optionally linked
	// to a task. Returns ErrSessionRunning when one is already running.
	Start(ctx context.Context, taskID *string, planned time.Duration) (models.TimerSession, error)

	// Stop ends the running focus session. It is marked completed when it
	// lasted at least its planned length. Returns ErrNoSessionRunning when
	// nothing runs.
	Stop() (*optimistic.Operation, error)

	Close() error
}
