// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists tasks and timer sessions in PostgreSQL or SQLite.
//
// Queries are rendered with squirrel using the placeholder format of the
// configured dialect. Driver errors are classified into the sentinel errors
// of this package so that callers never see driver types.
package store

import (
	"context"

	"github.com/MKhiriev/focus-on-it/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TaskRepository stores the tasks of every user. All methods are scoped by
// user id; a task of another user behaves as if it did not exist.
type TaskRepository interface {
	ListTasks(ctx context.Context, userID int64) ([]models.Task, error)
	GetTask(ctx context.Context, userID int64, id string) (models.Task, error)
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, userID int64, id string, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, userID int64, id string) error
}

// SessionRepository stores timer sessions.
type SessionRepository interface {
	ListSessions(ctx context.Context, userID int64) ([]models.TimerSession, error)
	GetSession(ctx context.Context, userID int64, id string) (models.TimerSession, error)
	CreateSession(ctx context.Context, session models.TimerSession) (models.TimerSession, error)
	UpdateSession(ctx context.Context, userID int64, id string, patch models.SessionPatch) (models.TimerSession, error)
	DeleteSession(ctx context.Context, userID int64, id string) error
}

// StatsRepository aggregates tasks and sessions for the dashboard.
type StatsRepository interface {
	GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error)
}
