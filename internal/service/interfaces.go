// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/focus-on-it/internal/realtime"
	"github.com/MKhiriev/focus-on-it/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TaskService manages the tasks of a user and announces every change on the
// change feed.
type TaskService interface {
	ListTasks(ctx context.Context, userID int64) ([]models.Task, error)
	CreateTask(ctx context.Context, userID int64, task models.NewTask) (models.Task, error)
	UpdateTask(ctx context.Context, userID int64, id string, patch models.TaskPatch) (models.Task, error)
	DeleteTask(ctx context.Context, userID int64, id string) error
}

// SessionService manages the timer sessions of a user and announces every
// change on the change feed.
type SessionService interface {
	ListSessions(ctx context.Context, userID int64) ([]models.TimerSession, error)
	CreateSession(ctx context.Context, userID int64, session models.NewTimerSession) (models.TimerSession, error)
	UpdateSession(ctx context.Context, userID int64, id string, patch models.SessionPatch) (models.TimerSession, error)
	DeleteSession(ctx context.Context, userID int64, id string) error
}

type StatsService interface {
	GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error)
}

// AuthService issues and verifies bearer tokens. Accounts live outside
// FocusOnIt; a token only carries the user id.
type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// ChangeHub publishes change messages and hands out per-user subscriptions.
// It is implemented by *realtime.Hub.
type ChangeHub interface {
	Publish(msg models.ChangeMessage)
	Subscribe(userID int64) (*realtime.Subscriber, error)
}
