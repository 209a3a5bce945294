// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client transport to the FocusOnIt server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships a REST implementation over resty ([NewHTTPServerAdapter])
// whose change feed is a websocket opened with gorilla/websocket.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of transport
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/focus-on-it/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the FocusOnIt
// server. Every call is authenticated with the bearer token the adapter was
// built with.
type ServerAdapter interface {
	// ListTasks returns every task of the token owner in presentation order.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// CreateTask creates a task. The server assigns its id, timestamps and,
	// when omitted, its position.
	CreateTask(ctx context.Context, task models.NewTask) (models.Task, error)

	// UpdateTask applies patch to the task and returns the stored record.
	// Returns [ErrNotFound] (wrapped) when the task does not exist.
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error)

	// DeleteTask removes the task. Returns [ErrNotFound] (wrapped) when the
	// task does not exist.
	DeleteTask(ctx context.Context, id string) error

	// ListSessions returns every timer session, most recent first.
	ListSessions(ctx context.Context) ([]models.TimerSession, error)

	// CreateSession starts a timer session.
	CreateSession(ctx context.Context, session models.NewTimerSession) (models.TimerSession, error)

	// UpdateSession applies patch to the session and returns the stored
	// record.
	UpdateSession(ctx context.Context, id string, patch models.SessionPatch) (models.TimerSession, error)

	// DeleteSession removes the session.
	DeleteSession(ctx context.Context, id string) error

	// GetStats returns the statistics of the window described by req.
	GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error)

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.VersionResponse, error)

	// Subscribe opens the realtime change feed of the token owner. ctx bounds
	// the handshake only.
	Subscribe(ctx context.Context) (ChangeFeed, error)
}

// ChangeFeed is an open realtime connection. Messages is closed when the
// connection drops or after Close.
type ChangeFeed interface {
	Messages() <-chan models.ChangeMessage
	Close() error
}
