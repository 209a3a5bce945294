// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/focus-on-it/internal/adapter"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/optimistic"
	"github.com/MKhiriev/focus-on-it/models"
)

// SessionCollection is the synchronized timer session list.
type SessionCollection = optimistic.Collection[models.TimerSession, models.SessionPatch]

type clientSessionService struct {
	sessions      *SessionCollection
	serverAdapter adapter.ServerAdapter
	now           func() time.Time

	logger *logger.Logger
}

func NewClientSessionService(serverAdapter adapter.ServerAdapter, userID int64, writeTimeout time.Duration, notify optimistic.Notifier, log *logger.Logger) ClientSessionService {
	sessions := optimistic.New[models.TimerSession, models.SessionPatch](
		newSessionStore(serverAdapter, log),
		userID,
		optimistic.WithOrder(func(a, b models.TimerSession) bool { return a.StartedAt.After(b.StartedAt) }),
		optimistic.WithNotifier[models.TimerSession](notify),
		optimistic.WithWriteTimeout[models.TimerSession](writeTimeout),
		optimistic.WithLogger[models.TimerSession](log),
	)

	return &clientSessionService{
		sessions:      sessions,
		serverAdapter: serverAdapter,
		now:           func() time.Time { return time.Now().UTC() },
		logger:        log,
	}
}

func (s *clientSessionService) Load(ctx context.Context) error        { return s.sessions.Load(ctx) }
func (s *clientSessionService) Refresh(ctx context.Context) error     { return s.sessions.Refresh(ctx) }
func (s *clientSessionService) Resubscribe(ctx context.Context) error { return s.sessions.Resubscribe(ctx) }
func (s *clientSessionService) Live() bool                            { return s.sessions.Live() }
func (s *clientSessionService) LoadErr() error                        { return s.sessions.LoadErr() }
func (s *clientSessionService) Sessions() []models.TimerSession       { return s.sessions.Records() }
func (s *clientSessionService) Close() error                          { return s.sessions.Close() }

func (s *clientSessionService) Running() (models.TimerSession, bool) {
	for _, session := range s.sessions.Records() {
		if session.Kind == models.SessionFocus && session.EndedAt == nil {
			return session, true
		}
	}

	return models.TimerSession{}, false
}

func (s *clientSessionService) Start(ctx context.Context, taskID *string, planned time.Duration) (models.TimerSession, error) {
	if _, ok := s.Running(); ok {
		return models.TimerSession{}, ErrSessionRunning
	}

	request := models.NewTimerSession{
		TaskID:         taskID,
		Kind:           models.SessionFocus,
		PlannedSeconds: int64(planned / time.Second),
	}

	return s.sessions.Create(ctx, func(ctx context.Context) (models.TimerSession, error) {
		created, err := s.serverAdapter.CreateSession(ctx, request)
		return created, mapAdapterError(err)
	})
}

func (s *clientSessionService) Stop() (*optimistic.Operation, error) {
	running, ok := s.Running()
	if !ok {
		return nil, ErrNoSessionRunning
	}

	ended := s.now()
	completed := running.Elapsed(ended) >= time.Duration(running.PlannedSeconds)*time.Second
	patch := models.SessionPatch{EndedAt: &ended, Completed: &completed}

	return s.sessions.Mutate(running.ID, patch, func(ctx context.Context) error {
		_, err := s.serverAdapter.UpdateSession(ctx, running.ID, patch)
		return mapAdapterError(err)
	})
}
