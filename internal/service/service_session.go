// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/store"
	"github.com/MKhiriev/focus-on-it/internal/utils"
	"github.com/MKhiriev/focus-on-it/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	feed              ChangeHub
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, feed ChangeHub, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		feed:              feed,
		ids:               utils.NewUUIDGenerator(),
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

func (s *sessionService) ListSessions(ctx context.Context, userID int64) ([]models.TimerSession, error) {
	return s.sessionRepository.ListSessions(ctx, userID)
}

// CreateSession starts a session now unless the request carries its own
// start time.
func (s *sessionService) CreateSession(ctx context.Context, userID int64, newSession models.NewTimerSession) (models.TimerSession, error) {
	now := s.now()

	session := models.TimerSession{
		ID:             s.ids.Generate(),
		UserID:         userID,
		TaskID:         newSession.TaskID,
		Kind:           newSession.Kind,
		PlannedSeconds: newSession.PlannedSeconds,
		StartedAt:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if newSession.StartedAt != nil {
		session.StartedAt = newSession.StartedAt.UTC()
	}

	created, err := s.sessionRepository.CreateSession(ctx, session)
	if err != nil {
		return models.TimerSession{}, fmt.Errorf("error creating session: %w", err)
	}

	publish(ctx, s.feed, models.CollectionSessions, models.ChangeInsert, userID, created.ID, created)

	return created, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, userID int64, id string, patch models.SessionPatch) (models.TimerSession, error) {
	updated, err := s.sessionRepository.UpdateSession(ctx, userID, id, patch)
	if err != nil {
		return models.TimerSession{}, fmt.Errorf("error updating session %s: %w", id, err)
	}

	publish(ctx, s.feed, models.CollectionSessions, models.ChangeUpdate, userID, id, updated)

	return updated, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, userID int64, id string) error {
	if err := s.sessionRepository.DeleteSession(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting session %s: %w", id, err)
	}

	publish(ctx, s.feed, models.CollectionSessions, models.ChangeDelete, userID, id, nil)

	return nil
}
