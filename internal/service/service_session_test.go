// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/mock"
	"github.com/MKhiriev/focus-on-it/internal/store"
	"github.com/MKhiriev/focus-on-it/internal/validators"
	"github.com/MKhiriev/focus-on-it/models"
)

func newTestSessionService(t *testing.T) (*sessionService, *mock.MockSessionRepository, *mock.MockChangeHub) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockSessionRepository(ctrl)
	hub := mock.NewMockChangeHub(ctrl)

	svc := NewSessionService(repo, hub, logger.Nop()).(*sessionService)
	svc.ids = fixedIDs(testTaskID)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, hub
}

func TestSessionService_CreateSession(t *testing.T) {
	svc, repo, hub := newTestSessionService(t)

	repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.TimerSession) (models.TimerSession, error) {
			assert.Equal(t, fixedNow, s.StartedAt)
			assert.Equal(t, int64(1500), s.PlannedSeconds)
			assert.Equal(t, models.SessionFocus, s.Kind)
			return s, nil
		},
	)
	hub.EXPECT().Publish(gomock.Any()).Do(func(msg models.ChangeMessage) {
		assert.Equal(t, models.CollectionSessions, msg.Collection)
		assert.Equal(t, models.ChangeInsert, msg.Kind)
	})

	created, err := svc.CreateSession(context.Background(), 3, models.NewTimerSession{Kind: models.SessionFocus, PlannedSeconds: 1500})
	require.NoError(t, err)
	assert.Equal(t, testTaskID, created.ID)
}

func TestSessionService_CreateSession_ExplicitStart(t *testing.T) {
	svc, repo, hub := newTestSessionService(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.TimerSession) (models.TimerSession, error) {
			assert.True(t, start.Equal(s.StartedAt))
			assert.Equal(t, time.UTC, s.StartedAt.Location())
			return s, nil
		},
	)
	hub.EXPECT().Publish(gomock.Any())

	_, err := svc.CreateSession(context.Background(), 3, models.NewTimerSession{Kind: models.SessionFocus, PlannedSeconds: 60, StartedAt: &start})
	require.NoError(t, err)
}

func TestSessionService_UpdateAndDelete(t *testing.T) {
	svc, repo, hub := newTestSessionService(t)
	completed := true
	patch := models.SessionPatch{Completed: &completed}

	repo.EXPECT().UpdateSession(gomock.Any(), int64(3), "s1", patch).Return(models.TimerSession{ID: "s1", Completed: true}, nil)
	hub.EXPECT().Publish(gomock.Any())
	_, err := svc.UpdateSession(context.Background(), 3, "s1", patch)
	require.NoError(t, err)

	repo.EXPECT().UpdateSession(gomock.Any(), int64(3), "s2", patch).Return(models.TimerSession{}, store.ErrSessionNotFound)
	_, err = svc.UpdateSession(context.Background(), 3, "s2", patch)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	repo.EXPECT().DeleteSession(gomock.Any(), int64(3), "s1").Return(nil)
	hub.EXPECT().Publish(gomock.Any()).Do(func(msg models.ChangeMessage) {
		assert.Equal(t, models.ChangeDelete, msg.Kind)
		assert.Nil(t, msg.Record)
	})
	require.NoError(t, svc.DeleteSession(context.Background(), 3, "s1"))
}

func TestSessionValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockSessionService(ctrl)
	svc := NewSessionValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, 3, models.NewTimerSession{Kind: "nap", PlannedSeconds: 60})
	assert.ErrorIs(t, err, validators.ErrInvalidSessionKind)

	_, err = svc.CreateSession(ctx, 3, models.NewTimerSession{Kind: models.SessionFocus})
	assert.ErrorIs(t, err, validators.ErrInvalidPlannedTime)

	_, err = svc.UpdateSession(ctx, 3, testTaskID, models.SessionPatch{})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)

	inner.EXPECT().UpdateSession(ctx, int64(3), testTaskID, gomock.Any()).Return(models.TimerSession{ID: testTaskID}, nil)
	completed := true
	_, err = svc.UpdateSession(ctx, 3, testTaskID, models.SessionPatch{Completed: &completed})
	require.NoError(t, err)
}

func TestStatsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStatsRepository(ctrl)
	svc := NewStatsValidationService().Wrap(NewStatsService(repo, logger.Nop()))
	ctx := context.Background()

	_, err := svc.GetStats(ctx, models.StatsRequest{UserID: 1, From: fixedNow, To: fixedNow.Add(-time.Hour)})
	assert.ErrorIs(t, err, validators.ErrInvalidStatsWindow)

	req := models.StatsRequest{UserID: 1, From: fixedNow, To: fixedNow.Add(time.Hour)}
	repo.EXPECT().GetStats(ctx, req).Return(models.Stats{CompletedTasks: 2}, nil)
	stats, err := svc.GetStats(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.CompletedTasks)

	repo.EXPECT().GetStats(ctx, gomock.Any()).Return(models.Stats{}, store.ErrExecutingQuery)
	_, err = svc.GetStats(ctx, models.StatsRequest{UserID: 1})
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
