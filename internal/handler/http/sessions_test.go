// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/focus-on-it/internal/store"
	"github.com/MKhiriev/focus-on-it/internal/validators"
	"github.com/MKhiriev/focus-on-it/models"
)

func TestSessionRoutes(t *testing.T) {
	h, ts := newTestHandler(t)
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	ts.sessions.EXPECT().ListSessions(gomock.Any(), testUserID).
		Return([]models.TimerSession{{ID: testID, Kind: models.SessionFocus, StartedAt: started}}, nil)
	rec := serve(t, h, http.MethodGet, "/api/sessions/", nil, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decodeBody[models.SessionsResponse](t, rec).Length)

	newSession := models.NewTimerSession{Kind: models.SessionFocus, PlannedSeconds: 1500}
	ts.sessions.EXPECT().CreateSession(gomock.Any(), testUserID, newSession).
		Return(models.TimerSession{ID: testID, Kind: models.SessionFocus, PlannedSeconds: 1500}, nil)
	rec = serve(t, h, http.MethodPost, "/api/sessions/", newSession, testToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1500), decodeBody[models.TimerSession](t, rec).PlannedSeconds)

	ts.sessions.EXPECT().UpdateSession(gomock.Any(), testUserID, testID, gomock.Any()).
		Return(models.TimerSession{ID: testID, Completed: true}, nil)
	rec = serve(t, h, http.MethodPatch, "/api/sessions/"+testID, `{"completed":true}`, testToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[models.TimerSession](t, rec).Completed)

	ts.sessions.EXPECT().DeleteSession(gomock.Any(), testUserID, testID).Return(store.ErrSessionNotFound)
	rec = serve(t, h, http.MethodDelete, "/api/sessions/"+testID, nil, testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSession_Invalid(t *testing.T) {
	h, ts := newTestHandler(t)

	rec := serve(t, h, http.MethodPost, "/api/sessions/", `[]`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.sessions.EXPECT().CreateSession(gomock.Any(), testUserID, gomock.Any()).
		Return(models.TimerSession{}, validators.ErrInvalidPlannedTime)
	rec = serve(t, h, http.MethodPost, "/api/sessions/", `{"kind":"focus"}`, testToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	t.Run("window", func(t *testing.T) {
		h, ts := newTestHandler(t)
		ts.stats.EXPECT().GetStats(gomock.Any(), models.StatsRequest{UserID: testUserID, From: from, To: to}).
			Return(models.Stats{CompletedTasks: 3, FocusSeconds: 3000}, nil)

		query := url.Values{}
		query.Set("from", from.Format(time.RFC3339))
		query.Set("to", to.In(time.FixedZone("UTC+3", 3*3600)).Format(time.RFC3339))

		rec := serve(t, h, http.MethodGet, "/api/stats/?"+query.Encode(), nil, testToken)

		require.Equal(t, http.StatusOK, rec.Code)
		stats := decodeBody[models.Stats](t, rec)
		assert.Equal(t, int64(3), stats.CompletedTasks)
		assert.Equal(t, int64(3000), stats.FocusSeconds)
	})

	t.Run("unbounded", func(t *testing.T) {
		h, ts := newTestHandler(t)
		ts.stats.EXPECT().GetStats(gomock.Any(), models.StatsRequest{UserID: testUserID}).Return(models.Stats{}, nil)

		assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/api/stats/", nil, testToken).Code)
	})

	t.Run("malformed bound", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := serve(t, h, http.MethodGet, "/api/stats/?from=yesterday", nil, testToken)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrInvalidTimeParam.Error())
	})

	t.Run("inverted window", func(t *testing.T) {
		h, ts := newTestHandler(t)
		ts.stats.EXPECT().GetStats(gomock.Any(), gomock.Any()).Return(models.Stats{}, validators.ErrInvalidStatsWindow)

		query := url.Values{}
		query.Set("from", to.Format(time.RFC3339))
		query.Set("to", from.Format(time.RFC3339))

		assert.Equal(t, http.StatusBadRequest, serve(t, h, http.MethodGet, "/api/stats/?"+query.Encode(), nil, testToken).Code)
	})
}
