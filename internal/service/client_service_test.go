// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/focus-on-it/internal/adapter"
	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/mock"
	"github.com/MKhiriev/focus-on-it/internal/optimistic"
	"github.com/MKhiriev/focus-on-it/models"
)

// fakeFeed wires a controllable message channel into a MockChangeFeed.
func fakeFeed(ctrl *gomock.Controller) (*mock.MockChangeFeed, chan models.ChangeMessage) {
	ch := make(chan models.ChangeMessage, 8)
	var messages <-chan models.ChangeMessage = ch

	feed := mock.NewMockChangeFeed(ctrl)
	feed.EXPECT().Messages().Return(messages).AnyTimes()
	feed.EXPECT().Close().Return(nil).AnyTimes()

	return feed, ch
}

func mustRaw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestDecodeChange(t *testing.T) {
	task := models.Task{ID: "t1", Title: "Read"}

	ev, err := decodeChange[models.Task](models.ChangeMessage{Kind: models.ChangeInsert, ID: "t1", Record: mustRaw(t, task)})
	require.NoError(t, err)
	assert.Equal(t, "Read", ev.Record.Title)

	ev, err = decodeChange[models.Task](models.ChangeMessage{Kind: models.ChangeDelete, ID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "t1", ev.ID)

	_, err = decodeChange[models.Task](models.ChangeMessage{Kind: models.ChangeDelete})
	assert.Error(t, err)

	_, err = decodeChange[models.Task](models.ChangeMessage{Kind: models.ChangeUpdate, ID: "t1", Record: json.RawMessage(`{"title":`)})
	assert.Error(t, err)

	_, err = decodeChange[models.Task](models.ChangeMessage{Kind: "upsert", ID: "t1"})
	assert.Error(t, err)
}

func TestRemoteStore_SubscribeFiltersCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	feed, ch := fakeFeed(ctrl)
	serverAdapter.EXPECT().Subscribe(gomock.Any()).Return(feed, nil)

	store := newTaskStore(serverAdapter, logger.Nop())
	sub, err := store.Subscribe(context.Background(), 1)
	require.NoError(t, err)

	ch <- models.ChangeMessage{Collection: models.CollectionSessions, Kind: models.ChangeDelete, ID: "s1"}
	ch <- models.ChangeMessage{Collection: models.CollectionTasks, Kind: models.ChangeUpdate, ID: "t1", Record: json.RawMessage(`nope`)}
	ch <- models.ChangeMessage{Collection: models.CollectionTasks, Kind: models.ChangeDelete, ID: "t2"}
	close(ch)

	var got []optimistic.ChangeEvent[models.Task]
	for ev := range sub.Events() {
		got = append(got, ev)
	}

	require.Len(t, got, 1)
	assert.Equal(t, models.ChangeDelete, got[0].Kind)
	assert.Equal(t, "t2", got[0].ID)
	require.NoError(t, sub.Close())
}

func TestRemoteStore_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	store := newSessionStore(serverAdapter, logger.Nop())

	serverAdapter.EXPECT().ListSessions(gomock.Any()).Return(nil, adapter.ErrUnauthorized)
	_, err := store.FetchAll(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	serverAdapter.EXPECT().Subscribe(gomock.Any()).Return(nil, adapter.ErrServiceUnavailable)
	_, err = store.Subscribe(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServerNotReached)
}

func newLoadedClientServices(t *testing.T, tasks []models.Task, sessions []models.TimerSession) (*ClientServices, *mock.MockServerAdapter, chan models.ChangeMessage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	taskFeed, taskCh := fakeFeed(ctrl)
	sessionFeed, _ := fakeFeed(ctrl)

	serverAdapter.EXPECT().ListTasks(gomock.Any()).Return(tasks, nil)
	serverAdapter.EXPECT().ListSessions(gomock.Any()).Return(sessions, nil)
	gomock.InOrder(
		serverAdapter.EXPECT().Subscribe(gomock.Any()).Return(taskFeed, nil),
		serverAdapter.EXPECT().Subscribe(gomock.Any()).Return(sessionFeed, nil),
	)

	services := NewClientServices(serverAdapter, 1, config.ClientAdapter{WriteTimeout: time.Second}, logger.Nop())
	require.NoError(t, services.Load(context.Background()))
	t.Cleanup(func() { _ = services.Close() })

	return services, serverAdapter, taskCh
}

func TestClientTaskService_OrderAndLive(t *testing.T) {
	now := time.Now().UTC()
	services, _, taskCh := newLoadedClientServices(t, []models.Task{
		{ID: "b", Title: "second", Position: 1, CreatedAt: now},
		{ID: "a", Title: "first", Position: 0, CreatedAt: now},
	}, nil)

	tasks := services.TaskService.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].ID)
	assert.True(t, services.TaskService.Live())

	taskCh <- models.ChangeMessage{
		Collection: models.CollectionTasks,
		Kind:       models.ChangeInsert,
		ID:         "c",
		Record:     mustRaw(t, models.Task{ID: "c", Title: "pushed", Position: 2, CreatedAt: now}),
	}

	assert.Eventually(t, func() bool { return len(services.TaskService.Tasks()) == 3 }, time.Second, 10*time.Millisecond)
}

func TestClientTaskService_Toggle(t *testing.T) {
	services, serverAdapter, _ := newLoadedClientServices(t, []models.Task{{ID: "a", Title: "Read"}}, nil)

	release := make(chan struct{})
	serverAdapter.EXPECT().UpdateTask(gomock.Any(), "a", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch models.TaskPatch) (models.Task, error) {
			<-release
			if assert.NotNil(t, patch.Done) {
				assert.True(t, *patch.Done)
			}
			return models.Task{ID: "a", Done: true}, nil
		},
	)

	op, err := services.TaskService.Toggle("a")
	require.NoError(t, err)

	assert.True(t, services.TaskService.IsPending("a"))
	assert.True(t, services.TaskService.Tasks()[0].Done)
	assert.NotNil(t, services.TaskService.Tasks()[0].CompletedAt)

	close(release)
	require.NoError(t, op.Wait(context.Background()))
	assert.False(t, services.TaskService.IsPending("a"))
}

func TestClientTaskService_RenameRollback(t *testing.T) {
	services, serverAdapter, _ := newLoadedClientServices(t, []models.Task{{ID: "a", Title: "Read"}}, nil)

	serverAdapter.EXPECT().UpdateTask(gomock.Any(), "a", gomock.Any()).Return(models.Task{}, adapter.ErrNotFound)

	op, err := services.TaskService.Rename("a", "Write")
	require.NoError(t, err)

	err = op.Wait(context.Background())
	var writeErr *optimistic.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.ErrorIs(t, err, ErrRecordGone)
	assert.Equal(t, "Read", services.TaskService.Tasks()[0].Title)

	select {
	case failure := <-services.Failures():
		assert.ErrorIs(t, failure, ErrRecordGone)
	case <-time.After(time.Second):
		t.Fatal("rolled back write was not reported")
	}
}

func TestClientTaskService_DeleteAndCreate(t *testing.T) {
	services, serverAdapter, _ := newLoadedClientServices(t, []models.Task{{ID: "a", Title: "Read"}}, nil)

	serverAdapter.EXPECT().DeleteTask(gomock.Any(), "a").Return(nil)
	op, err := services.TaskService.Delete("a")
	require.NoError(t, err)
	require.NoError(t, op.Wait(context.Background()))
	assert.Empty(t, services.TaskService.Tasks())

	_, err = services.TaskService.Toggle("a")
	assert.ErrorIs(t, err, optimistic.ErrRecordNotFound)

	serverAdapter.EXPECT().CreateTask(gomock.Any(), models.NewTask{Title: "New"}).Return(models.Task{ID: "n", Title: "New"}, nil)
	created, err := services.TaskService.Create(context.Background(), models.NewTask{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "n", created.ID)
	assert.Len(t, services.TaskService.Tasks(), 1)

	serverAdapter.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(models.Task{}, adapter.ErrBadRequest)
	_, err = services.TaskService.Create(context.Background(), models.NewTask{Title: "Bad"})
	assert.ErrorIs(t, err, ErrServerRejected)
}

func TestClientSessionService_StartStop(t *testing.T) {
	services, serverAdapter, _ := newLoadedClientServices(t, nil, nil)
	sessions := services.SessionService

	_, err := sessions.Stop()
	assert.ErrorIs(t, err, ErrNoSessionRunning)

	started := time.Now().UTC().Add(-30 * time.Minute)
	serverAdapter.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.NewTimerSession) (models.TimerSession, error) {
			assert.Equal(t, models.SessionFocus, req.Kind)
			assert.Equal(t, int64(1500), req.PlannedSeconds)
			return models.TimerSession{ID: "s1", Kind: req.Kind, PlannedSeconds: req.PlannedSeconds, StartedAt: started}, nil
		},
	)

	session, err := sessions.Start(context.Background(), nil, 25*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "s1", session.ID)

	running, ok := sessions.Running()
	require.True(t, ok)
	assert.Equal(t, "s1", running.ID)

	_, err = sessions.Start(context.Background(), nil, time.Minute)
	assert.ErrorIs(t, err, ErrSessionRunning)

	serverAdapter.EXPECT().UpdateSession(gomock.Any(), "s1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, patch models.SessionPatch) (models.TimerSession, error) {
			if assert.NotNil(t, patch.Completed) {
				assert.True(t, *patch.Completed)
			}
			assert.NotNil(t, patch.EndedAt)
			return models.TimerSession{}, nil
		},
	)

	op, err := sessions.Stop()
	require.NoError(t, err)
	require.NoError(t, op.Wait(context.Background()))

	_, ok = sessions.Running()
	assert.False(t, ok)
}

func TestClientServices_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	serverAdapter.EXPECT().ListTasks(gomock.Any()).Return(nil, adapter.ErrBadGateway)
	serverAdapter.EXPECT().ListSessions(gomock.Any()).Return(nil, nil)
	serverAdapter.EXPECT().Subscribe(gomock.Any()).Return(nil, adapter.ErrBadGateway).Times(2)

	services := NewClientServices(serverAdapter, 1, config.ClientAdapter{}, logger.Nop())
	defer services.Close()

	err := services.Load(context.Background())
	assert.ErrorIs(t, err, ErrServerNotReached)
	assert.ErrorIs(t, err, optimistic.ErrStoreRead)
	assert.ErrorIs(t, services.TaskService.LoadErr(), ErrServerNotReached)
	assert.False(t, services.TaskService.Live())
	assert.Len(t, services.Resubscribers(), 2)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		in   error
		want error
	}{
		{in: adapter.ErrNotFound, want: ErrRecordGone},
		{in: adapter.ErrUnauthorized, want: ErrNotAuthorized},
		{in: adapter.ErrForbidden, want: ErrNotAuthorized},
		{in: adapter.ErrBadRequest, want: ErrServerRejected},
		{in: adapter.ErrConflict, want: ErrServerRejected},
		{in: adapter.ErrInternalServerError, want: ErrServerRejected},
		{in: adapter.ErrBadGateway, want: ErrServerNotReached},
		{in: adapter.ErrServiceUnavailable, want: ErrServerNotReached},
		{in: errors.New("connection refused"), want: ErrServerNotReached},
	}

	for _, tt := range tests {
		t.Run(tt.in.Error(), func(t *testing.T) {
			err := mapAdapterError(tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.in)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
