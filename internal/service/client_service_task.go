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

// TaskCollection is the synchronized task list.
type TaskCollection = optimistic.Collection[models.Task, models.TaskPatch]

type clientTaskService struct {
	tasks         *TaskCollection
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewClientTaskService builds the task collection of userID on top of
// serverAdapter. notify receives every rolled-back write.
func NewClientTaskService(serverAdapter adapter.ServerAdapter, userID int64, writeTimeout time.Duration, notify optimistic.Notifier, log *logger.Logger) ClientTaskService {
	tasks := optimistic.New[models.Task, models.TaskPatch](
		newTaskStore(serverAdapter, log),
		userID,
		optimistic.WithOrder(taskLess),
		optimistic.WithNotifier[models.Task](notify),
		optimistic.WithWriteTimeout[models.Task](writeTimeout),
		optimistic.WithLogger[models.Task](log),
	)

	return &clientTaskService{tasks: tasks, serverAdapter: serverAdapter, logger: log}
}

// taskLess orders tasks like the server does: by position, then creation.
func taskLess(a, b models.Task) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

func (s *clientTaskService) Load(ctx context.Context) error        { return s.tasks.Load(ctx) }
func (s *clientTaskService) Refresh(ctx context.Context) error     { return s.tasks.Refresh(ctx) }
func (s *clientTaskService) Resubscribe(ctx context.Context) error { return s.tasks.Resubscribe(ctx) }
func (s *clientTaskService) Tasks() []models.Task                  { return s.tasks.Records() }
func (s *clientTaskService) IsPending(id string) bool              { return s.tasks.IsPending(id) }
func (s *clientTaskService) Live() bool                            { return s.tasks.Live() }
func (s *clientTaskService) Loading() bool                         { return s.tasks.Loading() }
func (s *clientTaskService) LoadErr() error                        { return s.tasks.LoadErr() }
func (s *clientTaskService) Close() error                          { return s.tasks.Close() }

func (s *clientTaskService) Toggle(id string) (*optimistic.Operation, error) {
	task, ok := s.tasks.Get(id)
	if !ok {
		return nil, optimistic.ErrRecordNotFound
	}

	done := !task.Done
	patch := models.TaskPatch{Done: &done}

	return s.tasks.Complete(id, patch, s.update(id, patch))
}

func (s *clientTaskService) Rename(id, title string) (*optimistic.Operation, error) {
	patch := models.TaskPatch{Title: &title}

	return s.tasks.Mutate(id, patch, s.update(id, patch))
}

func (s *clientTaskService) Delete(id string) (*optimistic.Operation, error) {
	return s.tasks.Delete(id, func(ctx context.Context) error {
		return mapAdapterError(s.serverAdapter.DeleteTask(ctx, id))
	})
}

func (s *clientTaskService) Create(ctx context.Context, task models.NewTask) (models.Task, error) {
	return s.tasks.Create(ctx, func(ctx context.Context) (models.Task, error) {
		created, err := s.serverAdapter.CreateTask(ctx, task)
		return created, mapAdapterError(err)
	})
}

func (s *clientTaskService) update(id string, patch models.TaskPatch) optimistic.RemoteApply {
	return func(ctx context.Context) error {
		_, err := s.serverAdapter.UpdateTask(ctx, id, patch)
		return mapAdapterError(err)
	}
}
