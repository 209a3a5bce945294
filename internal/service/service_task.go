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

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}

type taskService struct {
	taskRepository store.TaskRepository
	feed           ChangeHub
	ids            IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, feed ChangeHub, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		feed:           feed,
		ids:            utils.NewUUIDGenerator(),
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *taskService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return s.taskRepository.ListTasks(ctx, userID)
}

// CreateTask assigns the id, owner and timestamps, stores the task and
// publishes an insert. The priority defaults to medium; an omitted or zero
// position places the task after the last one.
func (s *taskService) CreateTask(ctx context.Context, userID int64, newTask models.NewTask) (models.Task, error) {
	now := s.now()

	task := models.Task{
		ID:          s.ids.Generate(),
		UserID:      userID,
		Title:       newTask.Title,
		Description: newTask.Description,
		Priority:    newTask.Priority,
		DueDate:     newTask.DueDate,
		Tags:        newTask.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if newTask.Position != nil {
		task.Position = *newTask.Position
	}

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("error creating task: %w", err)
	}

	publish(ctx, s.feed, models.CollectionTasks, models.ChangeInsert, userID, created.ID, created)

	return created, nil
}

func (s *taskService) UpdateTask(ctx context.Context, userID int64, id string, patch models.TaskPatch) (models.Task, error) {
	updated, err := s.taskRepository.UpdateTask(ctx, userID, id, patch)
	if err != nil {
		return models.Task{}, fmt.Errorf("error updating task %s: %w", id, err)
	}

	publish(ctx, s.feed, models.CollectionTasks, models.ChangeUpdate, userID, id, updated)

	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID int64, id string) error {
	if err := s.taskRepository.DeleteTask(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting task %s: %w", id, err)
	}

	publish(ctx, s.feed, models.CollectionTasks, models.ChangeDelete, userID, id, nil)

	return nil
}
