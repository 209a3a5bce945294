// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/focus-on-it/internal/validators"
	"github.com/MKhiriev/focus-on-it/models"
)

// TaskValidationService checks task payloads before they reach the wrapped
// TaskService.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService() TaskServiceWrapper {
	return &TaskValidationService{validator: validators.NewFocusValidator()}
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}

func (v *TaskValidationService) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	return v.inner.ListTasks(ctx, userID)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, userID int64, task models.NewTask) (models.Task, error) {
	if err := v.validator.Validate(ctx, task); err != nil {
		return models.Task{}, fmt.Errorf("error during task validation before saving: %w", err)
	}

	return v.inner.CreateTask(ctx, userID, task)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, userID int64, id string, patch models.TaskPatch) (models.Task, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Task{}, fmt.Errorf("error during task id validation: %w", err)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Task{}, fmt.Errorf("error during task patch validation: %w", err)
	}

	return v.inner.UpdateTask(ctx, userID, id, patch)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, userID int64, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during task id validation: %w", err)
	}

	return v.inner.DeleteTask(ctx, userID, id)
}

// SessionValidationService checks timer session payloads before they reach
// the wrapped SessionService.
type SessionValidationService struct {
	inner     SessionService
	validator validators.Validator
}

func NewSessionValidationService() SessionServiceWrapper {
	return &SessionValidationService{validator: validators.NewFocusValidator()}
}

func (v *SessionValidationService) Wrap(inner SessionService) SessionService {
	v.inner = inner
	return v
}

func (v *SessionValidationService) ListSessions(ctx context.Context, userID int64) ([]models.TimerSession, error) {
	return v.inner.ListSessions(ctx, userID)
}

func (v *SessionValidationService) CreateSession(ctx context.Context, userID int64, session models.NewTimerSession) (models.TimerSession, error) {
	if err := v.validator.Validate(ctx, session); err != nil {
		return models.TimerSession{}, fmt.Errorf("error during session validation before saving: %w", err)
	}

	return v.inner.CreateSession(ctx, userID, session)
}

func (v *SessionValidationService) UpdateSession(ctx context.Context, userID int64, id string, patch models.SessionPatch) (models.TimerSession, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.TimerSession{}, fmt.Errorf("error during session id validation: %w", err)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.TimerSession{}, fmt.Errorf("error during session patch validation: %w", err)
	}

	return v.inner.UpdateSession(ctx, userID, id, patch)
}

func (v *SessionValidationService) DeleteSession(ctx context.Context, userID int64, id string) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("error during session id validation: %w", err)
	}

	return v.inner.DeleteSession(ctx, userID, id)
}

// StatsValidationService rejects inverted statistics windows.
type StatsValidationService struct {
	inner     StatsService
	validator validators.Validator
}

func NewStatsValidationService() StatsServiceWrapper {
	return &StatsValidationService{validator: validators.NewFocusValidator()}
}

func (v *StatsValidationService) Wrap(inner StatsService) StatsService {
	v.inner = inner
	return v
}

func (v *StatsValidationService) GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Stats{}, fmt.Errorf("error during stats request validation: %w", err)
	}

	return v.inner.GetStats(ctx, req)
}
