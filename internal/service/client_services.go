// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/focus-on-it/internal/adapter"
	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/optimistic"
)

// ClientServices bundles the collections of the client. Rolled-back writes
// of both collections are reported on Failures.
type ClientServices struct {
	TaskService    ClientTaskService
	SessionService ClientSessionService

	failures chan error
	logger   *logger.Logger
}

// failureBuffer is the number of unread write failures kept for the UI.
// Older failures are dropped once it is full.
const failureBuffer = 16

func NewClientServices(serverAdapter adapter.ServerAdapter, userID int64, cfg config.ClientAdapter, log *logger.Logger) *ClientServices {
	s := &ClientServices{
		failures: make(chan error, failureBuffer),
		logger:   log,
	}

	s.TaskService = NewClientTaskService(serverAdapter, userID, cfg.WriteTimeout, s.notify, log)
	s.SessionService = NewClientSessionService(serverAdapter, userID, cfg.WriteTimeout, s.notify, log)

	return s
}

// Failures delivers the rolled-back writes.
func (s *ClientServices) Failures() <-chan error {
	return s.failures
}

func (s *ClientServices) notify(err *optimistic.WriteError) {
	s.logger.Warn().Err(err).Str("id", err.ID).Str("kind", string(err.Kind)).Msg("change rolled back")

	select {
	case s.failures <- err:
	default:
		s.logger.Warn().Str("id", err.ID).Msg("failure buffer full, dropping notification")
	}
}

// Load loads both collections. A failed session load is not fatal for the
// task list and is returned together with the task error, if any.
func (s *ClientServices) Load(ctx context.Context) error {
	taskErr := s.TaskService.Load(ctx)
	sessionErr := s.SessionService.Load(ctx)

	if taskErr != nil || sessionErr != nil {
		return fmt.Errorf("loading collections: %w", errors.Join(taskErr, sessionErr))
	}

	return nil
}

// Resubscribers returns the collections whose change feeds can be reopened.
func (s *ClientServices) Resubscribers() []Resubscriber {
	return []Resubscriber{s.TaskService, s.SessionService}
}

// Resubscriber is a collection whose dropped change feed or failed bulk
// read can be retried.
type Resubscriber interface {
	Live() bool
	LoadErr() error
	Resubscribe(ctx context.Context) error
}

func (s *ClientServices) Close() error {
	return errors.Join(s.TaskService.Close(), s.SessionService.Close())
}
