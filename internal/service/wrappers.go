// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}

// SessionServiceWrapper defines middleware composition for SessionService.
type SessionServiceWrapper interface {
	Wrap(SessionService) SessionService
}

// StatsServiceWrapper defines middleware composition for StatsService.
type StatsServiceWrapper interface {
	Wrap(StatsService) StatsService
}
