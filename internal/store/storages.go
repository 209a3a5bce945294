// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/focus-on-it/internal/logger"

// Storages bundles the repositories built on one database handle.
type Storages struct {
	TaskRepository    TaskRepository
	SessionRepository SessionRepository
	StatsRepository   StatsRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		TaskRepository:    NewTaskRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		StatsRepository:   NewStatsRepository(db, log),
	}
}
