// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/store"
	"github.com/MKhiriev/focus-on-it/models"
)

// Services bundles the server services. Task, session and stats services
// are wrapped with validation.
type Services struct {
	TaskService    TaskService
	SessionService SessionService
	StatsService   StatsService
	AuthService    AuthService
	AppInfoService AppInfoService
	ChangeHub      ChangeHub
}

func NewServices(storages *store.Storages, feed ChangeHub, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TaskService:    NewTaskValidationService().Wrap(NewTaskService(storages.TaskRepository, feed, logger)),
		SessionService: NewSessionValidationService().Wrap(NewSessionService(storages.SessionRepository, feed, logger)),
		StatsService:   NewStatsValidationService().Wrap(NewStatsService(storages.StatsRepository, logger)),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
		ChangeHub:      feed,
	}, nil
}
