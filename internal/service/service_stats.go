// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/store"
	"github.com/MKhiriev/focus-on-it/models"
)

type statsService struct {
	statsRepository store.StatsRepository

	logger *logger.Logger
}

func NewStatsService(statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{statsRepository: statsRepository, logger: logger}
}

func (s *statsService) GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error) {
	stats, err := s.statsRepository.GetStats(ctx, req)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error computing stats: %w", err)
	}

	return stats, nil
}
