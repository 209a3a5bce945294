// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/models"
)

type statsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewStatsRepository(db *DB, log *logger.Logger) StatsRepository {
	return &statsRepository{db: db, logger: log}
}

// GetStats aggregates the tasks and focus sessions of req.UserID in the
// window [req.From, req.To).
func (r *statsRepository) GetStats(ctx context.Context, req models.StatsRequest) (models.Stats, error) {
	var stats models.Stats

	query, args, err := buildCountCompletedTasksQuery(r.db.builder, req)
	if err != nil {
		return models.Stats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&stats.CompletedTasks); err != nil {
		return models.Stats{}, r.db.wrapErr(err, ErrExecutingQuery)
	}

	query, args, err = buildCountOpenTasksQuery(r.db.builder, req.UserID)
	if err != nil {
		return models.Stats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&stats.OpenTasks); err != nil {
		return models.Stats{}, r.db.wrapErr(err, ErrExecutingQuery)
	}

	if err = r.sumFocusSessions(ctx, req, &stats); err != nil {
		return models.Stats{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "statsRepository.GetStats").
		Int64("user_id", req.UserID).
		Int64("focus_seconds", stats.FocusSeconds).
		Msg("stats computed")

	return stats, nil
}

func (r *statsRepository) sumFocusSessions(ctx context.Context, req models.StatsRequest, stats *models.Stats) error {
	query, args, err := buildFinishedFocusSessionsQuery(r.db.builder, req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return r.db.wrapErr(err, ErrExecutingQuery)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			startedAt time.Time
			endedAt   time.Time
			completed bool
		)
		if err = rows.Scan(&startedAt, &endedAt, &completed); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if endedAt.After(startedAt) {
			stats.FocusSeconds += int64(endedAt.Sub(startedAt) / time.Second)
		}
		if completed {
			stats.CompletedSessions++
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
