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

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: log}
}

// ListSessions returns the sessions of the user, most recent first.
func (r *sessionRepository) ListSessions(ctx context.Context, userID int64) ([]models.TimerSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.ListSessions").Int64("user_id", userID).Msg("failed to query sessions")
		return nil, r.db.wrapErr(err, ErrSessionNotFound)
	}
	defer rows.Close()

	sessions := make([]models.TimerSession, 0, 32)
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

func (r *sessionRepository) GetSession(ctx context.Context, userID int64, id string) (models.TimerSession, error) {
	query, args, err := buildSelectSessionQuery(r.db.builder, userID, id)
	if err != nil {
		return models.TimerSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	session, err := scanSession(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.TimerSession{}, r.db.wrapErr(err, ErrSessionNotFound)
	}

	return session, nil
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.TimerSession) (models.TimerSession, error) {
	query, args, err := buildInsertSessionQuery(r.db.builder, session)
	if err != nil {
		return models.TimerSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.CreateSession").Str("id", session.ID).Msg("failed to insert session")
		return models.TimerSession{}, r.db.wrapErr(err, ErrSessionNotFound)
	}

	return r.GetSession(ctx, session.UserID, session.ID)
}

func (r *sessionRepository) UpdateSession(ctx context.Context, userID int64, id string, patch models.SessionPatch) (models.TimerSession, error) {
	query, args, err := buildUpdateSessionQuery(r.db.builder, userID, id, patch, time.Now().UTC())
	if err != nil {
		return models.TimerSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execAffectingOne(ctx, r.db, query, args, ErrSessionNotFound); err != nil {
		return models.TimerSession{}, err
	}

	return r.GetSession(ctx, userID, id)
}

func (r *sessionRepository) DeleteSession(ctx context.Context, userID int64, id string) error {
	return deleteRecord(ctx, r.db, models.TimerSession{}.TableName(), userID, id, ErrSessionNotFound)
}

func scanSession(row rowScanner) (models.TimerSession, error) {
	var s models.TimerSession

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.TaskID,
		&s.Kind,
		&s.PlannedSeconds,
		&s.StartedAt,
		&s.EndedAt,
		&s.Completed,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return models.TimerSession{}, err
	}

	return s, nil
}
