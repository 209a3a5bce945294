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

type taskRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, log *logger.Logger) TaskRepository {
	return &taskRepository{db: db, logger: log}
}

// ListTasks returns the tasks of the user ordered by position, then creation.
func (r *taskRepository) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTasksQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("failed to query tasks")
		return nil, r.db.wrapErr(err, ErrTaskNotFound)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 32)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Int64("user_id", userID).Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

func (r *taskRepository) GetTask(ctx context.Context, userID int64, id string) (models.Task, error) {
	query, args, err := buildSelectTaskQuery(r.db.builder, userID, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Task{}, r.db.wrapErr(err, ErrTaskNotFound)
	}

	return task, nil
}

// CreateTask inserts a task whose id and timestamps are already set and
// returns the stored row with its assigned position.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	var position *int
	if task.Position > 0 {
		position = &task.Position
	}

	query, args, err := buildInsertTaskQuery(r.db.builder, task, position)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Str("id", task.ID).Msg("failed to insert task")
		return models.Task{}, r.db.wrapErr(err, ErrTaskNotFound)
	}

	log.Debug().Str("func", "taskRepository.CreateTask").Str("id", task.ID).Msg("task created")
	return r.GetTask(ctx, task.UserID, task.ID)
}

// UpdateTask applies patch and returns the stored row.
func (r *taskRepository) UpdateTask(ctx context.Context, userID int64, id string, patch models.TaskPatch) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(r.db.builder, userID, id, patch, time.Now().UTC())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execAffectingOne(ctx, r.db, query, args, ErrTaskNotFound); err != nil {
		log.Err(err).Str("func", "taskRepository.UpdateTask").Str("id", id).Msg("failed to update task")
		return models.Task{}, err
	}

	return r.GetTask(ctx, userID, id)
}

func (r *taskRepository) DeleteTask(ctx context.Context, userID int64, id string) error {
	return deleteRecord(ctx, r.db, models.Task{}.TableName(), userID, id, ErrTaskNotFound)
}

// deleteRecord removes one row of table owned by userID.
func deleteRecord(ctx context.Context, db *DB, table string, userID int64, id string, notFound error) error {
	query, args, err := buildDeleteQuery(db.builder, table, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execAffectingOne(ctx, db, query, args, notFound); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deleteRecord").Str("table", table).Str("id", id).Msg("failed to delete record")
		return err
	}

	return nil
}

// execAffectingOne runs a statement that must touch a row; notFound is
// returned when it touches none.
func execAffectingOne(ctx context.Context, db *DB, query string, args []any, notFound error) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return db.wrapErr(err, notFound)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task models.Task
		tags string
	)

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Done,
		&task.Priority,
		&task.DueDate,
		&task.Position,
		&tags,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	if task.Tags, err = decodeTags(tags); err != nil {
		return models.Task{}, err
	}

	return task, nil
}
