// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/focus-on-it/models"
)

var taskColumns = []string{
	"id", "user_id", "title", "description", "done", "priority", "due_date",
	"position", "tags", "completed_at", "created_at", "updated_at",
}

var sessionColumns = []string{
	"id", "user_id", "task_id", "kind", "planned_seconds", "started_at",
	"ended_at", "completed", "created_at", "updated_at",
}

func buildSelectTasksQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
}

func buildSelectTaskQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildInsertTaskQuery inserts task. A nil position appends the task after the
// last one of the user.
func buildInsertTaskQuery(b sq.StatementBuilderType, task models.Task, position *int) (string, []any, error) {
	tags, err := encodeTags(task.Tags)
	if err != nil {
		return "", nil, err
	}

	var pos any = sq.Expr("COALESCE((SELECT MAX(position) + 1 FROM tasks WHERE user_id = ?), 0)", task.UserID)
	if position != nil {
		pos = *position
	}

	return b.Insert(models.Task{}.TableName()).
		Columns(taskColumns...).
		Values(
			task.ID, task.UserID, task.Title, task.Description, task.Done, task.Priority,
			task.DueDate, pos, tags, task.CompletedAt, task.CreatedAt, task.UpdatedAt,
		).
		ToSql()
}

// buildUpdateTaskQuery sets the fields present in patch. completed_at follows
// done: it keeps its value when a done task is marked done again.
func buildUpdateTaskQuery(b sq.StatementBuilderType, userID int64, id string, patch models.TaskPatch, now time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": now}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		set["due_date"] = *patch.DueDate
	}
	if patch.Position != nil {
		set["position"] = *patch.Position
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return "", nil, err
		}
		set["tags"] = tags
	}
	if patch.Done != nil {
		set["done"] = *patch.Done
		if *patch.Done {
			set["completed_at"] = sq.Expr("CASE WHEN done THEN completed_at ELSE ? END", now)
		} else {
			set["completed_at"] = nil
		}
	}

	return b.Update(models.Task{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, table string, userID int64, id string) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildSelectSessionsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.TimerSession{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, userID int64, id string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.TimerSession{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, s models.TimerSession) (string, []any, error) {
	return b.Insert(models.TimerSession{}.TableName()).
		Columns(sessionColumns...).
		Values(
			s.ID, s.UserID, s.TaskID, s.Kind, s.PlannedSeconds, s.StartedAt,
			s.EndedAt, s.Completed, s.CreatedAt, s.UpdatedAt,
		).
		ToSql()
}

func buildUpdateSessionQuery(b sq.StatementBuilderType, userID int64, id string, patch models.SessionPatch, now time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": now}

	if patch.TaskID != nil {
		set["task_id"] = *patch.TaskID
	}
	if patch.EndedAt != nil {
		set["ended_at"] = *patch.EndedAt
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	return b.Update(models.TimerSession{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// windowed restricts column to [from, to). Zero bounds are open.
func windowed(where sq.And, column string, from, to time.Time) sq.And {
	if !from.IsZero() {
		where = append(where, sq.GtOrEq{column: from})
	}
	if !to.IsZero() {
		where = append(where, sq.Lt{column: to})
	}
	return where
}

func buildCountCompletedTasksQuery(b sq.StatementBuilderType, req models.StatsRequest) (string, []any, error) {
	where := windowed(sq.And{sq.Eq{"user_id": req.UserID, "done": true}}, "completed_at", req.From, req.To)

	return b.Select("COUNT(*)").
		From(models.Task{}.TableName()).
		Where(where).
		ToSql()
}

func buildCountOpenTasksQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID, "done": false}).
		ToSql()
}

// buildFinishedFocusSessionsQuery selects the finished focus sessions started
// in the window. Durations are summed by the caller so that the query stays
// the same for every dialect.
func buildFinishedFocusSessionsQuery(b sq.StatementBuilderType, req models.StatsRequest) (string, []any, error) {
	where := windowed(sq.And{
		sq.Eq{"user_id": req.UserID, "kind": models.SessionFocus},
		sq.NotEq{"ended_at": nil},
	}, "started_at", req.From, req.To)

	return b.Select("started_at", "ended_at", "completed").
		From(models.TimerSession{}.TableName()).
		Where(where).
		ToSql()
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: encoding tags: %w", ErrBuildingSQLQuery, err)
	}
	return string(raw), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
