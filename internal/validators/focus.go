// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/focus-on-it/models"
)

// MaxTitleLength is the longest accepted task title, in characters.
const MaxTitleLength = 500

// Field names accepted for scoped validation.
const (
	FieldTitle          = "title"
	FieldPriority       = "priority"
	FieldPosition       = "position"
	FieldTags           = "tags"
	FieldNotEmpty       = "not_empty"
	FieldKind           = "kind"
	FieldPlannedSeconds = "planned_seconds"
	FieldTaskID         = "task_id"
	FieldWindow         = "window"
	FieldID             = "id"
)

var allowedPriorities = []models.Priority{
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityHigh,
}

var allowedSessionKinds = []models.SessionKind{
	models.SessionFocus,
	models.SessionShortBreak,
	models.SessionLongBreak,
}

// FocusValidator validates the payloads of the task, session and stats
// endpoints.
type FocusValidator struct{}

func NewFocusValidator() Validator {
	return &FocusValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.NewTask, models.TaskPatch
//   - models.NewTimerSession, models.SessionPatch
//   - models.StatsRequest
//   - string, validated as a record id
//
// Returns ErrUnsupportedType for anything else.
func (v *FocusValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewTask:
		return v.validateNewTask(value, fields...)
	case *models.NewTask:
		return v.validateNewTask(*value, fields...)

	case models.TaskPatch:
		return v.validateTaskPatch(value, fields...)
	case *models.TaskPatch:
		return v.validateTaskPatch(*value, fields...)

	case models.NewTimerSession:
		return v.validateNewSession(value, fields...)
	case *models.NewTimerSession:
		return v.validateNewSession(*value, fields...)

	case models.SessionPatch:
		return v.validateSessionPatch(value, fields...)
	case *models.SessionPatch:
		return v.validateSessionPatch(*value, fields...)

	case models.StatsRequest:
		return v.validateStatsRequest(value, fields...)
	case *models.StatsRequest:
		return v.validateStatsRequest(*value, fields...)

	case string:
		return validateRecordID(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *FocusValidator) validateNewTask(task models.NewTask, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPriority, FieldPosition, FieldTags}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(task.Title)
		case FieldPriority:
			if task.Priority != "" {
				err = validatePriority(task.Priority)
			}
		case FieldPosition:
			if task.Position != nil && *task.Position < 0 {
				err = ErrInvalidPosition
			}
		case FieldTags:
			err = validateTags(task.Tags)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FocusValidator) validateTaskPatch(patch models.TaskPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldTitle, FieldPriority, FieldPosition, FieldTags}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNotEmpty:
			if patch.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if patch.Title != nil {
				err = validateTitle(*patch.Title)
			}
		case FieldPriority:
			if patch.Priority != nil {
				err = validatePriority(*patch.Priority)
			}
		case FieldPosition:
			if patch.Position != nil && *patch.Position < 0 {
				err = ErrInvalidPosition
			}
		case FieldTags:
			if patch.Tags != nil {
				err = validateTags(*patch.Tags)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FocusValidator) validateNewSession(session models.NewTimerSession, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKind, FieldPlannedSeconds, FieldTaskID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldKind:
			if !slices.Contains(allowedSessionKinds, session.Kind) {
				err = ErrInvalidSessionKind
			}
		case FieldPlannedSeconds:
			if session.PlannedSeconds <= 0 {
				err = ErrInvalidPlannedTime
			}
		case FieldTaskID:
			if session.TaskID != nil && validateRecordID(*session.TaskID) != nil {
				err = ErrInvalidTaskID
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FocusValidator) validateSessionPatch(patch models.SessionPatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldTaskID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldNotEmpty:
			if patch.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTaskID:
			if patch.TaskID != nil && validateRecordID(*patch.TaskID) != nil {
				err = ErrInvalidTaskID
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *FocusValidator) validateStatsRequest(req models.StatsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWindow}
	}

	for _, f := range fields {
		switch f {
		case FieldWindow:
			if !req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From) {
				return ErrInvalidStatsWindow
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validatePriority(p models.Priority) error {
	if !slices.Contains(allowedPriorities, p) {
		return ErrInvalidPriority
	}
	return nil
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return ErrEmptyTag
		}
	}
	return nil
}

func validateRecordID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidRecordID
	}
	return nil
}
