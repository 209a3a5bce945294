// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle          = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title is too long")
	ErrInvalidPriority     = errors.New("invalid priority")
	ErrInvalidPosition     = errors.New("position cannot be negative")
	ErrEmptyTag            = errors.New("tags cannot be empty")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
	ErrInvalidSessionKind  = errors.New("invalid session kind")
	ErrInvalidPlannedTime  = errors.New("planned seconds must be positive")
	ErrInvalidTaskID       = errors.New("invalid task id")
	ErrInvalidStatsWindow  = errors.New("stats window ends before it starts")
	ErrInvalidRecordID     = errors.New("invalid record id")
)
