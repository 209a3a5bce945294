// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the repositories. Match them with [errors.Is].
var (
	// ErrTaskNotFound is returned when no task with the id belongs to the user.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrSessionNotFound is returned when no timer session with the id
	// belongs to the user.
	ErrSessionNotFound = errors.New("timer session was not found")

	// ErrDuplicateID is returned when an insert collides with an existing id.
	ErrDuplicateID = errors.New("record with this id already exists")

	// ErrRetryable wraps transient database failures.
	ErrRetryable = errors.New("transient database error")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to iterate rows")
)
