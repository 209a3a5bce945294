// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionKind is the phase of the focus timer a session belongs to.
type SessionKind string

const (
	SessionFocus      SessionKind = "focus"
	SessionShortBreak SessionKind = "short_break"
	SessionLongBreak  SessionKind = "long_break"
)

// TimerSession is one run of the focus timer, optionally attached to a task.
type TimerSession struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// UserID is the owner of the session.
	UserID int64 `json:"user_id"`

	// TaskID links the session to the task that was worked on, if any.
	TaskID *string `json:"task_id,omitempty"`

	// Kind is the timer phase.
	Kind SessionKind `json:"kind"`

	// PlannedSeconds is the configured length of the session.
	PlannedSeconds int64 `json:"planned_seconds"`

	// StartedAt is when the timer was started.
	StartedAt time.Time `json:"started_at"`

	// EndedAt is set once the session is stopped or runs out.
	EndedAt *time.Time `json:"ended_at,omitempty"`

	// Completed reports whether the session ran for its full planned length.
	Completed bool `json:"completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the stable identifier of the session.
func (s TimerSession) RecordID() string {
	return s.ID
}

// TableName returns the name of the database table
// associated with the TimerSession model.
func (s TimerSession) TableName() string {
	return "timer_sessions"
}

// Elapsed returns the time spent in the session. Running sessions are
// measured up to now.
func (s TimerSession) Elapsed(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	if end.Before(s.StartedAt) {
		return 0
	}
	return end.Sub(s.StartedAt)
}

// NewTimerSession is the payload of a session creation request.
type NewTimerSession struct {
	TaskID         *string     `json:"task_id,omitempty"`
	Kind           SessionKind `json:"kind"`
	PlannedSeconds int64       `json:"planned_seconds"`
	StartedAt      *time.Time  `json:"started_at,omitempty"`
}

// SessionPatch is a typed partial update of a [TimerSession].
type SessionPatch struct {
	TaskID    *string    `json:"task_id,omitempty"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Completed *bool      `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p SessionPatch) IsEmpty() bool {
	return p.TaskID == nil && p.EndedAt == nil && p.Completed == nil
}

// Apply returns a copy of s with every non-nil field of the patch merged in.
func (p SessionPatch) Apply(s TimerSession) TimerSession {
	if p.TaskID != nil {
		taskID := *p.TaskID
		s.TaskID = &taskID
	}
	if p.EndedAt != nil {
		ended := *p.EndedAt
		s.EndedAt = &ended
	}
	if p.Completed != nil {
		s.Completed = *p.Completed
	}

	return s
}
